package seed

import "fmt"

// The report intentionally prints the plaintext bootstrap credentials so
// an operator can log in to a fresh environment. See WithOutput for
// deployments that must suppress it.

func (p *Procedure) reportSkipped(existing int) {
	fmt.Fprintf(p.out, "Database already has %d users. Skipping seed.\n", existing)
}

func (p *Procedure) reportSeeded(o Outcome) {
	fmt.Fprintf(p.out, "Database seeded successfully (run %s).\n", p.runID)
	fmt.Fprintf(p.out, "Created %d users and %d projects.\n", o.UsersCreated, o.ProjectsCreated)
	fmt.Fprintf(p.out, "\nLogin credentials:\n")
	for _, a := range defaultAccounts {
		fmt.Fprintf(p.out, "  %s / %s\n", a.email, a.secret)
	}
}
