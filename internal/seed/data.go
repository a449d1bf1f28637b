package seed

import "github.com/planforge/planforge-be/internal/models"

type accountDef struct {
	email    string
	fullName string
	secret   string
	role     models.Role
}

type projectDef struct {
	name        string
	description string
	status      models.ProjectStatus
	priority    models.ProjectPriority
	budgetCents int64
	ownerEmail  string
}

// The fixture dataset. Values are load-bearing: downstream environments
// assume these exact emails, secrets, and budgets exist after bootstrap.
var defaultAccounts = []accountDef{
	{email: "admin@example.com", fullName: "Admin User", secret: "admin123", role: models.RoleAdministrator},
	{email: "manager@example.com", fullName: "Manager User", secret: "manager123", role: models.RoleManager},
	{email: "viewer@example.com", fullName: "Viewer User", secret: "viewer123", role: models.RoleViewer},
}

var defaultProjects = []projectDef{
	{
		name:        "Website Redesign",
		description: "Complete website overhaul with modern design",
		status:      models.ProjectStatusActive,
		priority:    models.PriorityHigh,
		budgetCents: 5_000_000,
		ownerEmail:  "admin@example.com",
	},
	{
		name:        "Mobile App",
		description: "iOS and Android app development",
		status:      models.ProjectStatusDraft,
		priority:    models.PriorityMedium,
		budgetCents: 10_000_000,
		ownerEmail:  "manager@example.com",
	},
	{
		name:        "API Integration",
		description: "Third-party payment and shipping integrations",
		status:      models.ProjectStatusActive,
		priority:    models.PriorityCritical,
		budgetCents: 2_500_000,
		ownerEmail:  "admin@example.com",
	},
}
