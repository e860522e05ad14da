// Package hierarchy enforces the Company → Department → Team → Project
// structure: parents are resolved before a child is attached, updates only
// touch scalar fields, and deletes never cascade.
package hierarchy

import (
	"strings"

	"gorm.io/gorm"

	"company_crud/internal/models"
	"company_crud/internal/store"
)

// Services bundles one service per entity kind.
type Services struct {
	Companies   *CompanyService
	Departments *DepartmentService
	Teams       *TeamService
	Projects    *ProjectService
	Managers    *ManagerService
}

// New wires every service to gorm-backed stores on db. Stores used for
// reads preload the associations the transfer shapes need; stores used by
// the resolvers load the bare parent row.
func New(db *gorm.DB) *Services {
	companies := store.NewRepository[models.Company](db, "Departments")
	departments := store.NewRepository[models.Department](db, "Company", "Teams")
	teams := store.NewRepository[models.Team](db, "Department", "Project")
	projects := store.NewRepository[models.Project](db, "Team", "Manager")
	managers := store.NewRepository[models.Manager](db)

	return &Services{
		Companies:   NewCompanyService(companies),
		Departments: NewDepartmentService(departments, store.NewRepository[models.Company](db)),
		Teams:       NewTeamService(teams, store.NewRepository[models.Department](db)),
		Projects:    NewProjectService(projects, managers, store.NewRepository[models.Team](db)),
		Managers:    NewManagerService(managers),
	}
}

// setName overwrites dst only when name carries a value.
func setName(dst *string, name string) {
	if strings.TrimSpace(name) != "" {
		*dst = name
	}
}
