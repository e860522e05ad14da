package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"company_crud/internal/hierarchy"
	"company_crud/internal/models"
)

const demoCompany = "Acme"

// Demo creates the Acme → Eng → Platform → Core hierarchy with a manager
// on Core. It does nothing when a company named Acme already exists.
func Demo(ctx context.Context, db *gorm.DB) error {
	var existing models.Company
	err := db.WithContext(ctx).Where("name = ?", demoCompany).First(&existing).Error
	switch {
	case err == nil:
		log.Info().Int64("company_id", existing.ID).Msg("Demo data already present, skipping seed")
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("look up demo company: %w", err)
	}

	svc := hierarchy.New(db)

	company, err := svc.Companies.Create(ctx, hierarchy.CompanyDTO{Name: demoCompany})
	if err != nil {
		return fmt.Errorf("seed company: %w", err)
	}
	department, err := svc.Departments.Create(ctx, company.ID, hierarchy.DepartmentDTO{Name: "Eng"})
	if err != nil {
		return fmt.Errorf("seed department: %w", err)
	}
	team, err := svc.Teams.Create(ctx, department.ID, hierarchy.TeamDTO{Name: "Platform"})
	if err != nil {
		return fmt.Errorf("seed team: %w", err)
	}
	project, err := svc.Projects.Create(ctx, team.ID, hierarchy.ProjectDTO{
		Name:    "Core",
		Manager: &hierarchy.ManagerDTO{Name: "Admin Manager", Email: "manager@example.com"},
	})
	if err != nil {
		return fmt.Errorf("seed project: %w", err)
	}

	log.Info().
		Int64("company_id", company.ID).
		Int64("department_id", department.ID).
		Int64("team_id", team.ID).
		Int64("project_id", project.ID).
		Msg("Seed OK")
	return nil
}
