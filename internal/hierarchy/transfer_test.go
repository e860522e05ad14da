package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"company_crud/internal/models"
)

func TestToTransferDenormalizesOneLevel(t *testing.T) {
	company := models.Company{ID: 1, Name: "Acme", Departments: []models.Department{{Name: "Eng"}, {Name: "Ops"}}}
	assert.Equal(t, CompanyDTO{ID: 1, Name: "Acme", DepartmentNames: []string{"Eng", "Ops"}}, CompanyToDTO(company))

	dept := models.Department{ID: 2, Name: "Eng", CompanyID: 1, Company: &company, Teams: []models.Team{{Name: "Platform"}}}
	assert.Equal(t, DepartmentDTO{ID: 2, Name: "Eng", CompanyName: "Acme", TeamNames: []string{"Platform"}}, DepartmentToDTO(dept))

	team := models.Team{ID: 3, Name: "Platform", Department: &dept, Project: &models.Project{Name: "Core"}}
	assert.Equal(t, TeamDTO{ID: 3, Name: "Platform", DepartmentName: "Eng", ProjectName: "Core"}, TeamToDTO(team))

	project := models.Project{ID: 4, Name: "Core", Team: &team, Manager: &models.Manager{Name: "Jane"}}
	assert.Equal(t, ProjectDTO{ID: 4, Name: "Core", TeamName: "Platform", ManagerName: "Jane"}, ProjectToDTO(project))
}

func TestToTransferWithoutRelations(t *testing.T) {
	assert.Equal(t, []string{}, CompanyToDTO(models.Company{Name: "Acme"}).DepartmentNames)
	assert.Equal(t, DepartmentDTO{Name: "Eng", TeamNames: []string{}}, DepartmentToDTO(models.Department{Name: "Eng", CompanyID: 9}))
	assert.Equal(t, TeamDTO{Name: "Platform"}, TeamToDTO(models.Team{Name: "Platform"}))
	assert.Equal(t, ProjectDTO{Name: "Core"}, ProjectToDTO(models.Project{Name: "Core"}))
}

func TestFromTransferIgnoresRelations(t *testing.T) {
	d := DepartmentFromDTO(DepartmentDTO{ID: 7, Name: "Eng", CompanyName: "Acme", TeamNames: []string{"x"}})
	assert.Equal(t, models.Department{Name: "Eng"}, d)

	p := ProjectFromDTO(ProjectDTO{Name: "Core", TeamName: "Platform", ManagerName: "Jane", Manager: &ManagerDTO{Name: "Jane"}})
	assert.Equal(t, models.Project{Name: "Core"}, p)

	assert.Equal(t, models.Team{Name: "Platform"}, TeamFromDTO(TeamDTO{Name: "Platform", DepartmentName: "Eng", ProjectName: "Core"}))
	assert.Equal(t, models.Company{Name: "Acme"}, CompanyFromDTO(CompanyDTO{ID: 3, Name: "Acme", DepartmentNames: []string{"Eng"}}))
	assert.Equal(t, models.Manager{Name: "Jane", Email: "j@x.io"}, ManagerFromDTO(ManagerDTO{ID: 5, Name: "Jane", Email: "j@x.io"}))
}
