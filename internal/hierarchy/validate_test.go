package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateManager(t *testing.T) {
	t.Run("blank name and email are sorted by field", func(t *testing.T) {
		err := ValidateManager(ManagerDTO{Name: " ", Email: ""})
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "email: Email cannot be blank, name: Name cannot be blank", err.Error())
	})

	t.Run("malformed email", func(t *testing.T) {
		err := ValidateManager(ManagerDTO{Name: "Jane", Email: "not-an-email"})
		require.Error(t, err)
		assert.Equal(t, "email: Email should be valid", err.Error())
	})

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateManager(ManagerDTO{Name: "Jane", Email: "jane@example.com"}))
	})
}

func TestValidateManagerUpdate(t *testing.T) {
	assert.NoError(t, ValidateManagerUpdate(ManagerDTO{}))
	assert.NoError(t, ValidateManagerUpdate(ManagerDTO{Email: "a@b.io"}))

	err := ValidateManagerUpdate(ManagerDTO{Email: "nope"})
	require.Error(t, err)
	assert.Equal(t, "email: Email should be valid", err.Error())
}

func TestValidateNamedEntities(t *testing.T) {
	for name, err := range map[string]error{
		"company":    ValidateCompany(CompanyDTO{}),
		"department": ValidateDepartment(DepartmentDTO{Name: "\t"}),
		"team":       ValidateTeam(TeamDTO{}),
		"project":    ValidateProject(ProjectDTO{}),
	} {
		require.Error(t, err, name)
		assert.Equal(t, "name: Name cannot be blank", err.Error(), name)
	}

	assert.NoError(t, ValidateCompany(CompanyDTO{Name: "Acme"}))
	assert.NoError(t, ValidateDepartment(DepartmentDTO{Name: "Eng"}))
	assert.NoError(t, ValidateTeam(TeamDTO{Name: "Platform"}))
}

func TestValidateProjectEmbeddedManager(t *testing.T) {
	err := ValidateProject(ProjectDTO{Name: "Core", Manager: &ManagerDTO{Name: "", Email: "bad"}})
	require.Error(t, err)
	assert.Equal(t, "manager.email: Email should be valid, manager.name: Name cannot be blank", err.Error())

	assert.NoError(t, ValidateProject(ProjectDTO{Name: "Core", Manager: &ManagerDTO{Name: "Jane", Email: "jane@example.com"}}))
}
