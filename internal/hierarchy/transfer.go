package hierarchy

import "company_crud/internal/models"

// Transfer shapes exchanged at the HTTP boundary. Parents are identified
// by name; child lists are computed from the preloaded associations.

type CompanyDTO struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	DepartmentNames []string `json:"departmentNames"`
}

type DepartmentDTO struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	CompanyName string   `json:"companyName"`
	TeamNames   []string `json:"teamNames"`
}

type TeamDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	DepartmentName string `json:"departmentName"`
	ProjectName    string `json:"projectName"`
}

type ProjectDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	TeamName    string `json:"teamName"`
	ManagerName string `json:"managerName"`

	// Manager is only read on create; when set it is persisted together
	// with the project.
	Manager *ManagerDTO `json:"manager,omitempty"`
}

type ManagerDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func CompanyToDTO(c models.Company) CompanyDTO {
	names := make([]string, 0, len(c.Departments))
	for _, d := range c.Departments {
		names = append(names, d.Name)
	}
	return CompanyDTO{ID: c.ID, Name: c.Name, DepartmentNames: names}
}

func CompanyFromDTO(in CompanyDTO) models.Company {
	return models.Company{Name: in.Name}
}

func DepartmentToDTO(d models.Department) DepartmentDTO {
	out := DepartmentDTO{ID: d.ID, Name: d.Name, TeamNames: make([]string, 0, len(d.Teams))}
	if d.Company != nil {
		out.CompanyName = d.Company.Name
	}
	for _, t := range d.Teams {
		out.TeamNames = append(out.TeamNames, t.Name)
	}
	return out
}

// DepartmentFromDTO ignores CompanyName and TeamNames; the company is
// attached by the resolver.
func DepartmentFromDTO(in DepartmentDTO) models.Department {
	return models.Department{Name: in.Name}
}

func TeamToDTO(t models.Team) TeamDTO {
	out := TeamDTO{ID: t.ID, Name: t.Name}
	if t.Department != nil {
		out.DepartmentName = t.Department.Name
	}
	if t.Project != nil {
		out.ProjectName = t.Project.Name
	}
	return out
}

func TeamFromDTO(in TeamDTO) models.Team {
	return models.Team{Name: in.Name}
}

func ProjectToDTO(p models.Project) ProjectDTO {
	out := ProjectDTO{ID: p.ID, Name: p.Name}
	if p.Team != nil {
		out.TeamName = p.Team.Name
	}
	if p.Manager != nil {
		out.ManagerName = p.Manager.Name
	}
	return out
}

// ProjectFromDTO sets neither the team nor the manager.
func ProjectFromDTO(in ProjectDTO) models.Project {
	return models.Project{Name: in.Name}
}

func ManagerToDTO(m models.Manager) ManagerDTO {
	return ManagerDTO{ID: m.ID, Name: m.Name, Email: m.Email}
}

func ManagerFromDTO(in ManagerDTO) models.Manager {
	return models.Manager{Name: in.Name, Email: in.Email}
}
