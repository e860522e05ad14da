package hierarchy

import (
	"context"

	"company_crud/internal/models"
	"company_crud/internal/store"
)

type TeamService struct {
	teams       store.Store[models.Team]
	departments Resolver[models.Department]
}

func NewTeamService(teams store.Store[models.Team], departments store.Store[models.Department]) *TeamService {
	return &TeamService{
		teams:       teams,
		departments: NewResolver(KindDepartment, departments),
	}
}

// ListByDepartment has the same unchecked-parent behaviour as
// DepartmentService.ListByCompany.
func (s *TeamService) ListByDepartment(ctx context.Context, departmentID int64) ([]TeamDTO, error) {
	rows, err := s.teams.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TeamDTO, 0)
	for _, t := range rows {
		if t.DepartmentID == departmentID {
			out = append(out, TeamToDTO(t))
		}
	}
	return out, nil
}

func (s *TeamService) Get(ctx context.Context, id int64) (TeamDTO, error) {
	t, err := s.teams.Get(ctx, id)
	if err != nil {
		return TeamDTO{}, notFound(err, KindTeam)
	}
	return TeamToDTO(t), nil
}

func (s *TeamService) Create(ctx context.Context, departmentID int64, in TeamDTO) (TeamDTO, error) {
	department, err := s.departments.Resolve(ctx, departmentID)
	if err != nil {
		return TeamDTO{}, err
	}
	t := TeamFromDTO(in)
	t.DepartmentID = department.ID
	t.Department = &department
	if err := s.teams.Save(ctx, &t); err != nil {
		return TeamDTO{}, err
	}
	return TeamToDTO(t), nil
}

func (s *TeamService) Update(ctx context.Context, id int64, in TeamDTO) (TeamDTO, error) {
	t, err := s.teams.Get(ctx, id)
	if err != nil {
		return TeamDTO{}, notFound(err, KindTeam)
	}
	setName(&t.Name, in.Name)
	if err := s.teams.Save(ctx, &t); err != nil {
		return TeamDTO{}, err
	}
	return TeamToDTO(t), nil
}

func (s *TeamService) Delete(ctx context.Context, id int64) error {
	return s.teams.Delete(ctx, id)
}
