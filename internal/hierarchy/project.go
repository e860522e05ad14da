package hierarchy

import (
	"context"

	"company_crud/internal/models"
	"company_crud/internal/store"
)

type ProjectService struct {
	projects store.Store[models.Project]
	managers store.Store[models.Manager]
	teams    Resolver[models.Team]
}

func NewProjectService(projects store.Store[models.Project], managers store.Store[models.Manager], teams store.Store[models.Team]) *ProjectService {
	return &ProjectService{
		projects: projects,
		managers: managers,
		teams:    NewResolver(KindTeam, teams),
	}
}

func (s *ProjectService) Get(ctx context.Context, id int64) (ProjectDTO, error) {
	p, err := s.projects.Get(ctx, id)
	if err != nil {
		return ProjectDTO{}, notFound(err, KindProject)
	}
	return ProjectToDTO(p), nil
}

// Create attaches the project to team teamID. An embedded manager is
// saved first and linked to the new project. A team holds at most one
// project; a second insert fails on the projects.team_id unique index.
func (s *ProjectService) Create(ctx context.Context, teamID int64, in ProjectDTO) (ProjectDTO, error) {
	team, err := s.teams.Resolve(ctx, teamID)
	if err != nil {
		return ProjectDTO{}, err
	}
	p := ProjectFromDTO(in)
	p.TeamID = team.ID
	p.Team = &team

	if in.Manager != nil {
		m := ManagerFromDTO(*in.Manager)
		if err := s.managers.Save(ctx, &m); err != nil {
			return ProjectDTO{}, err
		}
		p.ManagerID = &m.ID
		p.Manager = &m
	}

	if err := s.projects.Save(ctx, &p); err != nil {
		return ProjectDTO{}, err
	}
	return ProjectToDTO(p), nil
}

// Update renames the project; team and manager links stay as they are.
func (s *ProjectService) Update(ctx context.Context, id int64, in ProjectDTO) (ProjectDTO, error) {
	p, err := s.projects.Get(ctx, id)
	if err != nil {
		return ProjectDTO{}, notFound(err, KindProject)
	}
	setName(&p.Name, in.Name)
	if err := s.projects.Save(ctx, &p); err != nil {
		return ProjectDTO{}, err
	}
	return ProjectToDTO(p), nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.projects.Delete(ctx, id)
}
