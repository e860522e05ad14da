package hierarchy

import (
	"context"
	"strings"

	"company_crud/internal/models"
	"company_crud/internal/store"
)

type ManagerService struct {
	managers store.Store[models.Manager]
}

func NewManagerService(managers store.Store[models.Manager]) *ManagerService {
	return &ManagerService{managers: managers}
}

func (s *ManagerService) Get(ctx context.Context, id int64) (ManagerDTO, error) {
	m, err := s.managers.Get(ctx, id)
	if err != nil {
		return ManagerDTO{}, notFound(err, KindManager)
	}
	return ManagerToDTO(m), nil
}

func (s *ManagerService) Create(ctx context.Context, in ManagerDTO) (ManagerDTO, error) {
	m := ManagerFromDTO(in)
	if err := s.managers.Save(ctx, &m); err != nil {
		return ManagerDTO{}, err
	}
	return ManagerToDTO(m), nil
}

func (s *ManagerService) Update(ctx context.Context, id int64, in ManagerDTO) (ManagerDTO, error) {
	m, err := s.managers.Get(ctx, id)
	if err != nil {
		return ManagerDTO{}, notFound(err, KindManager)
	}
	setName(&m.Name, in.Name)
	if strings.TrimSpace(in.Email) != "" {
		m.Email = in.Email
	}
	if err := s.managers.Save(ctx, &m); err != nil {
		return ManagerDTO{}, err
	}
	return ManagerToDTO(m), nil
}

// Delete does not touch projects that reference the manager.
func (s *ManagerService) Delete(ctx context.Context, id int64) error {
	return s.managers.Delete(ctx, id)
}
