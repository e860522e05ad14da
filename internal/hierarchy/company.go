package hierarchy

import (
	"context"

	"company_crud/internal/models"
	"company_crud/internal/store"
)

type CompanyService struct {
	companies store.Store[models.Company]
}

func NewCompanyService(companies store.Store[models.Company]) *CompanyService {
	return &CompanyService{companies: companies}
}

func (s *CompanyService) List(ctx context.Context) ([]CompanyDTO, error) {
	rows, err := s.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CompanyDTO, 0, len(rows))
	for _, c := range rows {
		out = append(out, CompanyToDTO(c))
	}
	return out, nil
}

func (s *CompanyService) Get(ctx context.Context, id int64) (CompanyDTO, error) {
	c, err := s.companies.Get(ctx, id)
	if err != nil {
		return CompanyDTO{}, notFound(err, KindCompany)
	}
	return CompanyToDTO(c), nil
}

func (s *CompanyService) Create(ctx context.Context, in CompanyDTO) (CompanyDTO, error) {
	c := CompanyFromDTO(in)
	if err := s.companies.Save(ctx, &c); err != nil {
		return CompanyDTO{}, err
	}
	return CompanyToDTO(c), nil
}

func (s *CompanyService) Update(ctx context.Context, id int64, in CompanyDTO) (CompanyDTO, error) {
	c, err := s.companies.Get(ctx, id)
	if err != nil {
		return CompanyDTO{}, notFound(err, KindCompany)
	}
	setName(&c.Name, in.Name)
	if err := s.companies.Save(ctx, &c); err != nil {
		return CompanyDTO{}, err
	}
	return CompanyToDTO(c), nil
}

// Delete removes the company only; its departments are left in place.
func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	return s.companies.Delete(ctx, id)
}
