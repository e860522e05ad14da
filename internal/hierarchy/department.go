package hierarchy

import (
	"context"

	"company_crud/internal/models"
	"company_crud/internal/store"
)

type DepartmentService struct {
	departments store.Store[models.Department]
	companies   Resolver[models.Company]
}

func NewDepartmentService(departments store.Store[models.Department], companies store.Store[models.Company]) *DepartmentService {
	return &DepartmentService{
		departments: departments,
		companies:   NewResolver(KindCompany, companies),
	}
}

// ListByCompany filters every department by its stored company id. An
// unknown company id yields an empty list, not an error.
func (s *DepartmentService) ListByCompany(ctx context.Context, companyID int64) ([]DepartmentDTO, error) {
	rows, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DepartmentDTO, 0)
	for _, d := range rows {
		if d.CompanyID == companyID {
			out = append(out, DepartmentToDTO(d))
		}
	}
	return out, nil
}

func (s *DepartmentService) Get(ctx context.Context, id int64) (DepartmentDTO, error) {
	d, err := s.departments.Get(ctx, id)
	if err != nil {
		return DepartmentDTO{}, notFound(err, KindDepartment)
	}
	return DepartmentToDTO(d), nil
}

func (s *DepartmentService) Create(ctx context.Context, companyID int64, in DepartmentDTO) (DepartmentDTO, error) {
	company, err := s.companies.Resolve(ctx, companyID)
	if err != nil {
		return DepartmentDTO{}, err
	}
	d := DepartmentFromDTO(in)
	d.CompanyID = company.ID
	d.Company = &company
	if err := s.departments.Save(ctx, &d); err != nil {
		return DepartmentDTO{}, err
	}
	return DepartmentToDTO(d), nil
}

// Update renames the department. The company is never changed here.
func (s *DepartmentService) Update(ctx context.Context, id int64, in DepartmentDTO) (DepartmentDTO, error) {
	d, err := s.departments.Get(ctx, id)
	if err != nil {
		return DepartmentDTO{}, notFound(err, KindDepartment)
	}
	setName(&d.Name, in.Name)
	if err := s.departments.Save(ctx, &d); err != nil {
		return DepartmentDTO{}, err
	}
	return DepartmentToDTO(d), nil
}

func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	return s.departments.Delete(ctx, id)
}
