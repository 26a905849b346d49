package services

import (
	"context"
	"io"

	"github.com/avetra/hrdesk/modules/hrm/domain/entities/company"
	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
	"github.com/avetra/hrdesk/pkg/eventbus"
)

type CompanyService struct {
	repo      company.Repository
	publisher eventbus.EventBus
}

func NewCompanyService(repo company.Repository, publisher eventbus.EventBus) *CompanyService {
	return &CompanyService{repo: repo, publisher: publisher}
}

func (s *CompanyService) List(ctx context.Context) ([]company.Company, error) {
	return s.repo.List(ctx)
}

func (s *CompanyService) Create(ctx context.Context, data *company.CreateDTO) (company.Company, error) {
	if err := authorizeHRM(ctx, CompaniesObject, "create"); err != nil {
		return company.Company{}, err
	}
	if err := data.Ok(); err != nil {
		return company.Company{}, err
	}
	return s.repo.Create(ctx, data)
}

func (s *CompanyService) Update(ctx context.Context, id string, data *company.UpdateDTO) (company.Company, error) {
	if err := authorizeHRM(ctx, CompaniesObject, "update"); err != nil {
		return company.Company{}, err
	}
	if err := data.Ok(); err != nil {
		return company.Company{}, err
	}
	return s.repo.Update(ctx, id, data)
}

func (s *CompanyService) DeleteMany(ctx context.Context, ids []string) error {
	if err := authorizeHRM(ctx, CompaniesObject, "delete"); err != nil {
		return err
	}
	return s.repo.DeleteMany(ctx, ids)
}

func (s *CompanyService) Import(ctx context.Context, filename string, r io.Reader) (int, error) {
	if err := authorizeHRM(ctx, CompaniesObject, "import"); err != nil {
		return 0, err
	}
	return s.repo.Import(ctx, filename, r)
}

func (s *CompanyService) Export(ctx context.Context, scope exports.Scope) ([]byte, string, error) {
	if err := authorizeHRM(ctx, CompaniesObject, "export"); err != nil {
		return nil, "", err
	}
	blob, err := s.repo.Export(ctx, scope)
	if err != nil {
		return nil, "", err
	}
	return blob, exports.Filename("societes", scope), nil
}
