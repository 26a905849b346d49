package services

import (
	"context"
	"io"

	"github.com/avetra/hrdesk/modules/hrm/domain/entities/department"
	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
	"github.com/avetra/hrdesk/pkg/eventbus"
)

type DepartmentService struct {
	repo      department.Repository
	publisher eventbus.EventBus
}

func NewDepartmentService(repo department.Repository, publisher eventbus.EventBus) *DepartmentService {
	return &DepartmentService{repo: repo, publisher: publisher}
}

func (s *DepartmentService) List(ctx context.Context) ([]department.Department, error) {
	return s.repo.List(ctx)
}

func (s *DepartmentService) Create(ctx context.Context, data *department.CreateDTO) (department.Department, error) {
	if err := authorizeHRM(ctx, DepartmentsObject, "create"); err != nil {
		return department.Department{}, err
	}
	if err := data.Ok(); err != nil {
		return department.Department{}, err
	}
	return s.repo.Create(ctx, data)
}

func (s *DepartmentService) Update(ctx context.Context, id string, data *department.UpdateDTO) (department.Department, error) {
	if err := authorizeHRM(ctx, DepartmentsObject, "update"); err != nil {
		return department.Department{}, err
	}
	if err := data.Ok(); err != nil {
		return department.Department{}, err
	}
	return s.repo.Update(ctx, id, data)
}

func (s *DepartmentService) DeleteMany(ctx context.Context, ids []string) error {
	if err := authorizeHRM(ctx, DepartmentsObject, "delete"); err != nil {
		return err
	}
	return s.repo.DeleteMany(ctx, ids)
}

func (s *DepartmentService) Import(ctx context.Context, filename string, r io.Reader) (int, error) {
	if err := authorizeHRM(ctx, DepartmentsObject, "import"); err != nil {
		return 0, err
	}
	return s.repo.Import(ctx, filename, r)
}

func (s *DepartmentService) Export(ctx context.Context, scope exports.Scope) ([]byte, string, error) {
	if err := authorizeHRM(ctx, DepartmentsObject, "export"); err != nil {
		return nil, "", err
	}
	blob, err := s.repo.Export(ctx, scope)
	if err != nil {
		return nil, "", err
	}
	return blob, exports.Filename("services", scope), nil
}
