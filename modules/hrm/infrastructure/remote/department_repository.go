package remote

import (
	"context"
	"io"

	"github.com/avetra/hrdesk/modules/hrm/domain/entities/department"
	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
)

type departmentRepository struct {
	res resource[departmentRow]
}

func NewDepartmentRepository(client *Client) department.Repository {
	return &departmentRepository{res: newResource[departmentRow](client, "/departments")}
}

func (r *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	rows, err := r.res.list(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]department.Department, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainDepartment(row))
	}
	return out, nil
}

func (r *departmentRepository) Create(ctx context.Context, data *department.CreateDTO) (department.Department, error) {
	row, err := r.res.create(ctx, data)
	if err != nil {
		return department.Department{}, err
	}
	return toDomainDepartment(row), nil
}

func (r *departmentRepository) Update(ctx context.Context, id string, data *department.UpdateDTO) (department.Department, error) {
	row, err := r.res.update(ctx, id, data)
	if err != nil {
		return department.Department{}, err
	}
	return toDomainDepartment(row), nil
}

func (r *departmentRepository) DeleteMany(ctx context.Context, ids []string) error {
	return r.res.deleteMany(ctx, ids)
}

func (r *departmentRepository) Import(ctx context.Context, filename string, src io.Reader) (int, error) {
	return r.res.importFile(ctx, filename, src)
}

func (r *departmentRepository) Export(ctx context.Context, scope exports.Scope) ([]byte, error) {
	return r.res.exportFile(ctx, scope)
}
