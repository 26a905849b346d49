package remote

import (
	"context"
	"io"

	"github.com/avetra/hrdesk/modules/hrm/domain/entities/company"
	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
)

type companyRepository struct {
	res resource[companyRow]
}

func NewCompanyRepository(client *Client) company.Repository {
	return &companyRepository{res: newResource[companyRow](client, "/companies")}
}

func (r *companyRepository) List(ctx context.Context) ([]company.Company, error) {
	rows, err := r.res.list(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]company.Company, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainCompany(row))
	}
	return out, nil
}

func (r *companyRepository) Create(ctx context.Context, data *company.CreateDTO) (company.Company, error) {
	row, err := r.res.create(ctx, data)
	if err != nil {
		return company.Company{}, err
	}
	return toDomainCompany(row), nil
}

func (r *companyRepository) Update(ctx context.Context, id string, data *company.UpdateDTO) (company.Company, error) {
	row, err := r.res.update(ctx, id, data)
	if err != nil {
		return company.Company{}, err
	}
	return toDomainCompany(row), nil
}

func (r *companyRepository) DeleteMany(ctx context.Context, ids []string) error {
	return r.res.deleteMany(ctx, ids)
}

func (r *companyRepository) Import(ctx context.Context, filename string, src io.Reader) (int, error) {
	return r.res.importFile(ctx, filename, src)
}

func (r *companyRepository) Export(ctx context.Context, scope exports.Scope) ([]byte, error) {
	return r.res.exportFile(ctx, scope)
}
