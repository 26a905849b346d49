package remote

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/avetra/hrdesk/modules/hrm/domain/aggregates/charge"
	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
)

type chargeRepository struct {
	res resource[chargeRow]
}

func NewChargeRepository(client *Client) charge.Repository {
	return &chargeRepository{res: newResource[chargeRow](client, "/charges")}
}

func (r *chargeRepository) List(ctx context.Context) ([]charge.Charge, error) {
	return r.listWith(ctx, nil)
}

func (r *chargeRepository) ListByYear(ctx context.Context, params *charge.FindParams) ([]charge.Charge, error) {
	if params == nil || params.Year == 0 {
		return r.listWith(ctx, nil)
	}
	return r.listWith(ctx, url.Values{"year": {strconv.Itoa(params.Year)}})
}

func (r *chargeRepository) listWith(ctx context.Context, query url.Values) ([]charge.Charge, error) {
	rows, err := r.res.list(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]charge.Charge, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainCharge(row))
	}
	return out, nil
}

func (r *chargeRepository) Create(ctx context.Context, data *charge.CreateDTO) (charge.Charge, error) {
	row, err := r.res.create(ctx, data)
	if err != nil {
		return charge.Charge{}, err
	}
	return toDomainCharge(row), nil
}

func (r *chargeRepository) Update(ctx context.Context, id string, data *charge.UpdateDTO) (charge.Charge, error) {
	row, err := r.res.update(ctx, id, data)
	if err != nil {
		return charge.Charge{}, err
	}
	return toDomainCharge(row), nil
}

func (r *chargeRepository) DeleteMany(ctx context.Context, ids []string) error {
	return r.res.deleteMany(ctx, ids)
}

func (r *chargeRepository) Import(ctx context.Context, filename string, src io.Reader) (int, error) {
	return r.res.importFile(ctx, filename, src)
}

func (r *chargeRepository) Export(ctx context.Context, scope exports.Scope) ([]byte, error) {
	return r.res.exportFile(ctx, scope)
}
