package remote

import (
	"context"
	"io"

	"github.com/avetra/hrdesk/modules/hrm/domain/entities/doctype"
	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
)

type docTypeRepository struct {
	res resource[docTypeRow]
}

func NewDocTypeRepository(client *Client) doctype.Repository {
	return &docTypeRepository{res: newResource[docTypeRow](client, "/document-types")}
}

func (r *docTypeRepository) List(ctx context.Context) ([]doctype.DocType, error) {
	rows, err := r.res.list(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]doctype.DocType, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainDocType(row))
	}
	return out, nil
}

func (r *docTypeRepository) Create(ctx context.Context, data *doctype.CreateDTO) (doctype.DocType, error) {
	row, err := r.res.create(ctx, data)
	if err != nil {
		return doctype.DocType{}, err
	}
	return toDomainDocType(row), nil
}

func (r *docTypeRepository) Update(ctx context.Context, id string, data *doctype.UpdateDTO) (doctype.DocType, error) {
	row, err := r.res.update(ctx, id, data)
	if err != nil {
		return doctype.DocType{}, err
	}
	return toDomainDocType(row), nil
}

func (r *docTypeRepository) DeleteMany(ctx context.Context, ids []string) error {
	return r.res.deleteMany(ctx, ids)
}

func (r *docTypeRepository) Import(ctx context.Context, filename string, src io.Reader) (int, error) {
	return r.res.importFile(ctx, filename, src)
}

func (r *docTypeRepository) Export(ctx context.Context, scope exports.Scope) ([]byte, error) {
	return r.res.exportFile(ctx, scope)
}
