package doctype

import (
	"context"
	"io"

	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
)

type Repository interface {
	List(ctx context.Context) ([]DocType, error)
	Create(ctx context.Context, data *CreateDTO) (DocType, error)
	Update(ctx context.Context, id string, data *UpdateDTO) (DocType, error)
	DeleteMany(ctx context.Context, ids []string) error
	Import(ctx context.Context, filename string, r io.Reader) (int, error)
	Export(ctx context.Context, scope exports.Scope) ([]byte, error)
}
