package company

import (
	"context"
	"io"

	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
)

type Repository interface {
	List(ctx context.Context) ([]Company, error)
	Create(ctx context.Context, data *CreateDTO) (Company, error)
	Update(ctx context.Context, id string, data *UpdateDTO) (Company, error)
	DeleteMany(ctx context.Context, ids []string) error
	Import(ctx context.Context, filename string, r io.Reader) (int, error)
	Export(ctx context.Context, scope exports.Scope) ([]byte, error)
}
