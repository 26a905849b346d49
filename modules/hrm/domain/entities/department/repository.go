package department

import (
	"context"
	"io"

	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
)

type Repository interface {
	List(ctx context.Context) ([]Department, error)
	Create(ctx context.Context, data *CreateDTO) (Department, error)
	Update(ctx context.Context, id string, data *UpdateDTO) (Department, error)
	DeleteMany(ctx context.Context, ids []string) error
	Import(ctx context.Context, filename string, r io.Reader) (int, error)
	Export(ctx context.Context, scope exports.Scope) ([]byte, error)
}
