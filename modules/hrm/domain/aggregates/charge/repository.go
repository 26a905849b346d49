package charge

import (
	"context"
	"io"

	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
)

// FindParams scopes a listing; a zero Year means no year filter.
type FindParams struct {
	Year int
}

type Repository interface {
	List(ctx context.Context) ([]Charge, error)
	ListByYear(ctx context.Context, params *FindParams) ([]Charge, error)
	Create(ctx context.Context, data *CreateDTO) (Charge, error)
	Update(ctx context.Context, id string, data *UpdateDTO) (Charge, error)
	DeleteMany(ctx context.Context, ids []string) error
	Import(ctx context.Context, filename string, r io.Reader) (int, error)
	Export(ctx context.Context, scope exports.Scope) ([]byte, error)
}
