package remote

import (
	"context"
	"io"

	"github.com/avetra/hrdesk/modules/hrm/domain/entities/attendance"
	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
)

type attendanceRepository struct {
	res resource[attendanceRow]
}

func NewAttendanceRepository(client *Client) attendance.Repository {
	return &attendanceRepository{res: newResource[attendanceRow](client, "/attendance")}
}

func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	rows, err := r.res.list(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := toDomainAttendance(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *attendanceRepository) DeleteMany(ctx context.Context, ids []string) error {
	return r.res.deleteMany(ctx, ids)
}

func (r *attendanceRepository) Import(ctx context.Context, filename string, src io.Reader) (int, error) {
	return r.res.importFile(ctx, filename, src)
}

func (r *attendanceRepository) Export(ctx context.Context, scope exports.Scope) ([]byte, error) {
	return r.res.exportFile(ctx, scope)
}
