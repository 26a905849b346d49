package services

import (
	"context"
	"fmt"
	"io"

	"github.com/avetra/hrdesk/modules/hrm/domain/entities/attendance"
	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
	"github.com/avetra/hrdesk/modules/hrm/infrastructure/excel"
	"github.com/avetra/hrdesk/pkg/eventbus"
)

const attendanceDataset = "pointages"

type AttendanceService struct {
	repo      attendance.Repository
	publisher eventbus.EventBus
}

func NewAttendanceService(repo attendance.Repository, publisher eventbus.EventBus) *AttendanceService {
	return &AttendanceService{repo: repo, publisher: publisher}
}

func (s *AttendanceService) List(ctx context.Context) ([]attendance.Record, error) {
	return s.repo.List(ctx)
}

func (s *AttendanceService) DeleteMany(ctx context.Context, ids []string) error {
	if err := authorizeHRM(ctx, AttendanceObject, "delete"); err != nil {
		return err
	}
	return s.repo.DeleteMany(ctx, ids)
}

func (s *AttendanceService) Import(ctx context.Context, filename string, r io.Reader) (int, error) {
	if err := authorizeHRM(ctx, AttendanceObject, "import"); err != nil {
		return 0, err
	}
	return s.repo.Import(ctx, filename, r)
}

// Export fetches the server-rendered workbook for the scope.
func (s *AttendanceService) Export(ctx context.Context, scope exports.Scope) ([]byte, string, error) {
	if err := authorizeHRM(ctx, AttendanceObject, "export"); err != nil {
		return nil, "", err
	}
	blob, err := s.repo.Export(ctx, scope)
	if err != nil {
		return nil, "", err
	}
	return blob, exports.Filename(attendanceDataset, scope), nil
}

// ExportWorkbook builds the scope's workbook locally from the listed
// records, for callers that cannot reach the export endpoint.
func (s *AttendanceService) ExportWorkbook(ctx context.Context, scope exports.Scope) ([]byte, string, error) {
	if err := authorizeHRM(ctx, AttendanceObject, "export"); err != nil {
		return nil, "", err
	}
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, "", err
	}

	data := make([][]any, 0, len(rows))
	for _, row := range rows {
		if !scope.Contains(row.Day()) {
			continue
		}
		data = append(data, []any{
			row.EmployeeID(),
			row.Employee(),
			row.Day().Format("2006-01-02"),
			string(row.Status()),
			fmt.Sprintf("%.2f", row.Hours()),
		})
	}

	blob, err := excel.BuildWorkbook("Pointages",
		[]string{"Matricule", "Employé", "Date", "Statut", "Heures"}, data)
	if err != nil {
		return nil, "", err
	}
	return blob, exports.Filename(attendanceDataset, scope), nil
}
