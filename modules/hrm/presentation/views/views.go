package views

import (
	"github.com/sirupsen/logrus"

	"github.com/avetra/hrdesk/modules/hrm/domain/aggregates/charge"
	"github.com/avetra/hrdesk/modules/hrm/domain/entities/attendance"
	"github.com/avetra/hrdesk/modules/hrm/domain/entities/company"
	"github.com/avetra/hrdesk/modules/hrm/domain/entities/department"
	"github.com/avetra/hrdesk/modules/hrm/domain/entities/doctype"
	"github.com/avetra/hrdesk/modules/hrm/services"
	"github.com/avetra/hrdesk/pkg/listview"
)

// Deps are the collaborators every list page shares.
type Deps struct {
	Confirmer listview.Confirmer
	Notifier  listview.Notifier
	Logger    *logrus.Logger
	PageSize  int
}

func NewDepartmentList(svc *services.DepartmentService, d Deps) *listview.Engine[department.Department] {
	return listview.NewEngine(listview.Config[department.Department]{
		Source:    svc,
		Confirmer: d.Confirmer,
		Notifier:  d.Notifier,
		Logger:    d.Logger,
		PageSize:  d.PageSize,
		SearchFields: []func(department.Department) string{
			department.Department.Name,
			department.Department.Description,
		},
		Less: func(a, b department.Department) bool { return a.Name() < b.Name() },
	})
}

func NewCompanyList(svc *services.CompanyService, d Deps) *listview.Engine[company.Company] {
	return listview.NewEngine(listview.Config[company.Company]{
		Source:    svc,
		Confirmer: d.Confirmer,
		Notifier:  d.Notifier,
		Logger:    d.Logger,
		PageSize:  d.PageSize,
		SearchFields: []func(company.Company) string{
			company.Company.Name,
			company.Company.TaxID,
		},
		Less: func(a, b company.Company) bool { return a.Name() < b.Name() },
	})
}

func NewDocTypeList(svc *services.DocTypeService, d Deps) *listview.Engine[doctype.DocType] {
	return listview.NewEngine(listview.Config[doctype.DocType]{
		Source:    svc,
		Confirmer: d.Confirmer,
		Notifier:  d.Notifier,
		Logger:    d.Logger,
		PageSize:  d.PageSize,
		SearchFields: []func(doctype.DocType) string{
			doctype.DocType.Code,
			doctype.DocType.Label,
		},
		Less: func(a, b doctype.DocType) bool { return a.Code() < b.Code() },
	})
}

// NewChargeList orders entries latest period first.
func NewChargeList(svc *services.ChargeService, d Deps) *listview.Engine[charge.Charge] {
	return listview.NewEngine(listview.Config[charge.Charge]{
		Source:    svc,
		Confirmer: d.Confirmer,
		Notifier:  d.Notifier,
		Logger:    d.Logger,
		PageSize:  d.PageSize,
		SearchFields: []func(charge.Charge) string{
			charge.Charge.Period,
		},
		Less: func(a, b charge.Charge) bool { return a.Period() > b.Period() },
	})
}

func NewAttendanceList(svc *services.AttendanceService, d Deps) *listview.Engine[attendance.Record] {
	return listview.NewEngine(listview.Config[attendance.Record]{
		Source:    svc,
		Confirmer: d.Confirmer,
		Notifier:  d.Notifier,
		Logger:    d.Logger,
		PageSize:  d.PageSize,
		SearchFields: []func(attendance.Record) string{
			attendance.Record.Employee,
			attendance.Record.EmployeeID,
			func(r attendance.Record) string { return string(r.Status()) },
		},
		Less: func(a, b attendance.Record) bool { return a.Day().Before(b.Day()) },
	})
}
