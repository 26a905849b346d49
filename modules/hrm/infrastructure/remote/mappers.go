package remote

import (
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/avetra/hrdesk/modules/hrm/domain/aggregates/charge"
	"github.com/avetra/hrdesk/modules/hrm/domain/entities/attendance"
	"github.com/avetra/hrdesk/modules/hrm/domain/entities/company"
	"github.com/avetra/hrdesk/modules/hrm/domain/entities/department"
	"github.com/avetra/hrdesk/modules/hrm/domain/entities/doctype"
)

type departmentRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toDomainDepartment(r departmentRow) department.Department {
	return department.Hydrate(r.ID, r.Name, r.Description)
}

type companyRow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	TaxID   string `json:"taxId"`
}

func toDomainCompany(r companyRow) company.Company {
	return company.Hydrate(r.ID, r.Name, r.Address, r.TaxID)
}

type docTypeRow struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Label string `json:"label"`
}

func toDomainDocType(r docTypeRow) doctype.DocType {
	return doctype.Hydrate(r.ID, r.Code, r.Label)
}

type chargeRow struct {
	ID            string  `json:"id"`
	Period        string  `json:"period"`
	PayrollBase   float64 `json:"payrollBase"`
	EmployerShare float64 `json:"employerShare"`
	GrossSalary   float64 `json:"grossSalary"`
	EmployeeShare float64 `json:"employeeShare"`
}

func toDomainCharge(r chargeRow) charge.Charge {
	return charge.Hydrate(
		r.ID,
		r.Period,
		decimal.NewFromFloat(r.PayrollBase),
		decimal.NewFromFloat(r.EmployerShare),
		decimal.NewFromFloat(r.GrossSalary),
		decimal.NewFromFloat(r.EmployeeShare),
	)
}

type attendanceRow struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	Employee   string  `json:"employee"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	Hours      float64 `json:"hours"`
}

func toDomainAttendance(r attendanceRow) (attendance.Record, error) {
	day, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return attendance.Record{}, gerrors.Wrapf(err, "invalid attendance date %q", r.Date)
	}
	return attendance.Hydrate(r.ID, r.EmployeeID, r.Employee, day, attendance.Status(r.Status), r.Hours), nil
}
