package charge

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Employer and employee contribution rates applied when the entry form
// derives the share fields from their bases.
var (
	EmployerRate = decimal.RequireFromString("0.27")
	EmployeeRate = decimal.RequireFromString("0.0918")
)

// Charge is one monthly personnel-charge entry. The period key
// ("YYYY-MM") is unique across the collection.
type Charge struct {
	id            string
	period        string
	payrollBase   decimal.Decimal
	employerShare decimal.Decimal
	grossSalary   decimal.Decimal
	employeeShare decimal.Decimal
}

func New(period string, payrollBase, employerShare, grossSalary, employeeShare decimal.Decimal) Charge {
	return Charge{
		period:        NormalizePeriod(period),
		payrollBase:   payrollBase,
		employerShare: employerShare,
		grossSalary:   grossSalary,
		employeeShare: employeeShare,
	}
}

func Hydrate(id, period string, payrollBase, employerShare, grossSalary, employeeShare decimal.Decimal) Charge {
	c := New(period, payrollBase, employerShare, grossSalary, employeeShare)
	c.id = id
	return c
}

func (c Charge) ID() string                      { return c.id }
func (c Charge) Period() string                  { return c.period }
func (c Charge) PayrollBase() decimal.Decimal    { return c.payrollBase }
func (c Charge) EmployerShare() decimal.Decimal  { return c.employerShare }
func (c Charge) GrossSalary() decimal.Decimal    { return c.grossSalary }
func (c Charge) EmployeeShare() decimal.Decimal  { return c.employeeShare }
func (c Charge) Total() decimal.Decimal          { return c.employerShare.Add(c.employeeShare) }
func (c Charge) ItemID() string                  { return c.id }

func NormalizePeriod(period string) string { return strings.TrimSpace(period) }
