package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/avetra/hrdesk/modules/hrm/domain/aggregates/charge"
	"github.com/avetra/hrdesk/pkg/derivedform"
)

// Field names of the charge entry form.
const (
	FieldPeriod        = "period"
	FieldPayrollBase   = "payrollBase"
	FieldEmployerShare = "employerShare"
	FieldGrossSalary   = "grossSalary"
	FieldEmployeeShare = "employeeShare"
)

// NewChargeForm builds the personnel-charge entry form: the two share
// fields track their bases at the statutory rates until the user
// overrides them.
func NewChargeForm(svc *ChargeService, notifier derivedform.Notifier, log *logrus.Logger) *derivedform.Form {
	return derivedform.New(derivedform.Config{
		Bindings: []derivedform.Binding{
			{Source: FieldPayrollBase, Derived: FieldEmployerShare, Rate: charge.EmployerRate},
			{Source: FieldGrossSalary, Derived: FieldEmployeeShare, Rate: charge.EmployeeRate},
		},
		KeyField: FieldPeriod,
		NumericFields: []string{
			FieldPayrollBase, FieldEmployerShare, FieldGrossSalary, FieldEmployeeShare,
		},
		Defaults: map[string]string{FieldPeriod: ""},
		Store:    &chargeFormStore{svc: svc},
		Notifier: notifier,
		Logger:   log,
	})
}

// ChargeFormFields flattens an existing entry into the form's field
// map for edit mode.
func ChargeFormFields(c charge.Charge) map[string]string {
	return map[string]string{
		FieldPeriod:        c.Period(),
		FieldPayrollBase:   c.PayrollBase().String(),
		FieldEmployerShare: c.EmployerShare().String(),
		FieldGrossSalary:   c.GrossSalary().String(),
		FieldEmployeeShare: c.EmployeeShare().String(),
	}
}

// chargeFormStore adapts the normalized form payload to the charge
// DTOs.
type chargeFormStore struct {
	svc *ChargeService
}

func (s *chargeFormStore) Create(ctx context.Context, payload map[string]any) error {
	_, err := s.svc.Create(ctx, &charge.CreateDTO{
		Period:        asString(payload[FieldPeriod]),
		PayrollBase:   asFloat(payload[FieldPayrollBase]),
		EmployerShare: asFloat(payload[FieldEmployerShare]),
		GrossSalary:   asFloat(payload[FieldGrossSalary]),
		EmployeeShare: asFloat(payload[FieldEmployeeShare]),
	})
	return err
}

func (s *chargeFormStore) Update(ctx context.Context, id string, payload map[string]any) error {
	_, err := s.svc.Update(ctx, id, &charge.UpdateDTO{
		Period:        asString(payload[FieldPeriod]),
		PayrollBase:   asFloat(payload[FieldPayrollBase]),
		EmployerShare: asFloat(payload[FieldEmployerShare]),
		GrossSalary:   asFloat(payload[FieldGrossSalary]),
		EmployeeShare: asFloat(payload[FieldEmployeeShare]),
	})
	return err
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	f, _ := v.(float64)
	return f
}
