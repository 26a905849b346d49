package charge

import (
	"github.com/shopspring/decimal"

	"github.com/avetra/hrdesk/pkg/constants"
	"github.com/avetra/hrdesk/pkg/serrors"
)

type CreateDTO struct {
	Period        string  `json:"period" validate:"required,len=7"`
	PayrollBase   float64 `json:"payrollBase" validate:"gte=0"`
	EmployerShare float64 `json:"employerShare" validate:"gte=0"`
	GrossSalary   float64 `json:"grossSalary" validate:"gte=0"`
	EmployeeShare float64 `json:"employeeShare" validate:"gte=0"`
}

type UpdateDTO struct {
	Period        string  `json:"period" validate:"required,len=7"`
	PayrollBase   float64 `json:"payrollBase" validate:"gte=0"`
	EmployerShare float64 `json:"employerShare" validate:"gte=0"`
	GrossSalary   float64 `json:"grossSalary" validate:"gte=0"`
	EmployeeShare float64 `json:"employeeShare" validate:"gte=0"`
}

func (d *CreateDTO) Ok() error {
	d.Period = NormalizePeriod(d.Period)
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ErrValidation.WithMessage("invalid charge entry")
	}
	return nil
}

func (d *CreateDTO) ToEntity() Charge {
	return New(
		d.Period,
		decimal.NewFromFloat(d.PayrollBase),
		decimal.NewFromFloat(d.EmployerShare),
		decimal.NewFromFloat(d.GrossSalary),
		decimal.NewFromFloat(d.EmployeeShare),
	)
}

func (d *UpdateDTO) Ok() error {
	d.Period = NormalizePeriod(d.Period)
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ErrValidation.WithMessage("invalid charge entry")
	}
	return nil
}

func (d *UpdateDTO) ToEntity(id string) Charge {
	return Hydrate(
		id,
		d.Period,
		decimal.NewFromFloat(d.PayrollBase),
		decimal.NewFromFloat(d.EmployerShare),
		decimal.NewFromFloat(d.GrossSalary),
		decimal.NewFromFloat(d.EmployeeShare),
	)
}
