package company

import (
	"strings"

	"github.com/avetra/hrdesk/pkg/constants"
	"github.com/avetra/hrdesk/pkg/serrors"
)

type CreateDTO struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	TaxID   string `json:"taxId"`
}

type UpdateDTO struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	TaxID   string `json:"taxId"`
}

func (d *CreateDTO) Ok() error {
	d.Name = strings.TrimSpace(d.Name)
	d.Address = strings.TrimSpace(d.Address)
	d.TaxID = strings.TrimSpace(d.TaxID)
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ErrValidation.WithMessage("name is required")
	}
	return nil
}

func (d *UpdateDTO) Ok() error {
	d.Name = strings.TrimSpace(d.Name)
	d.Address = strings.TrimSpace(d.Address)
	d.TaxID = strings.TrimSpace(d.TaxID)
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ErrValidation.WithMessage("name is required")
	}
	return nil
}
