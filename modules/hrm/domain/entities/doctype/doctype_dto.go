package doctype

import (
	"github.com/avetra/hrdesk/pkg/constants"
	"github.com/avetra/hrdesk/pkg/serrors"
)

type CreateDTO struct {
	Code  string `json:"code" validate:"required"`
	Label string `json:"label" validate:"required"`
}

type UpdateDTO struct {
	Code  string `json:"code" validate:"required"`
	Label string `json:"label" validate:"required"`
}

func (d *CreateDTO) Ok() error {
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ErrValidation.WithMessage("code and label are required")
	}
	return nil
}

func (d *UpdateDTO) Ok() error {
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ErrValidation.WithMessage("code and label are required")
	}
	return nil
}
