package department

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/avetra/hrdesk/pkg/constants"
	"github.com/avetra/hrdesk/pkg/serrors"
)

type CreateDTO struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateDTO struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (d *CreateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
}

func (d *CreateDTO) Ok() error {
	d.Normalize()
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ErrValidation.WithMessage(firstFieldError(err))
	}
	return nil
}

func (d *UpdateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
}

func (d *UpdateDTO) Ok() error {
	d.Normalize()
	if err := constants.Validate.Struct(d); err != nil {
		return serrors.ErrValidation.WithMessage(firstFieldError(err))
	}
	return nil
}

func firstFieldError(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "invalid input"
	}
	return strings.ToLower(errs[0].Field()) + " is " + errs[0].Tag()
}
