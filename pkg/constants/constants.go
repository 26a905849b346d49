package constants

import "github.com/go-playground/validator/v10"

// Validate is the process-wide validator instance used by DTO checks.
var Validate = validator.New(validator.WithRequiredStructEnabled())
