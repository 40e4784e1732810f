package booking

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/macmobile/carwash/internal/domain"
)

type rule struct {
	field   func(*domain.BookingRequest) string
	tag     string
	kind    error
	message string
}

// Rules run in order and the first failure wins. The email rule only asks
// for an "@"; tightening it would turn away submissions accepted today.
var rules = []rule{
	{func(r *domain.BookingRequest) string { return r.Name }, "required,min=2", domain.ErrInvalidName, "Please provide a valid name"},
	{func(r *domain.BookingRequest) string { return r.Phone }, "required", domain.ErrMissingPhone, "Please provide a phone number"},
	{func(r *domain.BookingRequest) string { return r.Email }, "required,contains=@", domain.ErrInvalidEmail, "Please provide a valid email"},
	{func(r *domain.BookingRequest) string { return r.Service }, "required", domain.ErrMissingService, "Please select a service"},
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate trims every field and checks the submission. The trimmed request is
// returned on success; on failure the error is a *domain.ValidationError.
func (v *Validator) Validate(req domain.BookingRequest) (domain.BookingRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)
	req.Service = strings.TrimSpace(req.Service)
	req.Message = strings.TrimSpace(req.Message)

	for _, r := range rules {
		if err := v.validate.Var(r.field(&req), r.tag); err != nil {
			return domain.BookingRequest{}, &domain.ValidationError{Kind: r.kind, Message: r.message}
		}
	}
	return req, nil
}
