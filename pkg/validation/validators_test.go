package validation_test

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"viang-solution-backend/internal/domain"
	"viang-solution-backend/pkg/validation"
)

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func validRequest() domain.ContactRequest {
	return domain.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "+1 (809) 555-0101",
		Service: "Commercial Cleaning",
		Message: "I would like a quote for weekly office cleaning.",
	}
}

func TestValidRequestPasses(t *testing.T) {
	v := newValidator()
	req := validRequest()
	assert.NoError(t, v.Struct(req))
}

func TestRequiredFields(t *testing.T) {
	v := newValidator()

	cases := []struct {
		field  string
		mutate func(*domain.ContactRequest)
	}{
		{"name", func(r *domain.ContactRequest) { r.Name = "" }},
		{"email", func(r *domain.ContactRequest) { r.Email = "" }},
		{"service", func(r *domain.ContactRequest) { r.Service = "" }},
		{"message", func(r *domain.ContactRequest) { r.Message = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			err := v.Struct(req)
			assert.Error(t, err)

			fields := validation.FieldErrors(err)
			assert.Contains(t, fields, tc.field)
		})
	}
}

func TestEmailShape(t *testing.T) {
	v := newValidator()

	cases := []struct {
		email string
		valid bool
	}{
		{"a@b.c", true},
		{"jane.doe@mail.example.org", true},
		{"a@@b.c", false},
		{"a b@c.d", false},
		{"a@b", false},
		{"@b.c", false},
		{"a@.c", false},
		{"plainaddress", false},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			req := validRequest()
			req.Email = tc.email
			err := v.Struct(req)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, validation.FieldErrors(err), "email")
			}
		})
	}
}

func TestMessageLengthBoundary(t *testing.T) {
	v := newValidator()

	req := validRequest()
	req.Message = strings.Repeat("x", 9)
	assert.Error(t, v.Struct(req), "9 characters must fail")

	req.Message = strings.Repeat("x", 10)
	assert.NoError(t, v.Struct(req), "10 characters must pass")

	req.Message = strings.Repeat("x", 1001)
	assert.Error(t, v.Struct(req), "over 1000 characters must fail")
}

func TestNameLengthBoundary(t *testing.T) {
	v := newValidator()

	req := validRequest()
	req.Name = "J"
	assert.Error(t, v.Struct(req))

	req.Name = "Jo"
	assert.NoError(t, v.Struct(req))
}

func TestPhoneShape(t *testing.T) {
	v := newValidator()

	cases := []struct {
		phone string
		valid bool
	}{
		{"", true}, // optional at the tag level; required-ness is a config flag
		{"12345678", true},
		{"+1 (809) 555-0101", true},
		{"555-0101", true},
		{"1234567", false},    // too short
		{"phone12345", false}, // letters
		{"12345678x", false},  // trailing junk
	}

	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			req := validRequest()
			req.Phone = tc.phone
			err := v.Struct(req)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, validation.FieldErrors(err), "phone")
			}
		})
	}
}

func TestFieldErrorsUsesWireNames(t *testing.T) {
	v := newValidator()

	err := v.Struct(domain.ContactRequest{})
	assert.Error(t, err)

	fields := validation.FieldErrors(err)
	for name := range fields {
		assert.Equal(t, strings.ToLower(name), name, "field names should be wire names, not struct names")
	}
	assert.Equal(t, "This field is required", fields["name"])
}
