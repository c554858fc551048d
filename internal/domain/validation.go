package domain

import (
	"strings"
	"unicode/utf8"

	goa "goa.design/goa/v3/pkg"

	apperrors "carlygage/pkg/errors"
)

// EmailPattern is the address syntax accepted for inquiries
const EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

const (
	minNameLength    = 2
	minPhoneLength   = 10
	minMessageLength = 10
)

// User-facing validation messages
const (
	MsgName        = "Please share your name"
	MsgEmail       = "A valid email is required"
	MsgPhone       = "A valid phone is required"
	MsgSessionType = "Please select a session type"
	MsgLocation    = "Please enter your location"
	MsgMessage     = "Please share a bit more"
)

// FieldError is a single rule violation
type FieldError struct {
	Field   string
	Message string
	Err     error
}

// ValidationErrors lists every violation found in one pass, in form order
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Cause merges the underlying goa validation errors
func (v ValidationErrors) Cause() error {
	var err error
	for _, fe := range v {
		err = goa.MergeErrors(err, fe.Err)
	}
	return err
}

// Unwrap exposes the failure as a VALIDATION_ERROR AppError
func (v ValidationErrors) Unwrap() error {
	return apperrors.Wrap(apperrors.ErrCodeValidation, "inquiry failed validation", v.Cause())
}

// Fields maps each invalid field to its user-facing message
func (v ValidationErrors) Fields() map[string]string {
	fields := make(map[string]string, len(v))
	for _, fe := range v {
		fields[fe.Field] = fe.Message
	}
	return fields
}

// Has reports whether field has a violation
func (v ValidationErrors) Has(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// ValidateInquiry trims and checks the raw form. It returns the validated
// request, or ValidationErrors naming every invalid field.
func ValidateInquiry(form InquiryForm) (InquiryRequest, error) {
	req := InquiryRequest{
		Name:        strings.TrimSpace(form.Name),
		Email:       strings.TrimSpace(form.Email),
		Phone:       strings.TrimSpace(form.Phone),
		SessionType: SessionType(strings.TrimSpace(form.SessionType)),
		Location:    strings.TrimSpace(form.Location),
		Message:     strings.TrimSpace(form.Message),
	}

	var errs ValidationErrors
	add := func(field, msg string, err error) {
		if err != nil {
			errs = append(errs, FieldError{Field: field, Message: msg, Err: err})
		}
	}

	add("name", MsgName, minLength("name", req.Name, minNameLength))

	if req.Email == "" {
		add("email", MsgEmail, goa.MissingFieldError("email", "inquiry"))
	} else {
		add("email", MsgEmail, goa.ValidatePattern("email", req.Email, EmailPattern))
	}

	add("phone", MsgPhone, minLength("phone", req.Phone, minPhoneLength))

	switch {
	case req.SessionType == "":
		add("sessionType", MsgSessionType, goa.MissingFieldError("sessionType", "inquiry"))
	case !req.SessionType.Valid():
		allowed := make([]any, len(SessionTypes))
		for i, st := range SessionTypes {
			allowed[i] = string(st)
		}
		add("sessionType", MsgSessionType, goa.InvalidEnumValueError("sessionType", string(req.SessionType), allowed))
	}

	if req.Location == "" {
		add("location", MsgLocation, goa.MissingFieldError("location", "inquiry"))
	}

	// message is optional; an empty value is treated as absent
	if req.Message != "" {
		add("message", MsgMessage, minLength("message", req.Message, minMessageLength))
	}

	if len(errs) > 0 {
		return InquiryRequest{}, errs
	}
	return req, nil
}

func minLength(field, value string, min int) error {
	if value == "" {
		return goa.MissingFieldError(field, "inquiry")
	}
	if n := utf8.RuneCountInString(value); n < min {
		return goa.InvalidLengthError(field, value, n, min, true)
	}
	return nil
}
