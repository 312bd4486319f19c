// Package validator provides a small rule-based validation helper.
//
// Rules are built with constructors such as Required and ValidEmail and
// executed together with Apply, which returns ValidationErrors carrying the
// failing field names. Handlers map those errors to HTTP 400 responses
// without leaking internals.
//
//	if err := validator.Apply(
//		validator.Required("title", input.Title),
//		validator.ValidEmail("email", input.Email),
//	); err != nil {
//		// validator.IsValidationError(err) == true
//	}
package validator
