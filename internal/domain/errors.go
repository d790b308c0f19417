package domain

import "errors"

// Error is a domain error with a stable code used to pick the user-facing message.
type Error struct {
	code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable error code.
func (e *Error) Code() string { return e.code }

func newError(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Domain errors.
var (
	ErrInvalidDateTime = newError("invalid_datetime", "invalid date/time, expected MM/DD/YYYY h:mmAM/PM")
	ErrDateTimeInPast  = newError("datetime_in_past", "date and time must be in the future")
	ErrInvalidLocation = newError("invalid_location", "location must be between 1 and 255 characters")
	ErrInvalidTimezone = newError("invalid_timezone", "unknown IANA timezone")
	ErrInvalidSettings = newError("invalid_settings", "invalid reset settings")
	ErrMessageNotSet   = newError("message_not_set", "timer message id is not set")
	ErrChannelNotFound = newError("channel_not_found", "timer channel not found")
)

// Code extracts the domain error code from err, or "" when err is not a domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}
