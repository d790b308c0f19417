package discord

import (
	"h37bot/internal/domain"
	"h37bot/internal/ports/output"
)

const genericErrorKey = "error.generic"

// ErrorKey maps a domain error code to its translation key.
func ErrorKey(code string) string {
	switch code {
	case "invalid_datetime",
		"datetime_in_past",
		"invalid_location",
		"invalid_timezone",
		"invalid_settings",
		"message_not_set",
		"channel_not_found":
		return "error." + code
	default:
		return genericErrorKey
	}
}

// DomainErrorMessage resolves err to a localized user-facing message.
// Non-domain errors get the generic message.
func DomainErrorMessage(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	return t.T(locale, ErrorKey(domain.Code(err)), nil)
}
