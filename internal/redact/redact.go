// Package redact scrubs sensitive information from strings before they are
// logged. Driver and infrastructure errors can embed connection strings,
// credentials, tokens, or raw SQL; everything that leaves the process through
// a log line passes through here first.
package redact

import "regexp"

// Redaction placeholders.
const (
	credentialPlaceholder = "[REDACTED_CREDENTIAL]"
	keyPlaceholder        = "[REDACTED_KEY]"
	jwtPlaceholder        = "[REDACTED_JWT]"
	emailPlaceholder      = "[REDACTED_EMAIL]"
	sqlPlaceholder        = "[REDACTED_SQL]"
)

// Precompiled patterns, applied in order. The connection-string pattern must
// run before the email pattern so the user:pass@host part is not mistaken
// for an address.
var replacements = []struct {
	re          *regexp.Regexp
	placeholder string
}{
	{
		// Database connection strings with embedded credentials
		regexp.MustCompile(`(?i)(postgres(ql)?|mysql|mongodb)://[^@\s]+@`),
		credentialPlaceholder,
	},
	{
		// password=..., passwd: ... and friends
		regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`),
		credentialPlaceholder,
	},
	{
		// api_key=..., token: ..., secret=...
		regexp.MustCompile(`(?i)(api[_-]?key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		keyPlaceholder,
	},
	{
		// Three-part base64url JWTs
		regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		jwtPlaceholder,
	},
	{
		// Email addresses (PII in user lookups)
		regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		emailPlaceholder,
	},
	{
		// SQL fragments leaked from driver errors
		regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)[\s\w,*()]+(?:FROM|INTO|SET)[\s\w,*()='"$]*`),
		sqlPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range replacements {
		result = r.re.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
// Returns the empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
