// Package redact scrubs sensitive material from strings before they are
// logged: credentials embedded in connection strings, bearer tokens, and
// password-looking fragments. Error messages pass through here before any
// log call that might carry user input or configuration.
package redact

import "regexp"

const (
	credentialPlaceholder = "[REDACTED_CREDENTIAL]"
	tokenPlaceholder      = "[REDACTED_TOKEN]"
	secretPlaceholder     = "[REDACTED]"
)

var (
	// user:password@ inside connection URLs
	connStringRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql|mongodb)://[^@/\s]+@`)

	// Three-part base64url JWTs
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// password=..., secret: ..., etc.
	secretAssignRegex = regexp.MustCompile(`(?i)(password|passwd|secret|token|api[_-]?key)(['"\s:=]+)[^'"&\s]{3,}`)
)

// String returns s with known sensitive patterns replaced by placeholders.
func String(s string) string {
	s = connStringRegex.ReplaceAllString(s, "$1://"+credentialPlaceholder+"@")
	s = jwtTokenRegex.ReplaceAllString(s, tokenPlaceholder)
	s = secretAssignRegex.ReplaceAllString(s, "$1$2"+secretPlaceholder)
	return s
}

// Error returns the redacted message of err, or "" for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
