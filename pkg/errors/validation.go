package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePath validates a local file path supplied on the command line or in
// a request. Paths may be absolute; they must not be empty, overly long or
// contain control characters.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// prefixRegex matches a namespace prefix (an XML NCName restricted to ASCII).
var prefixRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9._-]*$`)

// ValidatePrefix validates a namespace prefix such as "owl" or "ex".
// The empty prefix is allowed; it binds the default namespace.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return nil
	}
	if !prefixRegex.MatchString(prefix) {
		return New(ErrCodeInvalidConfig, "invalid namespace prefix: %q", prefix)
	}
	return nil
}

// ValidateNamespace validates a namespace URI bound to a prefix.
//
// Validation rules:
//   - Namespace cannot be empty
//   - No whitespace, quotes or angle brackets
//   - Must end with '#', '/' or ':' so it can be stripped from a URI
func ValidateNamespace(ns string) error {
	if ns == "" {
		return New(ErrCodeInvalidConfig, "namespace cannot be empty")
	}

	if strings.ContainsAny(ns, " \t\r\n\"<>") {
		return New(ErrCodeInvalidConfig, "namespace contains invalid characters: %q", ns)
	}

	switch ns[len(ns)-1] {
	case '#', '/', ':':
		return nil
	}
	return New(ErrCodeInvalidConfig, "namespace must end with '#', '/' or ':': %q", ns)
}
