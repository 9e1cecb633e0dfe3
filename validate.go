package initproject

import (
	"fmt"
	"regexp"
	"strings"
)

var identifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid package name %q: %s", e.Name, e.Reason)
}

// ValidateName checks that name can serve as a Python package name.
func ValidateName(name string) error {
	switch {
	case name == "":
		return &InvalidNameError{Name: name, Reason: "must not be empty"}
	case strings.ContainsAny(name, `/\`):
		return &InvalidNameError{Name: name, Reason: "must not contain path separators"}
	case name[0] >= '0' && name[0] <= '9':
		return &InvalidNameError{Name: name, Reason: "must not start with a digit"}
	case !identifierRegex.MatchString(name):
		return &InvalidNameError{Name: name, Reason: "must be a valid Python identifier"}
	}
	return nil
}
