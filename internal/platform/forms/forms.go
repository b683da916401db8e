// Package forms holds the field-keyed validation error map and the input
// format checks shared by every screen's form.
package forms

import "regexp"

// Errors maps a form field name to its validation message. An empty map
// means the form may be submitted.
type Errors map[string]string

// Add records a message for a field. The first message per field wins.
func (e Errors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// Valid reports whether the form passed validation.
func (e Errors) Valid() bool {
	return len(e) == 0
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,9}$`)
)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidPhone reports whether s looks like a phone number.
func ValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}
