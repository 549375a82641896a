// Package validate holds the per-endpoint input checks. Each check is a
// pure function returning a tagged failure; handlers map the kind to an
// HTTP status and return the message verbatim.
package validate

import (
	"regexp"
	"unicode/utf8"
)

type Kind int

const (
	KindMissingFields Kind = iota
	KindInvalidFormat
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func missing() *Error {
	return &Error{Kind: KindMissingFields, Message: "Some required fields are missing"}
}

var emailPattern = regexp.MustCompile(`^\w+@[a-zA-Z_]+?\.[a-zA-Z]{2,3}$`)

// Login requires both credentials to be present.
func Login(email, password string) *Error {
	if email == "" || password == "" {
		return missing()
	}
	return nil
}

// NewUser checks registration input. Order matters: displayName, then
// email, then password, so the first failing field names the error.
// Lengths count characters, not bytes, so multibyte names measure the
// way users read them.
func NewUser(displayName, email, password string) *Error {
	if utf8.RuneCountInString(displayName) < 8 {
		return &Error{Kind: KindInvalidFormat, Message: `"displayName" length must be at least 8 characters long`}
	}
	if !emailPattern.MatchString(email) {
		return &Error{Kind: KindInvalidFormat, Message: `"email" must be a valid email`}
	}
	if utf8.RuneCountInString(password) < 6 {
		return &Error{Kind: KindInvalidFormat, Message: `"password" length must be at least 6 characters long`}
	}
	return nil
}

// CategoryName requires a non-empty name.
func CategoryName(name string) *Error {
	if name == "" {
		return &Error{Kind: KindMissingFields, Message: `"name" is required`}
	}
	return nil
}

// Post requires a title and content. Category resolution is a store read
// and lives with the post handler.
func Post(title, content string) *Error {
	if title == "" || content == "" {
		return missing()
	}
	return nil
}
