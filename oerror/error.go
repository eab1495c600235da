package oerror

import "fmt"

// Class is the failure class an Error belongs to.
type Class uint8

const (
	ClassInternal Class = iota
	// ClassUsage marks mistakes made by an operator, such as a typo in a debug command.
	ClassUsage
)

var (
	// ErrUsage matches any usage error with errors.Is.
	ErrUsage = &OomphError{Class: ClassUsage}
	// ErrInternal matches any internal error with errors.Is.
	ErrInternal = &OomphError{Class: ClassInternal}
)

type OomphError struct {
	Class Class
	Err   string
}

// New returns an internal error with a formatted message.
func New(format string, args ...any) *OomphError {
	return &OomphError{Class: ClassInternal, Err: fmt.Sprintf(format, args...)}
}

// Usage returns a usage error with a formatted message.
func Usage(format string, args ...any) *OomphError {
	return &OomphError{Class: ClassUsage, Err: fmt.Sprintf(format, args...)}
}

func (e *OomphError) Error() string {
	return e.Err
}

// Is reports whether target is the class sentinel of e.
func (e *OomphError) Is(target error) bool {
	t, ok := target.(*OomphError)
	return ok && t.Err == "" && t.Class == e.Class
}
