package service

import "errors"

// ErrorKind classifies service failures so the HTTP boundary can pick a
// status code without string matching.
type ErrorKind string

const (
	KindValidation            ErrorKind = "validation"
	KindNotAuthorized         ErrorKind = "not_authorized"
	KindInvalidState          ErrorKind = "invalid_state"
	KindNotFound              ErrorKind = "not_found"
	KindDuplicateCollaborator ErrorKind = "duplicate_collaborator"
	KindDependency            ErrorKind = "dependency"
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a service error, or "" for any other error.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func notAuthorizedError(message string) *Error {
	return &Error{Kind: KindNotAuthorized, Message: message}
}

func invalidStateError(message string) *Error {
	return &Error{Kind: KindInvalidState, Message: message}
}

func notFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func duplicateCollaboratorError(username string) *Error {
	return &Error{Kind: KindDuplicateCollaborator, Message: "user '" + username + "' is already a collaborator"}
}

func dependencyError(message string, err error) *Error {
	return &Error{Kind: KindDependency, Message: message, Err: err}
}
