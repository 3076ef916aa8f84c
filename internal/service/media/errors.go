package media

import (
	"errors"
	"fmt"
	"net/http"
)

// Определение ошибок
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrRejected      = errors.New("rejected by provider")
	ErrMediaNotFound = errors.New("media not found")
	ErrProviderFault = errors.New("provider call failed")
)

// FailureClass tells the API layer how a failed operation should be reported.
type FailureClass string

const (
	ClassInvalid  FailureClass = "invalid"
	ClassRejected FailureClass = "rejected"
	ClassNotFound FailureClass = "not_found"
	ClassFault    FailureClass = "fault"
)

// Failure is the only error type a Gateway returns.
type Failure struct {
	Class      FailureClass
	Message    string
	StatusCode int
	Err        error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Class, f.Message, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Class, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Is lets callers match a failure against the package sentinels.
func (f *Failure) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return f.Class == ClassInvalid
	case ErrRejected:
		return f.Class == ClassRejected
	case ErrMediaNotFound:
		return f.Class == ClassNotFound
	case ErrProviderFault:
		return f.Class == ClassFault
	}
	return false
}

func invalid(message string) *Failure {
	return &Failure{Class: ClassInvalid, Message: message, StatusCode: http.StatusBadRequest}
}

// rejected keeps the provider status when it is an error status and falls
// back to 400 otherwise.
func rejected(message string, status int) *Failure {
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusBadRequest
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &Failure{Class: ClassRejected, Message: message, StatusCode: status}
}

func notFound(message string) *Failure {
	return &Failure{Class: ClassNotFound, Message: message, StatusCode: http.StatusNotFound}
}

func fault(err error) *Failure {
	return &Failure{Class: ClassFault, Message: err.Error(), StatusCode: http.StatusInternalServerError, Err: err}
}

// AsFailure converts any error into a Failure, treating unknown errors as faults.
func AsFailure(err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return fault(err)
}
