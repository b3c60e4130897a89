// Package errors maps engine failures to service categories and HTTP statuses.
package errors

import (
	"errors"
	"net/http"

	"github.com/chainsafe/cat-bridge/pkg/bridge"
	"github.com/chainsafe/cat-bridge/pkg/emitter"
	"github.com/chainsafe/cat-bridge/pkg/messaging"
	"github.com/chainsafe/cat-bridge/pkg/replay"
	"github.com/chainsafe/cat-bridge/pkg/token"
)

// Category defines error category
type Category int

const (
	CategoryNoError Category = iota
	// CategoryDataError the request carries invalid data: bad parameters,
	// a malformed payload or an amount that does not convert.
	CategoryDataError
	// CategoryUnauthorized the caller could not be identified, or the message
	// came from an untrusted emitter
	CategoryUnauthorized
	// CategoryForbidden the caller is identified but lacks the role
	CategoryForbidden
	CategoryResourceNotFound
	// CategoryDataConflict the request repeats something already recorded
	CategoryDataConflict
	// CategoryDependencyFailure a store or ledger call failed
	CategoryDependencyFailure
	CategoryGeneralError
)

func (c Category) String() string {
	switch c {
	case CategoryNoError:
		return "CategoryNoError"
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryForbidden:
		return "CategoryForbidden"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryDataConflict:
		return "CategoryDataConflict"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError is the error type handlers return. Message is shown to the
// caller; Err is only logged.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is checks that err is a ServiceError with the given category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError reports whether err should be hidden from the caller
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category < CategoryDependencyFailure {
		return false
	}
	return true
}

func newError(cat Category, err error, message, fallback string) error {
	if err == nil {
		err = errors.New(fallback + message)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError hides err behind "Internal Server Error"
func GeneralError(err error) error {
	return newError(CategoryGeneralError, err, "Internal Server Error", "")
}

func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message, "resource not found: ")
}

func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message, "bad request: ")
}

func ForbiddenError(err error, message string) error {
	return newError(CategoryForbidden, err, message, "forbidden: ")
}

func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, message, "unauthorized: ")
}

func ConflictError(err error, message string) error {
	return newError(CategoryDataConflict, err, message, "conflict: ")
}

func DependencyError(err error, message string) error {
	return newError(CategoryDependencyFailure, err, message, "dependency failure: ")
}

// FromBridge classifies an engine error. Not-found sentinels of the lookups
// become 404; classified errors keep their message, except collaborator
// failures which are not detailed to the caller.
func FromBridge(err error) error {
	if err == nil {
		return nil
	}
	kind := bridge.KindOf(err)
	if kind == 0 && (errors.Is(err, bridge.ErrNotInitialized) ||
		errors.Is(err, emitter.ErrNotFound) ||
		errors.Is(err, replay.ErrNotFound) ||
		errors.Is(err, messaging.ErrNotFound) ||
		errors.Is(err, token.ErrNotFound)) {
		return ResourceNotFoundError(err, err.Error())
	}

	switch kind {
	case bridge.KindValidation, bridge.KindPayload, bridge.KindArithmetic:
		return BadRequestError(err, err.Error())
	case bridge.KindTrust:
		return UnAuthorizedError(err, err.Error())
	case bridge.KindAuthorization:
		return ForbiddenError(err, err.Error())
	case bridge.KindReplay:
		return ConflictError(err, err.Error())
	case bridge.KindCollaborator:
		return DependencyError(err, "dependency failure")
	default:
		return GeneralError(err)
	}
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryForbidden:
		return http.StatusForbidden
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryDataConflict:
		return http.StatusConflict
	case CategoryDependencyFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
