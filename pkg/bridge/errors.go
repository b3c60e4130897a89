package bridge

import (
	"errors"
	"fmt"
)

// Kind classifies every failure returned by the engine.
type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindTrust
	KindReplay
	KindPayload
	KindArithmetic
	KindAuthorization
	KindCollaborator
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindTrust:
		return "TrustError"
	case KindReplay:
		return "ReplayError"
	case KindPayload:
		return "PayloadError"
	case KindArithmetic:
		return "ArithmeticError"
	case KindAuthorization:
		return "AuthorizationError"
	case KindCollaborator:
		return "CollaboratorError"
	default:
		return "UnknownError"
	}
}

// Error is a classified engine failure. The underlying cause stays reachable
// through errors.Is and errors.As.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op == "" && e.Err == nil:
		return e.Kind.String()
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	case e.Op == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the bare kind sentinels, so errors.Is(err, ErrTrust) holds for
// any trust failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// Kind sentinels for errors.Is.
var (
	ErrValidation    = &Error{Kind: KindValidation}
	ErrTrust         = &Error{Kind: KindTrust}
	ErrReplay        = &Error{Kind: KindReplay}
	ErrPayload       = &Error{Kind: KindPayload}
	ErrArithmetic    = &Error{Kind: KindArithmetic}
	ErrAuthorization = &Error{Kind: KindAuthorization}
	ErrCollaborator  = &Error{Kind: KindCollaborator}
)

// Causes.
var (
	ErrNotInitialized        = errors.New("bridge not initialized")
	ErrAlreadyInitialized    = errors.New("bridge already initialized")
	ErrNotOwner              = errors.New("caller is not the owner")
	ErrZeroAddress           = errors.New("address is zero")
	ErrZeroAmount            = errors.New("amount is zero")
	ErrAmountTooSmall        = errors.New("amount normalizes to zero")
	ErrDustRejected          = errors.New("amount has sub-wire precision")
	ErrUnregisteredChain     = errors.New("no emitter registered for chain")
	ErrUntrustedEmitter      = errors.New("message emitter is not trusted")
	ErrDestinationMismatch   = errors.New("destination account does not match payload")
	ErrWrongDestinationChain = errors.New("message is not addressed to this chain")
	ErrMessageNotDelivered   = errors.New("message not delivered")
	ErrProtocolMismatch      = errors.New("messaging protocol addresses do not match configuration")
	ErrWrongMode             = errors.New("operation not available in this mode")
	ErrUnknownToken          = errors.New("token mint does not exist")
)

// KindOf returns the kind of err, or 0 when err is not an engine error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(op string, kind Kind, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

func validation(op string, err error) error    { return newError(op, KindValidation, err) }
func trust(op string, err error) error         { return newError(op, KindTrust, err) }
func replayErr(op string, err error) error     { return newError(op, KindReplay, err) }
func payloadErr(op string, err error) error    { return newError(op, KindPayload, err) }
func arithmetic(op string, err error) error    { return newError(op, KindArithmetic, err) }
func authorization(op string, err error) error { return newError(op, KindAuthorization, err) }
func collaborator(op string, err error) error  { return newError(op, KindCollaborator, err) }
