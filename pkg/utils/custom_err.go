package utils

import "errors"

// Error kinds. Every error returned by a service is either one of these or
// wraps one of them, so HandleServiceError can map it to a status code.
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ServiceError carries a user-facing reason on top of an error kind.
type ServiceError struct {
	Kind error
	Msg  string
}

func (e *ServiceError) Error() string { return e.Msg }

func (e *ServiceError) Unwrap() error { return e.Kind }

func newKindError(kind error, msg string) *ServiceError {
	return &ServiceError{Kind: kind, Msg: msg}
}

func NewValidationError(msg string) error { return newKindError(ErrValidation, msg) }

func NewForbiddenError(msg string) error { return newKindError(ErrForbidden, msg) }

var (
	ErrTokenMalformed    = newKindError(ErrUnauthenticated, "token malformed")
	ErrTokenBadSignature = newKindError(ErrUnauthenticated, "token signature invalid")
	ErrTokenExpired      = newKindError(ErrUnauthenticated, "token expired")

	ErrUserNotFound         = newKindError(ErrNotFound, "user not found")
	ErrPostNotFound         = newKindError(ErrNotFound, "post not found")
	ErrCommentNotFound      = newKindError(ErrNotFound, "comment not found")
	ErrNoteNotFound         = newKindError(ErrNotFound, "note not found")
	ErrLearningPlanNotFound = newKindError(ErrNotFound, "learning plan not found")
	ErrPlanNotFound         = newKindError(ErrNotFound, "subscription plan not found")
	ErrSubscriptionNotFound = newKindError(ErrNotFound, "subscription not found")

	ErrPlanInUse     = newKindError(ErrConflict, "cannot delete plan with existing subscriptions")
	ErrPlanNameTaken = newKindError(ErrConflict, "subscription plan with this name already exists")
	ErrUsernameTaken = newKindError(ErrConflict, "username already exists")
)

var errorKinds = []error{
	ErrUnauthenticated,
	ErrForbidden,
	ErrNotFound,
	ErrValidation,
	ErrConflict,
	ErrDatabaseError,
	ErrInvalidCredentials,
}

// IsKnownError reports whether err is, or wraps, one of the error kinds.
func IsKnownError(err error) bool {
	for _, kind := range errorKinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
