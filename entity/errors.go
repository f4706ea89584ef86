package entity

import "errors"

// Conflicts: uniqueness violations translated from storage constraints.
var (
	ErrDuplicateEmail  = errors.New("email is already registered")
	ErrAlreadyReviewed = errors.New("recipe is already reviewed by this user")
)

// Not found.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
)

// ErrForbidden is returned when the requesting user does not own the
// entity being modified.
var ErrForbidden = errors.New("operation not permitted for this user")

// Authentication failures. ErrInvalidCredentials deliberately covers both
// unknown email and wrong password so callers cannot enumerate accounts.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenInvalid       = errors.New("token signature is invalid")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenMalformed     = errors.New("token claims are malformed")
	ErrUnknownSubject     = errors.New("token subject is unknown")
)

// ErrTimeout is returned when an operation exceeds its deadline at the
// storage boundary.
var ErrTimeout = errors.New("operation timed out")

// ErrInvalidPayload is returned when a structurally valid request carries
// values that fail construction checks (empty names, non-positive
// quantities).
var ErrInvalidPayload = errors.New("invalid payload")
