package services

// ValidationError carries the user-facing message for a single rejected
// input field. The store is never mutated when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthorizationError is returned when a review-deletion password is
// missing or does not match the stored hash.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}
