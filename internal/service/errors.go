package service

import "errors"

// Terminal business errors. None are retried and none are swallowed; anything
// else coming out of the store layer is an opaque internal failure.
var (
	// ErrNotFound means no recipe exists for the given id.
	ErrNotFound = errors.New("recipe not found")

	// ErrUnauthenticated means no caller identity was attached to the request.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrForbidden means the caller is authenticated but does not own the recipe.
	ErrForbidden = errors.New("not authorized")

	// ErrInvalidCredentials is returned for any failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("user already exists")
)
