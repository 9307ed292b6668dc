package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("not authorized")
	ErrTokenMissing = fmt.Errorf("%w: no token", ErrUnauthorized)
	ErrTokenInvalid = fmt.Errorf("%w: token failed", ErrUnauthorized)
	ErrTokenRevoked = fmt.Errorf("%w: token revoked", ErrUnauthorized)
	// ErrIdentityGone means the token verified but its subject no longer resolves.
	ErrIdentityGone = fmt.Errorf("%w: user not found", ErrUnauthorized)

	ErrForbidden = errors.New("access forbidden")
	ErrNotOwner  = fmt.Errorf("%w: not the project owner", ErrForbidden)

	ErrProjectNotFound    = errors.New("project not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
)

// RoleError reports that an authenticated identity lacks the role a route requires.
type RoleError struct {
	Required string
}

func (e *RoleError) Error() string {
	return fmt.Sprintf("%s: requires role %q", ErrForbidden, e.Required)
}

func (e *RoleError) Unwrap() error { return ErrForbidden }
