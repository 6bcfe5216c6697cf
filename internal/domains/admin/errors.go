package admin

import "errors"

var (
	ErrRegistrationDisabled = errors.New("admin registration is disabled")
	ErrAdminExists          = errors.New("admin already exists")
	ErrEmailExists          = errors.New("email already registered")
	ErrAdminNotFound        = errors.New("admin not found")

	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)
