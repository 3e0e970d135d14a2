package models

import "errors"

// Error constants for cadastro operations
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrCadastroNotFound       = errors.New("cadastro not found")
	ErrNothingToUpdate        = errors.New("nothing to update")
	ErrInvalidStatus          = errors.New("invalid status value")
)
