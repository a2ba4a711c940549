package usecase

import (
	"context"

	"rapmaster/internal/domain/entity"
)

// RegisterUserInput defines the data required to register a new account.
type RegisterUserInput struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User `json:"user"`
}

// UserUsecase defines the interface for account operations. Sessions and
// tokens are out of scope; the game is keyed by userId alone.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
}
