package impl

import (
	"context"
	"log/slog"

	deliverycontext "rapmaster/internal/delivery/context"
	"rapmaster/internal/domain/entity"
	domainerrors "rapmaster/internal/domain/errors"
	"rapmaster/internal/domain/repository"
	"rapmaster/internal/domain/service"
	"rapmaster/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	users  repository.UserRepository
	hasher service.PasswordHasher
	logger *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Users  repository.UserRepository
	Hasher service.PasswordHasher
	Logger *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		users:  params.Users,
		hasher: params.Hasher,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a new account with a hashed password.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Registering user", "username", input.Username)

	if _, err := srv.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check username")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hash,
	}
	if err := srv.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return &usecase.RegisterOutput{User: user}, nil
}
