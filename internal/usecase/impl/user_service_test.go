package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "rapmaster/internal/domain/errors"
	"rapmaster/internal/infra/auth"
	"rapmaster/internal/infra/persistence/memory"
	"rapmaster/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) usecase.UserUsecase {
	t.Helper()

	store := memory.NewStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewUserService(UserServiceParams{
		Users:  memory.NewUserRepository(store),
		Hasher: auth.NewBcryptHasher(),
		Logger: logger,
	})
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	service := createTestUserService(t)

	out, err := service.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Username: "lil_tester",
		Password: "super-secret-pw",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, out.User.ID)
	assert.Equal(t, "lil_tester", out.User.Username)
	assert.NotEmpty(t, out.User.PasswordHash)
	assert.NotEqual(t, "super-secret-pw", out.User.PasswordHash)
}

func TestUserService_RegisterUser_DuplicateUsername(t *testing.T) {
	service := createTestUserService(t)
	ctx := context.Background()

	_, err := service.RegisterUser(ctx, &usecase.RegisterUserInput{Username: "lil_tester", Password: "super-secret-pw"})
	require.NoError(t, err)

	_, err = service.RegisterUser(ctx, &usecase.RegisterUserInput{Username: "lil_tester", Password: "another-pw-123"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}
