package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmarks_backend/internal/feature/auth/domain/entity"
	authusecase "bookmarks_backend/internal/feature/auth/usecase"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
	UpdateFunc   func(ctx context.Context, u *entity.User) error
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, authusecase.ErrUserNotFound
}

func (m *mockUserRepository) Update(ctx context.Context, u *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func strptr(s string) *string { return &s }

func TestUserUsecase_Me(t *testing.T) {
	expected := &entity.User{ID: 1, Email: "a@b.com", Password: "hash"}
	mockRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			assert.Equal(t, uint(1), id)
			return expected, nil
		},
	}

	uc := NewUserUsecase(mockRepo)
	user, err := uc.Me(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserUsecase_Edit(t *testing.T) {
	existing := func() *entity.User {
		return &entity.User{ID: 1, Email: "old@b.com", Password: "hash", FirstName: strptr("Old")}
	}

	t.Run("only supplied fields change", func(t *testing.T) {
		current := existing()
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) { return current, nil },
		}

		uc := NewUserUsecase(mockRepo)
		user, err := uc.Edit(context.Background(), 1, EditUserInput{LastName: strptr("Meow")})

		require.NoError(t, err)
		assert.Equal(t, "old@b.com", user.Email, "absent fields retain prior values")
		require.NotNil(t, user.FirstName)
		assert.Equal(t, "Old", *user.FirstName)
		require.NotNil(t, user.LastName)
		assert.Equal(t, "Meow", *user.LastName)
	})

	t.Run("email collision propagates", func(t *testing.T) {
		current := existing()
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) { return current, nil },
			UpdateFunc: func(ctx context.Context, u *entity.User) error {
				return authusecase.ErrEmailAlreadyExists
			},
		}

		uc := NewUserUsecase(mockRepo)
		_, err := uc.Edit(context.Background(), 1, EditUserInput{Email: strptr("taken@b.com")})

		assert.ErrorIs(t, err, authusecase.ErrEmailAlreadyExists)
	})

	t.Run("lookup failure propagates without update", func(t *testing.T) {
		lookupErr := errors.New("db down")
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) { return nil, lookupErr },
			UpdateFunc: func(ctx context.Context, u *entity.User) error {
				t.Error("update must not run when the lookup fails")
				return nil
			},
		}

		uc := NewUserUsecase(mockRepo)
		_, err := uc.Edit(context.Background(), 1, EditUserInput{Email: strptr("x@b.com")})

		assert.ErrorIs(t, err, lookupErr)
	})
}
