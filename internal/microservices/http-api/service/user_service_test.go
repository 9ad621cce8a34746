package service

import (
	"context"
	"testing"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		repo.On("FindByEmail", mock.Anything, "ann@x.com").Return(nil, nil).Once()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "ann@x.com" && u.Role == models.RoleUser
		})).Return(nil).Once()

		user, err := svc.Register(context.Background(), dto.RegisterRequest{Name: "Ann", Email: " ann@x.com ", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "ann@x.com", user.Email)
		repo.AssertExpectations(t)
	})

	t.Run("Duplicate", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo)

		repo.On("FindByEmail", mock.Anything, "ann@x.com").Return(&models.User{Email: "ann@x.com"}, nil).Once()

		_, err := svc.Register(context.Background(), dto.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "pw"})

		assert.ErrorIs(t, err, ErrUserExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserService_Login(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)
	stored := &models.User{Email: "ann@x.com", Password: "pw"}

	repo.On("FindByEmail", mock.Anything, "ann@x.com").Return(stored, nil)
	repo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, nil)

	user, err := svc.Login(context.Background(), "ann@x.com", "pw")
	require.NoError(t, err)
	assert.Same(t, stored, user)

	_, err = svc.Login(context.Background(), "ann@x.com", "nope")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(context.Background(), "ghost@x.com", "pw")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateName(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	assert.ErrorIs(t, svc.UpdateName(context.Background(), "", "Ann"), ErrMissingFields)

	repo.On("UpdateField", mock.Anything, "ann@x.com", "name", "Anna").Return(int64(1), nil).Once()
	assert.NoError(t, svc.UpdateName(context.Background(), "ann@x.com", "Anna"))

	repo.On("UpdateField", mock.Anything, "ann@x.com", "name", "Anna").Return(int64(0), nil).Once()
	assert.ErrorIs(t, svc.UpdateName(context.Background(), "ann@x.com", "Anna"), ErrNotFound)
}

func TestUserService_List_NormalizesPage(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	repo.On("List", mock.Anything, dto.DefaultPageSize, 0).Return([]models.User{{Email: "a@x.com"}}, int64(1), nil).Once()

	users, total, err := svc.List(context.Background(), dto.PageQuery{})
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, int64(1), total)
}
