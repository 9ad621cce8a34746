package handler_test

import (
	"context"
	"net/http"
	"testing"

	"bookworm/internal/microservices/http-api/dto"
	"bookworm/internal/microservices/http-api/handler"
	"bookworm/internal/microservices/http-api/models"
	"bookworm/internal/microservices/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) UpdateName(ctx context.Context, email, name string) error {
	return m.Called(ctx, email, name).Error(0)
}

func (m *MockUserService) UpdatePhoto(ctx context.Context, email, image string) error {
	return m.Called(ctx, email, image).Error(0)
}

func (m *MockUserService) UpdateRole(ctx context.Context, email, role string) error {
	return m.Called(ctx, email, role).Error(0)
}

func (m *MockUserService) Get(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, page dto.PageQuery) ([]models.User, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func TestUserHandler_Register(t *testing.T) {
	mockService := new(MockUserService)
	r := setupRouter(handler.NewUserHandler(mockService, testRuntime()))
	req := dto.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "pw"}

	t.Run("Success", func(t *testing.T) {
		mockService.On("Register", mock.Anything, req).Return(&models.User{Name: "Ann", Email: "ann@x.com", Password: "pw", Role: "user"}, nil).Once()

		w := doRequest(r, http.MethodPost, "/register", req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"ann@x.com"`)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockService.On("Register", mock.Anything, req).Return(nil, service.ErrUserExists).Once()

		w := doRequest(r, http.MethodPost, "/register", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "User already exists", decodeMessage(t, w))
	})

	t.Run("InvalidBody", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/register", `{"email":"ann@x.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	mockService := new(MockUserService)
	r := setupRouter(handler.NewUserHandler(mockService, testRuntime()))

	mockService.On("Login", mock.Anything, "ghost@x.com", "pw").Return(nil, service.ErrUserNotFound).Once()
	mockService.On("Login", mock.Anything, "ann@x.com", "bad").Return(nil, service.ErrWrongPassword).Once()

	w := doRequest(r, http.MethodPost, "/login", dto.LoginRequest{Email: "ghost@x.com", Password: "pw"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeMessage(t, w))

	w = doRequest(r, http.MethodPost, "/login", dto.LoginRequest{Email: "ann@x.com", Password: "bad"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Wrong password", decodeMessage(t, w))
}

func TestUserHandler_UpdateName(t *testing.T) {
	mockService := new(MockUserService)
	r := setupRouter(handler.NewUserHandler(mockService, testRuntime()))

	w := doRequest(r, http.MethodPut, "/update-name", `{"email":"ann@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email and Name are required", decodeMessage(t, w))

	mockService.On("UpdateName", mock.Anything, "ann@x.com", "Ann").Return(service.ErrNotFound).Once()
	w = doRequest(r, http.MethodPut, "/update-name", dto.UpdateNameRequest{Email: "ann@x.com", Name: "Ann"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.On("UpdateName", mock.Anything, "ann@x.com", "Anna").Return(nil).Once()
	w = doRequest(r, http.MethodPut, "/update-name", dto.UpdateNameRequest{Email: "ann@x.com", Name: "Anna"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserHandler_UpdateRole_RejectsUnknownRole(t *testing.T) {
	mockService := new(MockUserService)
	r := setupRouter(handler.NewUserHandler(mockService, testRuntime()))

	w := doRequest(r, http.MethodPatch, "/users/role/ann@x.com", `{"role":"owner"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}
