package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront/internal/model"
	"storefront/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, in service.SignupInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Upload(ctx context.Context, in service.UploadProductInput) (*model.Product, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) ListCategories(ctx context.Context) ([]model.ProductCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductCategory), args.Error(1)
}

// MockImageService is a mock implementation of service.ImageService.
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, imageBase64 string) error {
	args := m.Called(ctx, imageBase64)
	return args.Error(0)
}

// MockCheckoutService is a mock implementation of service.CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) CreateSession(ctx context.Context, items []model.CartItem) (string, error) {
	args := m.Called(ctx, items)
	return args.String(0), args.Error(1)
}

func (m *MockCheckoutService) HandleWebhook(ctx context.Context, payload []byte, signature string) (service.WebhookResult, error) {
	args := m.Called(ctx, payload, signature)
	return args.Get(0).(service.WebhookResult), args.Error(1)
}
