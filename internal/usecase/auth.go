package usecase

import (
	"context"
	"errors"

	"shalean-booking-api/internal/domain/customer"
	"shalean-booking-api/internal/pkg/jwt"
	"shalean-booking-api/internal/pkg/password"
	"shalean-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type CustomerRepository interface {
	FindByEmail(ctx context.Context, email customer.Email) (*queries.AuthorizedCustomerView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedCustomerView, error)
	UpdateLastLogin(ctx context.Context, customerID uuid.UUID) error
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials customer.Credentials) (string, *queries.AuthorizedCustomerView, error)
	GetCurrentCustomer(ctx context.Context, customerID uuid.UUID) (*queries.AuthorizedCustomerView, error)
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type authUseCaseImpl struct {
	customerRepo CustomerRepository
	jwtService   *jwt.Service
}

func NewAuthUseCase(customerRepo CustomerRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		customerRepo: customerRepo,
		jwtService:   jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials customer.Credentials) (string, *queries.AuthorizedCustomerView, error) {
	view, hashedPassword, err := a.customerRepo.FindByEmail(ctx, credentials.Email())
	if err != nil || view == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.customerRepo.UpdateLastLogin(ctx, view.ID); err != nil {
		return "", nil, err
	}

	return token, view, nil
}

func (a *authUseCaseImpl) GetCurrentCustomer(ctx context.Context, customerID uuid.UUID) (*queries.AuthorizedCustomerView, error) {
	view, err := a.customerRepo.FindByID(ctx, customerID)
	if err != nil || view == nil {
		return nil, ErrCustomerNotFound
	}
	return view, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, ErrTokenValidation
	}
	return claims.CustomerID, nil
}
