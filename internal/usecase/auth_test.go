//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"shalean-booking-api/internal/domain/customer"
	"shalean-booking-api/internal/pkg/jwt"
	"shalean-booking-api/internal/pkg/password"
	"shalean-booking-api/internal/usecase"
	"shalean-booking-api/internal/usecase/queries"
	usecasemock "shalean-booking-api/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthFixture(t *testing.T) (*usecasemock.MockCustomerRepository, usecase.AuthUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := usecasemock.NewMockCustomerRepository(ctrl)
	jwtService := jwt.NewService("test-secret-key-for-unit-tests", time.Hour)
	return repo, usecase.NewAuthUseCase(repo, jwtService)
}

func mustCredentials(t *testing.T, email, pass string) customer.Credentials {
	t.Helper()
	creds, err := customer.NewCredentials(email, pass)
	require.NoError(t, err)
	return creds
}

func TestLogin(t *testing.T) {
	email := "customer@example.com"
	plain := "password123"
	hash, err := password.HashPassword(plain)
	require.NoError(t, err)

	view := &queries.AuthorizedCustomerView{ID: uuid.New(), Email: email, FullName: "Ada Obi"}

	t.Run("success", func(t *testing.T) {
		repo, uc := newAuthFixture(t)
		repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, hash, nil)
		repo.EXPECT().UpdateLastLogin(gomock.Any(), view.ID).Return(nil)

		token, got, err := uc.Login(context.Background(), mustCredentials(t, email, plain))

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, view, got)

		// The issued token round-trips through validation.
		id, err := uc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, view.ID, id)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo, uc := newAuthFixture(t)
		repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, hash, nil)

		_, _, err := uc.Login(context.Background(), mustCredentials(t, email, "not-the-password"))

		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to the same error as a bad password", func(t *testing.T) {
		repo, uc := newAuthFixture(t)
		repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, "", usecase.ErrCustomerNotFound)

		_, _, err := uc.Login(context.Background(), mustCredentials(t, email, plain))

		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})
}

func TestGetCurrentCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, uc := newAuthFixture(t)
		view := &queries.AuthorizedCustomerView{ID: uuid.New(), Email: "customer@example.com"}
		repo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := uc.GetCurrentCustomer(context.Background(), view.ID)

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("not found", func(t *testing.T) {
		repo, uc := newAuthFixture(t)
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, usecase.ErrCustomerNotFound)

		_, err := uc.GetCurrentCustomer(context.Background(), id)

		assert.ErrorIs(t, err, usecase.ErrCustomerNotFound)
	})
}

func TestValidateToken(t *testing.T) {
	_, uc := newAuthFixture(t)

	_, err := uc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, usecase.ErrTokenValidation)
}
