// Package session persists in-progress wizard selections keyed by customer.
// Redis backs the production store; drafts survive server restarts for the
// configured TTL and vanish on their own afterwards.
package session

import (
	"context"

	"shalean-booking-api/internal/domain/booking"
	"shalean-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotFound = errs.New("wizard session not found")

type Store interface {
	Get(ctx context.Context, customerID uuid.UUID) (*booking.Selection, error)
	Save(ctx context.Context, customerID uuid.UUID, sel *booking.Selection) error
	Delete(ctx context.Context, customerID uuid.UUID) error
}
