package queries

import (
	"context"

	"shalean-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotOwned = errs.New("booking does not belong to customer")

type BookingQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingDetailView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*BookingListItem, error)
	FindItems(ctx context.Context, bookingID uuid.UUID) ([]BookingItemView, error)
	FindExtras(ctx context.Context, bookingID uuid.UUID) ([]BookingExtraView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingDetailView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.CustomerID != actor {
		return nil, errs.Mark(errs.New("booking owner mismatch"), ErrBookingNotOwned)
	}

	items, err := q.repo.FindItems(ctx, id)
	if err != nil {
		return nil, err
	}
	extras, err := q.repo.FindExtras(ctx, id)
	if err != nil {
		return nil, err
	}

	return &BookingDetailView{
		BookingView: *view,
		Items:       items,
		Extras:      extras,
	}, nil
}

func (q *bookingQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingListItem, error) {
	return q.repo.FindByCustomerID(ctx, customerID)
}
