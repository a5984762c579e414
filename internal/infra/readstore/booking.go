package readstore

import (
	"context"

	"shalean-booking-api/internal/infra"
	sqlc "shalean-booking-api/internal/infra/sqlc/generated"
	"shalean-booking-api/internal/pkg/pgconv"
	"shalean-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error)
	ListBookingsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.ListBookingsByCustomerRow, error)
	ListBookingItems(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingItems, error)
	ListBookingExtras(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.ListBookingExtrasRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries *sqlc.Queries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return rowToBookingView(row), nil
}

func (r *BookingReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by customer", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.BookingListItem{
			ID:            row.ID,
			ServiceName:   pgconv.StringPtrFromPgtype(row.ServiceName),
			Status:        row.Status,
			Frequency:     pgconv.StringPtrFromPgtype(row.Frequency),
			StartTime:     pgconv.TimePtrFromPgtype(row.StartTs),
			TotalPrice:    row.TotalPrice,
			PaymentStatus: pgconv.StringPtrFromPgtype(row.PaymentStatus),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return result, nil
}

func (r *BookingReadStore) FindItems(ctx context.Context, bookingID uuid.UUID) ([]queries.BookingItemView, error) {
	rows, err := r.queries.ListBookingItems(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking items", err)
	}

	result := make([]queries.BookingItemView, len(rows))
	for i, row := range rows {
		result[i] = queries.BookingItemView{
			ItemType:  row.ItemType,
			Qty:       row.Qty,
			UnitPrice: row.UnitPrice,
			LineTotal: row.LineTotal,
		}
	}

	return result, nil
}

func (r *BookingReadStore) FindExtras(ctx context.Context, bookingID uuid.UUID) ([]queries.BookingExtraView, error) {
	rows, err := r.queries.ListBookingExtras(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking extras", err)
	}

	result := make([]queries.BookingExtraView, len(rows))
	for i, row := range rows {
		result[i] = queries.BookingExtraView{
			ServiceExtraID: row.ServiceExtraID,
			Name:           row.ExtraName,
			Qty:            row.Qty,
			UnitPrice:      row.UnitPrice,
			LineTotal:      row.LineTotal,
		}
	}

	return result, nil
}

func rowToBookingView(row sqlc.GetBookingByIDRow) *queries.BookingView {
	return &queries.BookingView{
		ID:            row.ID,
		CustomerID:    row.CustomerID,
		ServiceID:     pgconv.UUIDPtrFromPgtype(row.ServiceID),
		ServiceSlug:   pgconv.StringPtrFromPgtype(row.ServiceSlug),
		ServiceName:   pgconv.StringPtrFromPgtype(row.ServiceName),
		RegionID:      pgconv.UUIDPtrFromPgtype(row.RegionID),
		SuburbID:      pgconv.UUIDPtrFromPgtype(row.SuburbID),
		Address:       pgconv.StringPtrFromPgtype(row.Address),
		Notes:         pgconv.StringPtrFromPgtype(row.Notes),
		Status:        row.Status,
		Frequency:     pgconv.StringPtrFromPgtype(row.Frequency),
		StartTime:     pgconv.TimePtrFromPgtype(row.StartTs),
		EndTime:       pgconv.TimePtrFromPgtype(row.EndTs),
		TotalPrice:    row.TotalPrice,
		CleanerID:     pgconv.UUIDPtrFromPgtype(row.CleanerID),
		CleanerName:   pgconv.StringPtrFromPgtype(row.CleanerName),
		PaymentRef:    pgconv.StringPtrFromPgtype(row.PaymentRef),
		PaymentStatus: pgconv.StringPtrFromPgtype(row.PaymentStatus),
		ContactName:   pgconv.StringPtrFromPgtype(row.ContactName),
		ContactEmail:  pgconv.StringPtrFromPgtype(row.ContactEmail),
		ContactPhone:  pgconv.StringPtrFromPgtype(row.ContactPhone),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
