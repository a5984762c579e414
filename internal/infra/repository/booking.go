package repository

import (
	"context"
	"errors"

	"shalean-booking-api/internal/domain/booking"
	"shalean-booking-api/internal/infra"
	"shalean-booking-api/internal/infra/repository/converter"
	sqlc "shalean-booking-api/internal/infra/sqlc/generated"
	"shalean-booking-api/internal/pkg/pgconv"
	"shalean-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type BookingWriteQueries interface {
	FindOpenBookingByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) (sqlc.Bookings, error)
	CreateDraftBooking(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) (sqlc.Bookings, error)
	UpdateBookingDraft(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingDraftParams) (sqlc.Bookings, error)
	SetBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.SetBookingStatusParams) (sqlc.Bookings, error)
	CompleteBookingReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteBookingReviewParams) (sqlc.Bookings, error)
	ConfirmBookingPayment(ctx context.Context, db sqlc.DBTX, arg sqlc.ConfirmBookingPaymentParams) (sqlc.Bookings, error)
	UpsertBookingItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertBookingItemParams) (sqlc.BookingItems, error)
	UpsertBookingExtra(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertBookingExtraParams) (sqlc.BookingExtras, error)
	DeleteBookingExtra(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteBookingExtraParams) error
	ListBookingExtras(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.ListBookingExtrasRow, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
	pool    *pgxpool.Pool
}

func NewBookingRepository(queries *sqlc.Queries, db sqlc.DBTX, pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
		pool:    pool,
	}
}

// GetOrCreateDraft returns the customer's open booking, inserting a fresh
// DRAFT when none exists. A concurrent insert trips the partial unique index
// on open bookings, in which case the winner's row is re-read.
func (r *BookingRepository) GetOrCreateDraft(ctx context.Context, customerID uuid.UUID) (*commands.BookingSnapshot, error) {
	row, err := r.queries.FindOpenBookingByCustomer(ctx, r.db, customerID)
	if err == nil {
		return converter.BookingToSnapshot(row), nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to find open booking", err)
	}

	row, err = r.queries.CreateDraftBooking(ctx, r.db, customerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			row, err = r.queries.FindOpenBookingByCustomer(ctx, r.db, customerID)
			if err != nil {
				return nil, infra.WrapRepoErr("failed to re-read open booking after conflict", err)
			}
			return converter.BookingToSnapshot(row), nil
		}
		return nil, infra.WrapRepoErr("failed to create draft booking", err)
	}

	return converter.BookingToSnapshot(row), nil
}

func (r *BookingRepository) FindOpenByCustomer(ctx context.Context, customerID uuid.UUID) (*commands.BookingSnapshot, error) {
	row, err := r.queries.FindOpenBookingByCustomer(ctx, r.db, customerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("open booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find open booking", err)
	}
	return converter.BookingToSnapshot(row), nil
}

func (r *BookingRepository) UpdateDraft(ctx context.Context, bookingID uuid.UUID, patch commands.DraftPatch) (*commands.BookingSnapshot, error) {
	row, err := r.queries.UpdateBookingDraft(ctx, r.db, converter.DraftPatchToInfra(bookingID, patch))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update booking draft", err)
	}
	return converter.BookingToSnapshot(row), nil
}

func (r *BookingRepository) UpsertLineItem(ctx context.Context, bookingID uuid.UUID, itemType booking.ItemType, qty int32, unitPrice booking.Money) error {
	params := sqlc.UpsertBookingItemParams{
		BookingID: bookingID,
		ItemType:  itemType.String(),
		Qty:       qty,
		UnitPrice: unitPrice.Minor(),
	}
	if _, err := r.queries.UpsertBookingItem(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to upsert booking item", err)
	}
	return nil
}

// ReplaceExtras reconciles the stored extra rows with the selection in one
// transaction: rows no longer selected are deleted, the rest upserted.
func (r *BookingRepository) ReplaceExtras(ctx context.Context, bookingID uuid.UUID, extras []booking.ExtraSelection) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	current, err := r.queries.ListBookingExtras(ctx, tx, bookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to list booking extras", err)
	}

	selected := make(map[uuid.UUID]struct{}, len(extras))
	for _, e := range extras {
		selected[e.ID] = struct{}{}
	}

	for _, row := range current {
		if _, ok := selected[row.ServiceExtraID]; ok {
			continue
		}
		params := sqlc.DeleteBookingExtraParams{
			BookingID:      bookingID,
			ServiceExtraID: row.ServiceExtraID,
		}
		if err := r.queries.DeleteBookingExtra(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to delete booking extra", err)
		}
	}

	for _, e := range extras {
		params := sqlc.UpsertBookingExtraParams{
			BookingID:      bookingID,
			ServiceExtraID: e.ID,
			Qty:            e.Quantity,
			UnitPrice:      e.Price.Minor(),
		}
		if _, err := r.queries.UpsertBookingExtra(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to upsert booking extra", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit extras replacement", err)
	}
	return nil
}

// SetStatus performs a guarded transition. The domain table is checked first
// and the UPDATE is conditioned on the expected current status, so a row
// changed by a concurrent writer surfaces as an invalid transition.
func (r *BookingRepository) SetStatus(ctx context.Context, bookingID uuid.UUID, from, to booking.Status) (*commands.BookingSnapshot, error) {
	if !from.CanTransitionTo(to) {
		return nil, infra.WrapRepoErr("transition not allowed", booking.ErrInvalidStatusTransition, infra.KindInvalidTransition)
	}

	params := sqlc.SetBookingStatusParams{
		ID:         bookingID,
		Status:     to.String(),
		FromStatus: from.String(),
	}
	row, err := r.queries.SetBookingStatus(ctx, r.db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not in expected status", err, infra.KindInvalidTransition)
		}
		return nil, infra.WrapRepoErr("failed to set booking status", err)
	}
	return converter.BookingToSnapshot(row), nil
}

func (r *BookingRepository) CompleteReview(ctx context.Context, bookingID uuid.UUID, rc commands.ReviewCompletion) (*commands.BookingSnapshot, error) {
	row, err := r.queries.CompleteBookingReview(ctx, r.db, converter.ReviewCompletionToInfra(bookingID, rc))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not open for review", err, infra.KindInvalidTransition)
		}
		return nil, infra.WrapRepoErr("failed to complete booking review", err)
	}
	return converter.BookingToSnapshot(row), nil
}

func (r *BookingRepository) ConfirmPayment(ctx context.Context, bookingID uuid.UUID, to booking.Status, paymentStatus booking.PaymentStatus, paymentRef string) (*commands.BookingSnapshot, error) {
	params := sqlc.ConfirmBookingPaymentParams{
		ID:            bookingID,
		Status:        to.String(),
		PaymentStatus: pgconv.StringToPgtype(paymentStatus.String()),
		PaymentRef:    pgconv.StringToPgtype(paymentRef),
	}
	row, err := r.queries.ConfirmBookingPayment(ctx, r.db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not awaiting payment", err, infra.KindInvalidTransition)
		}
		return nil, infra.WrapRepoErr("failed to confirm booking payment", err)
	}
	return converter.BookingToSnapshot(row), nil
}
