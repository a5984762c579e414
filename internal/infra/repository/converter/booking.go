package converter

import (
	"shalean-booking-api/internal/domain/booking"
	sqlc "shalean-booking-api/internal/infra/sqlc/generated"
	"shalean-booking-api/internal/pkg/pgconv"
	"shalean-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
)

func BookingToSnapshot(row sqlc.Bookings) *commands.BookingSnapshot {
	return &commands.BookingSnapshot{
		ID:            row.ID,
		CustomerID:    row.CustomerID,
		ServiceID:     pgconv.UUIDPtrFromPgtype(row.ServiceID),
		Status:        booking.Status(row.Status),
		Frequency:     pgconv.StringPtrFromPgtype(row.Frequency),
		StartTime:     pgconv.TimePtrFromPgtype(row.StartTs),
		TotalPrice:    booking.NewMoney(row.TotalPrice),
		PaymentRef:    pgconv.StringPtrFromPgtype(row.PaymentRef),
		PaymentStatus: pgconv.StringPtrFromPgtype(row.PaymentStatus),
		ContactName:   pgconv.StringPtrFromPgtype(row.ContactName),
		ContactEmail:  pgconv.StringPtrFromPgtype(row.ContactEmail),
		ContactPhone:  pgconv.StringPtrFromPgtype(row.ContactPhone),
	}
}

func DraftPatchToInfra(id uuid.UUID, patch commands.DraftPatch) sqlc.UpdateBookingDraftParams {
	return sqlc.UpdateBookingDraftParams{
		ID:           id,
		ServiceID:    pgconv.UUIDPtrToPgtype(patch.ServiceID),
		RegionID:     pgconv.UUIDPtrToPgtype(patch.RegionID),
		SuburbID:     pgconv.UUIDPtrToPgtype(patch.SuburbID),
		Address:      pgconv.StringPtrToPgtype(patch.Address),
		Notes:        pgconv.StringPtrToPgtype(patch.Notes),
		Frequency:    pgconv.StringPtrToPgtype(patch.Frequency),
		StartTs:      pgconv.TimePtrToPgtype(patch.StartTime),
		EndTs:        pgconv.TimePtrToPgtype(patch.EndTime),
		CleanerID:    pgconv.UUIDPtrToPgtype(patch.CleanerID),
		ContactName:  pgconv.StringPtrToPgtype(patch.ContactName),
		ContactEmail: pgconv.StringPtrToPgtype(patch.ContactEmail),
		ContactPhone: pgconv.StringPtrToPgtype(patch.ContactPhone),
		TotalPrice:   pgconv.Int64PtrToPgtype(patch.TotalPrice),
	}
}

func ReviewCompletionToInfra(id uuid.UUID, rc commands.ReviewCompletion) sqlc.CompleteBookingReviewParams {
	return sqlc.CompleteBookingReviewParams{
		ID:           id,
		TotalPrice:   rc.TotalPrice.Minor(),
		StartTs:      pgconv.TimeToPgtype(rc.StartTime),
		EndTs:        pgconv.TimeToPgtype(rc.EndTime),
		Frequency:    pgconv.StringToPgtype(rc.Frequency.String()),
		Notes:        pgconv.StringPtrToPgtype(rc.Notes),
		ContactName:  pgconv.StringToPgtype(rc.ContactName),
		ContactEmail: pgconv.StringToPgtype(rc.ContactEmail),
		ContactPhone: pgconv.StringToPgtype(rc.ContactPhone),
		CleanerID:    pgconv.UUIDPtrToPgtype(rc.CleanerID),
		PaymentRef:   pgconv.StringToPgtype(rc.PaymentRef),
	}
}
