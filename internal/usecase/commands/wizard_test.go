//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"shalean-booking-api/internal/domain/booking"
	reqdto "shalean-booking-api/internal/handler/dto/request"
	"shalean-booking-api/internal/infra"
	"shalean-booking-api/internal/infra/session"
	"shalean-booking-api/internal/pkg/clock"
	"shalean-booking-api/internal/pkg/config"
	"shalean-booking-api/internal/pkg/errs"
	"shalean-booking-api/internal/usecase/commands"
	"shalean-booking-api/tests/common/builder"
	commandsmock "shalean-booking-api/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WizardUseCaseTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	bookingRepo *commandsmock.MockBookingRepository
	catalogRepo *commandsmock.MockCatalogRepository
	sessions    *session.MemoryStore
	clock       *clock.MockClock
	uc          commands.WizardCommands
	customerID  uuid.UUID
}

func (s *WizardUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookingRepo = commandsmock.NewMockBookingRepository(s.ctrl)
	s.catalogRepo = commandsmock.NewMockCatalogRepository(s.ctrl)
	s.sessions = session.NewMemoryStore()
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.customerID = uuid.New()

	cfg := config.NewTestConfig()
	s.uc = commands.NewWizardUseCase(
		s.bookingRepo, s.catalogRepo, s.sessions, s.clock, cfg.Booking, cfg.Payment,
	)
}

func (s *WizardUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestWizardUseCaseSuite(t *testing.T) {
	suite.Run(t, new(WizardUseCaseTestSuite))
}

func (s *WizardUseCaseTestSuite) seedSession(sel *booking.Selection) {
	s.Require().NoError(s.sessions.Save(context.Background(), s.customerID, sel))
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}

func (s *WizardUseCaseTestSuite) TestGetState() {
	s.Run("starts a fresh session bound to the open draft", func() {
		draftID := uuid.New()
		s.bookingRepo.EXPECT().GetOrCreateDraft(gomock.Any(), s.customerID).
			Return(&commands.BookingSnapshot{ID: draftID, CustomerID: s.customerID, Status: booking.StatusDraft}, nil)

		state, err := s.uc.GetState(context.Background(), s.customerID)

		s.Require().NoError(err)
		s.Equal(draftID, state.Selection.DraftID)
		s.Equal(booking.StepService, state.Selection.Step)
		s.True(state.Summary.Total.IsZero(), "no service selected yet")

		// The fresh selection is now in the session store.
		sel, err := s.sessions.Get(context.Background(), s.customerID)
		s.Require().NoError(err)
		s.Equal(draftID, sel.DraftID)
	})

	s.Run("returns the stored session without touching the repository", func() {
		sel := builder.NewSelectionBuilder().Build()
		s.seedSession(sel)

		state, err := s.uc.GetState(context.Background(), s.customerID)

		s.Require().NoError(err)
		s.Equal(sel.DraftID, state.Selection.DraftID)
		s.Equal(booking.StepReview, state.Selection.Step)
		s.False(state.Summary.Total.IsZero())
	})
}

func (s *WizardUseCaseTestSuite) TestSubmitService() {
	svc := builder.NewServiceSnapshot()

	s.Run("selects the service and advances", func() {
		sel := booking.NewSelection(uuid.New())
		s.seedSession(sel)

		s.catalogRepo.EXPECT().FindServiceBySlug(gomock.Any(), svc.Slug).Return(&svc, nil)
		s.bookingRepo.EXPECT().ReplaceExtras(gomock.Any(), sel.DraftID, gomock.Len(0)).Return(nil)
		s.bookingRepo.EXPECT().UpdateDraft(gomock.Any(), sel.DraftID, gomock.Any()).Return(&commands.BookingSnapshot{ID: sel.DraftID}, nil)
		s.bookingRepo.EXPECT().UpsertLineItem(gomock.Any(), sel.DraftID, booking.ItemTypeBedrooms, sel.Bedrooms, svc.BedroomPrice).Return(nil)
		s.bookingRepo.EXPECT().UpsertLineItem(gomock.Any(), sel.DraftID, booking.ItemTypeBathrooms, sel.Bathrooms, svc.BathroomPrice).Return(nil)

		state, err := s.uc.SubmitService(context.Background(), s.customerID, reqdto.SubmitServiceRequest{ServiceSlug: svc.Slug})

		s.Require().NoError(err)
		s.Equal(booking.StepProperty, state.Selection.Step)
		s.Require().NotNil(state.Selection.Service)
		s.Equal(svc.ID, state.Selection.Service.ID)
		s.False(state.Summary.Subtotal.IsZero())
	})

	s.Run("switching services drops the selected extras", func() {
		sel := builder.NewSelectionBuilder().
			WithStep(booking.StepService).
			WithExtras(builder.NewExtraSelection("Inside Oven", 350000)).
			Build()
		s.seedSession(sel)

		other := builder.NewServiceSnapshot()
		other.Slug = "deep-cleaning"
		s.catalogRepo.EXPECT().FindServiceBySlug(gomock.Any(), other.Slug).Return(&other, nil)
		s.bookingRepo.EXPECT().ReplaceExtras(gomock.Any(), sel.DraftID, gomock.Len(0)).Return(nil)
		s.bookingRepo.EXPECT().UpdateDraft(gomock.Any(), sel.DraftID, gomock.Any()).Return(&commands.BookingSnapshot{ID: sel.DraftID}, nil)
		s.bookingRepo.EXPECT().UpsertLineItem(gomock.Any(), sel.DraftID, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		state, err := s.uc.SubmitService(context.Background(), s.customerID, reqdto.SubmitServiceRequest{ServiceSlug: other.Slug})

		s.Require().NoError(err)
		s.Empty(state.Selection.Extras)
	})

	s.Run("unknown slug maps to service not found", func() {
		s.seedSession(booking.NewSelection(uuid.New()))
		s.catalogRepo.EXPECT().FindServiceBySlug(gomock.Any(), "gone").Return(nil, notFoundErr("service not found"))

		_, err := s.uc.SubmitService(context.Background(), s.customerID, reqdto.SubmitServiceRequest{ServiceSlug: "gone"})

		s.True(errs.Is(err, commands.ErrServiceNotFound))
	})
}

func (s *WizardUseCaseTestSuite) TestSubmitProperty() {
	regionID := uuid.New()
	suburbID := uuid.New()
	suburb := &commands.SuburbSnapshot{ID: suburbID, RegionID: regionID, Name: "Yaba"}

	s.Run("stores the location and clamps counters", func() {
		sel := builder.NewSelectionBuilder().WithStep(booking.StepProperty).Build()
		s.seedSession(sel)

		s.catalogRepo.EXPECT().FindSuburbByID(gomock.Any(), suburbID).Return(suburb, nil)
		s.bookingRepo.EXPECT().UpdateDraft(gomock.Any(), sel.DraftID, gomock.Any()).Return(&commands.BookingSnapshot{ID: sel.DraftID}, nil)
		s.bookingRepo.EXPECT().UpsertLineItem(gomock.Any(), sel.DraftID, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		bedrooms := int32(99)
		req := reqdto.SubmitPropertyRequest{
			RegionID: regionID,
			SuburbID: suburbID,
			Address:  "  12 Adeola Odeku St  ",
			Bedrooms: &bedrooms,
		}
		state, err := s.uc.SubmitProperty(context.Background(), s.customerID, req)

		s.Require().NoError(err)
		s.Equal(booking.StepSchedule, state.Selection.Step)
		s.Equal("12 Adeola Odeku St", state.Selection.Address)
		s.Equal(int32(8), state.Selection.Bedrooms, "clamped to the ceiling")
	})

	s.Run("rejects a suburb outside the region", func() {
		sel := builder.NewSelectionBuilder().WithStep(booking.StepProperty).Build()
		s.seedSession(sel)

		s.catalogRepo.EXPECT().FindSuburbByID(gomock.Any(), suburbID).Return(suburb, nil)

		req := reqdto.SubmitPropertyRequest{RegionID: uuid.New(), SuburbID: suburbID, Address: "somewhere"}
		_, err := s.uc.SubmitProperty(context.Background(), s.customerID, req)

		s.True(errs.Is(err, commands.ErrDomainValidation))
	})
}

func (s *WizardUseCaseTestSuite) TestSubmitSchedule() {
	s.Run("rejects an unknown frequency", func() {
		sel := builder.NewSelectionBuilder().WithStep(booking.StepSchedule).Build()
		s.seedSession(sel)

		req := reqdto.SubmitScheduleRequest{Date: "2026-09-15", Time: "09:00", Frequency: "fortnightly"}
		_, err := s.uc.SubmitSchedule(context.Background(), s.customerID, req)

		s.True(errs.Is(err, commands.ErrDomainValidation))
	})

	s.Run("stores schedule and preferred cleaner", func() {
		sel := builder.NewSelectionBuilder().WithStep(booking.StepSchedule).Build()
		s.seedSession(sel)

		cleanerID := uuid.New()
		s.catalogRepo.EXPECT().FindCleanerByID(gomock.Any(), cleanerID).
			Return(&booking.CleanerSnapshot{ID: cleanerID, FullName: "Adaeze Okafor"}, nil)
		s.bookingRepo.EXPECT().UpdateDraft(gomock.Any(), sel.DraftID, gomock.Any()).Return(&commands.BookingSnapshot{ID: sel.DraftID}, nil)
		s.bookingRepo.EXPECT().UpsertLineItem(gomock.Any(), sel.DraftID, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		req := reqdto.SubmitScheduleRequest{Date: "2026-09-15", Time: "09:00", Frequency: "weekly", CleanerID: &cleanerID}
		state, err := s.uc.SubmitSchedule(context.Background(), s.customerID, req)

		s.Require().NoError(err)
		s.Equal(booking.StepExtras, state.Selection.Step)
		s.Equal(booking.FrequencyWeekly, state.Selection.Frequency)
		s.Require().NotNil(state.Selection.Cleaner)
		s.Equal("Adaeze Okafor", state.Selection.Cleaner.FullName)
		s.False(state.Summary.Discount.IsZero(), "weekly selection discounts the quote")
	})
}

func (s *WizardUseCaseTestSuite) TestSubmitExtras() {
	s.Run("replaces the selection with the submitted set", func() {
		sel := builder.NewSelectionBuilder().
			WithStep(booking.StepExtras).
			WithExtras(builder.NewExtraSelection("Old Extra", 100000)).
			Build()
		s.seedSession(sel)

		extraID := uuid.New()
		s.catalogRepo.EXPECT().FindExtraByID(gomock.Any(), extraID).
			Return(&commands.ExtraSnapshot{ID: extraID, ServiceID: sel.Service.ID, Name: "Inside Fridge", Price: booking.NewMoney(300000)}, nil)
		s.bookingRepo.EXPECT().ReplaceExtras(gomock.Any(), sel.DraftID, gomock.Len(1)).Return(nil)
		s.bookingRepo.EXPECT().UpdateDraft(gomock.Any(), sel.DraftID, gomock.Any()).Return(&commands.BookingSnapshot{ID: sel.DraftID}, nil)
		s.bookingRepo.EXPECT().UpsertLineItem(gomock.Any(), sel.DraftID, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		notes := "please mind the cat"
		req := reqdto.SubmitExtrasRequest{ExtraIDs: []uuid.UUID{extraID}, SpecialInstructions: &notes}
		state, err := s.uc.SubmitExtras(context.Background(), s.customerID, req)

		s.Require().NoError(err)
		s.Require().Len(state.Selection.Extras, 1)
		s.Equal("Inside Fridge", state.Selection.Extras[0].Name)
		s.Equal("please mind the cat", state.Selection.SpecialInstructions)
		s.Equal(booking.StepReview, state.Selection.Step)
	})

	s.Run("rejects an extra belonging to a different service", func() {
		sel := builder.NewSelectionBuilder().WithStep(booking.StepExtras).Build()
		s.seedSession(sel)

		extraID := uuid.New()
		s.catalogRepo.EXPECT().FindExtraByID(gomock.Any(), extraID).
			Return(&commands.ExtraSnapshot{ID: extraID, ServiceID: uuid.New(), Name: "Wall Washing", Price: booking.NewMoney(500000)}, nil)

		req := reqdto.SubmitExtrasRequest{ExtraIDs: []uuid.UUID{extraID}}
		_, err := s.uc.SubmitExtras(context.Background(), s.customerID, req)

		s.True(errs.Is(err, commands.ErrDomainValidation))
	})

	s.Run("requires a service first", func() {
		sel := booking.NewSelection(uuid.New())
		s.seedSession(sel)

		_, err := s.uc.SubmitExtras(context.Background(), s.customerID, reqdto.SubmitExtrasRequest{})

		s.True(errs.Is(err, commands.ErrStepIncomplete))
	})
}

func (s *WizardUseCaseTestSuite) TestRetreat() {
	sel := builder.NewSelectionBuilder().WithStep(booking.StepSchedule).Build()
	s.seedSession(sel)

	state, err := s.uc.Retreat(context.Background(), s.customerID)

	s.Require().NoError(err)
	s.Equal(booking.StepProperty, state.Selection.Step)
}

func (s *WizardUseCaseTestSuite) TestReset() {
	s.Run("returns a ready-for-payment draft to DRAFT", func() {
		draftID := uuid.New()
		s.bookingRepo.EXPECT().GetOrCreateDraft(gomock.Any(), s.customerID).
			Return(&commands.BookingSnapshot{ID: draftID, Status: booking.StatusReadyForPayment}, nil)
		s.bookingRepo.EXPECT().SetStatus(gomock.Any(), draftID, booking.StatusReadyForPayment, booking.StatusDraft).
			Return(&commands.BookingSnapshot{ID: draftID, Status: booking.StatusDraft}, nil)

		state, err := s.uc.Reset(context.Background(), s.customerID)

		s.Require().NoError(err)
		s.Equal(booking.StepService, state.Selection.Step)
		s.Equal(draftID, state.Selection.DraftID)
		s.Nil(state.Selection.Service)
	})

	s.Run("keeps a plain draft as-is", func() {
		draftID := uuid.New()
		s.bookingRepo.EXPECT().GetOrCreateDraft(gomock.Any(), s.customerID).
			Return(&commands.BookingSnapshot{ID: draftID, Status: booking.StatusDraft}, nil)

		state, err := s.uc.Reset(context.Background(), s.customerID)

		s.Require().NoError(err)
		s.Equal(draftID, state.Selection.DraftID)
	})

	s.Run("clears a mid-wizard session back to the first step", func() {
		sel := builder.NewSelectionBuilder().Build()
		s.seedSession(sel)
		s.bookingRepo.EXPECT().GetOrCreateDraft(gomock.Any(), s.customerID).
			Return(&commands.BookingSnapshot{ID: sel.DraftID, Status: booking.StatusDraft}, nil)

		state, err := s.uc.Reset(context.Background(), s.customerID)

		s.Require().NoError(err)
		s.Equal(booking.StepService, state.Selection.Step)
		s.Nil(state.Selection.Service)
		s.Equal(sel.DraftID, state.Selection.DraftID)
	})
}

func (s *WizardUseCaseTestSuite) TestComplete() {
	s.Run("freezes the quote and issues a payment reference", func() {
		sel := builder.NewSelectionBuilder().Build()
		s.seedSession(sel)

		wantTotal := sel.Summary(0).Total

		s.bookingRepo.EXPECT().FindOpenByCustomer(gomock.Any(), s.customerID).
			Return(nil, infra.WrapRepoErr("no open booking", pgx.ErrNoRows, infra.KindNotFound))

		var captured commands.ReviewCompletion
		s.bookingRepo.EXPECT().CompleteReview(gomock.Any(), sel.DraftID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, rc commands.ReviewCompletion) (*commands.BookingSnapshot, error) {
				captured = rc
				return &commands.BookingSnapshot{ID: sel.DraftID, Status: booking.StatusReadyForPayment, TotalPrice: rc.TotalPrice}, nil
			})

		init, err := s.uc.Complete(context.Background(), s.customerID)

		s.Require().NoError(err)
		s.Equal(sel.DraftID, init.BookingID)
		s.Equal(wantTotal, init.Amount)
		s.Equal("NGN", init.Currency)
		s.Equal(sel.ContactEmail, init.Email)
		s.Regexp(`^SB-[0-9A-F]{10}-\d+$`, init.Reference)

		s.Equal(wantTotal, captured.TotalPrice)
		s.Equal(init.Reference, captured.PaymentRef)
		s.True(captured.EndTime.After(captured.StartTime))
	})

	s.Run("reuses the reference of an unpaid completed draft", func() {
		sel := builder.NewSelectionBuilder().Build()
		s.seedSession(sel)

		stored := "SB-ABCDEF1234-1756728000"
		s.bookingRepo.EXPECT().FindOpenByCustomer(gomock.Any(), s.customerID).
			Return(&commands.BookingSnapshot{
				ID:         sel.DraftID,
				Status:     booking.StatusReadyForPayment,
				PaymentRef: &stored,
			}, nil)
		s.bookingRepo.EXPECT().CompleteReview(gomock.Any(), sel.DraftID, gomock.Any()).
			Return(&commands.BookingSnapshot{ID: sel.DraftID, Status: booking.StatusReadyForPayment}, nil)

		init, err := s.uc.Complete(context.Background(), s.customerID)

		s.Require().NoError(err)
		s.Equal(stored, init.Reference)
	})

	s.Run("mints a fresh reference after a failed charge", func() {
		sel := builder.NewSelectionBuilder().Build()
		s.seedSession(sel)

		stored := "SB-ABCDEF1234-1756728000"
		failed := booking.PaymentStatusFailed.String()
		s.bookingRepo.EXPECT().FindOpenByCustomer(gomock.Any(), s.customerID).
			Return(&commands.BookingSnapshot{
				ID:            sel.DraftID,
				Status:        booking.StatusReadyForPayment,
				PaymentRef:    &stored,
				PaymentStatus: &failed,
			}, nil)
		s.bookingRepo.EXPECT().CompleteReview(gomock.Any(), sel.DraftID, gomock.Any()).
			Return(&commands.BookingSnapshot{ID: sel.DraftID, Status: booking.StatusReadyForPayment}, nil)

		init, err := s.uc.Complete(context.Background(), s.customerID)

		s.Require().NoError(err)
		s.NotEqual(stored, init.Reference)
		s.Regexp(`^SB-[0-9A-F]{10}-\d+$`, init.Reference)
	})

	s.Run("rejects an incomplete selection", func() {
		sel := builder.NewSelectionBuilder().WithoutContact().Build()
		s.seedSession(sel)

		_, err := s.uc.Complete(context.Background(), s.customerID)

		s.True(errs.Is(err, commands.ErrStepIncomplete))
	})
}
