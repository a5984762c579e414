package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shalean-booking-api/internal/domain/booking"
	reqdto "shalean-booking-api/internal/handler/dto/request"
	"shalean-booking-api/internal/infra"
	"shalean-booking-api/internal/infra/session"
	"shalean-booking-api/internal/pkg/clock"
	"shalean-booking-api/internal/pkg/config"
	"shalean-booking-api/internal/pkg/errs"
	"shalean-booking-api/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound         = errs.New("service not found")
	ErrExtraNotFound           = errs.New("service extra not found")
	ErrSuburbNotFound          = errs.New("suburb not found")
	ErrCleanerNotFound         = errs.New("cleaner not found")
	ErrStepIncomplete          = errs.New("wizard step incomplete")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type WizardState struct {
	Selection booking.Selection
	Summary   booking.Summary
}

type PaymentInit struct {
	BookingID uuid.UUID
	Reference string
	Amount    booking.Money
	Currency  string
	Email     string
}

type BookingRepository interface {
	GetOrCreateDraft(ctx context.Context, customerID uuid.UUID) (*BookingSnapshot, error)
	FindOpenByCustomer(ctx context.Context, customerID uuid.UUID) (*BookingSnapshot, error)
	UpdateDraft(ctx context.Context, bookingID uuid.UUID, patch DraftPatch) (*BookingSnapshot, error)
	UpsertLineItem(ctx context.Context, bookingID uuid.UUID, itemType booking.ItemType, qty int32, unitPrice booking.Money) error
	ReplaceExtras(ctx context.Context, bookingID uuid.UUID, extras []booking.ExtraSelection) error
	SetStatus(ctx context.Context, bookingID uuid.UUID, from, to booking.Status) (*BookingSnapshot, error)
	CompleteReview(ctx context.Context, bookingID uuid.UUID, rc ReviewCompletion) (*BookingSnapshot, error)
	ConfirmPayment(ctx context.Context, bookingID uuid.UUID, to booking.Status, paymentStatus booking.PaymentStatus, paymentRef string) (*BookingSnapshot, error)
}

type CatalogRepository interface {
	FindServiceBySlug(ctx context.Context, slug string) (*booking.ServiceSnapshot, error)
	FindServiceByID(ctx context.Context, id uuid.UUID) (*booking.ServiceSnapshot, error)
	FindExtraByID(ctx context.Context, id uuid.UUID) (*ExtraSnapshot, error)
	FindSuburbByID(ctx context.Context, id uuid.UUID) (*SuburbSnapshot, error)
	FindCleanerByID(ctx context.Context, id uuid.UUID) (*booking.CleanerSnapshot, error)
}

type WizardCommands interface {
	GetState(ctx context.Context, customerID uuid.UUID) (*WizardState, error)
	SubmitService(ctx context.Context, customerID uuid.UUID, req reqdto.SubmitServiceRequest) (*WizardState, error)
	SubmitProperty(ctx context.Context, customerID uuid.UUID, req reqdto.SubmitPropertyRequest) (*WizardState, error)
	SubmitSchedule(ctx context.Context, customerID uuid.UUID, req reqdto.SubmitScheduleRequest) (*WizardState, error)
	SubmitExtras(ctx context.Context, customerID uuid.UUID, req reqdto.SubmitExtrasRequest) (*WizardState, error)
	SubmitContact(ctx context.Context, customerID uuid.UUID, req reqdto.SubmitContactRequest) (*WizardState, error)
	Retreat(ctx context.Context, customerID uuid.UUID) (*WizardState, error)
	Reset(ctx context.Context, customerID uuid.UUID) (*WizardState, error)
	Complete(ctx context.Context, customerID uuid.UUID) (*PaymentInit, error)
}

type wizardUseCaseImpl struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	sessions    session.Store
	clock       clock.Clock
	bookingCfg  config.BookingConfig
	paymentCfg  config.PaymentConfig
}

func NewWizardUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	sessions session.Store,
	clock clock.Clock,
	bookingCfg config.BookingConfig,
	paymentCfg config.PaymentConfig,
) WizardCommands {
	return &wizardUseCaseImpl{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		sessions:    sessions,
		clock:       clock,
		bookingCfg:  bookingCfg,
		paymentCfg:  paymentCfg,
	}
}

func (w *wizardUseCaseImpl) limits() booking.Limits {
	lim := booking.DefaultLimits()
	if w.bookingCfg.MaxBedrooms > 0 {
		lim.MaxBedrooms = w.bookingCfg.MaxBedrooms
	}
	if w.bookingCfg.MaxBathrooms > 0 {
		lim.MaxBathrooms = w.bookingCfg.MaxBathrooms
	}
	return lim
}

func (w *wizardUseCaseImpl) serviceFee() booking.Money {
	return booking.NewMoney(w.bookingCfg.ServiceFeeMinor)
}

func (w *wizardUseCaseImpl) state(sel *booking.Selection) *WizardState {
	return &WizardState{
		Selection: *sel,
		Summary:   sel.Summary(w.serviceFee()),
	}
}

// loadOrStart returns the customer's wizard selection, starting a fresh one
// bound to their open draft row when no session exists. A session that
// expired mid-wizard restarts at the first step against the same draft.
func (w *wizardUseCaseImpl) loadOrStart(ctx context.Context, customerID uuid.UUID) (*booking.Selection, error) {
	sel, err := w.sessions.Get(ctx, customerID)
	if err == nil {
		return sel, nil
	}
	if !errs.Is(err, session.ErrNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	draft, err := w.bookingRepo.GetOrCreateDraft(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	sel = booking.NewSelection(draft.ID)
	if err := w.sessions.Save(ctx, customerID, sel); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return sel, nil
}

func (w *wizardUseCaseImpl) save(ctx context.Context, customerID uuid.UUID, sel *booking.Selection) error {
	if err := w.sessions.Save(ctx, customerID, sel); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (w *wizardUseCaseImpl) GetState(ctx context.Context, customerID uuid.UUID) (*WizardState, error) {
	sel, err := w.loadOrStart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return w.state(sel), nil
}

func (w *wizardUseCaseImpl) SubmitService(ctx context.Context, customerID uuid.UUID, req reqdto.SubmitServiceRequest) (*WizardState, error) {
	sel, err := w.loadOrStart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	svc, err := w.catalogRepo.FindServiceBySlug(ctx, req.ServiceSlug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrServiceNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	sel.SetService(*svc)
	sel.Step = booking.StepService
	if err := booking.Advance(sel); err != nil {
		return nil, errs.Mark(err, ErrStepIncomplete)
	}

	// A service switch invalidates the selected extras; drop the stored rows too.
	if err := w.bookingRepo.ReplaceExtras(ctx, sel.DraftID, sel.Extras); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := w.mirrorDraft(ctx, sel); err != nil {
		return nil, err
	}
	if err := w.save(ctx, customerID, sel); err != nil {
		return nil, err
	}
	return w.state(sel), nil
}

func (w *wizardUseCaseImpl) SubmitProperty(ctx context.Context, customerID uuid.UUID, req reqdto.SubmitPropertyRequest) (*WizardState, error) {
	sel, err := w.loadOrStart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	suburb, err := w.catalogRepo.FindSuburbByID(ctx, req.SuburbID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSuburbNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if suburb.RegionID != req.RegionID {
		return nil, errs.Mark(errs.New("suburb does not belong to region"), ErrDomainValidation)
	}

	regionID := req.RegionID
	suburbID := req.SuburbID
	sel.RegionID = &regionID
	sel.SuburbID = &suburbID
	sel.Address = strings.TrimSpace(req.Address)

	// Absent counters keep their current value.
	lim := w.limits()
	sel.SetBedrooms(patch.Coalesce(req.Bedrooms, sel.Bedrooms), lim)
	sel.SetBathrooms(patch.Coalesce(req.Bathrooms, sel.Bathrooms), lim)

	sel.Step = booking.StepProperty
	if err := booking.Advance(sel); err != nil {
		return nil, errs.Mark(err, ErrStepIncomplete)
	}

	if err := w.mirrorDraft(ctx, sel); err != nil {
		return nil, err
	}
	if err := w.save(ctx, customerID, sel); err != nil {
		return nil, err
	}
	return w.state(sel), nil
}

func (w *wizardUseCaseImpl) SubmitSchedule(ctx context.Context, customerID uuid.UUID, req reqdto.SubmitScheduleRequest) (*WizardState, error) {
	sel, err := w.loadOrStart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	freq, err := booking.NewFrequency(req.Frequency)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var cleaner *booking.CleanerSnapshot
	if req.CleanerID != nil {
		cleaner, err = w.catalogRepo.FindCleanerByID(ctx, *req.CleanerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrCleanerNotFound)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	sel.SetSchedule(req.Date, req.Time, freq)
	sel.SetCleaner(cleaner)

	sel.Step = booking.StepSchedule
	if err := booking.Advance(sel); err != nil {
		return nil, errs.Mark(err, ErrStepIncomplete)
	}

	if err := w.mirrorDraft(ctx, sel); err != nil {
		return nil, err
	}
	if err := w.save(ctx, customerID, sel); err != nil {
		return nil, err
	}
	return w.state(sel), nil
}

func (w *wizardUseCaseImpl) SubmitExtras(ctx context.Context, customerID uuid.UUID, req reqdto.SubmitExtrasRequest) (*WizardState, error) {
	sel, err := w.loadOrStart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if sel.Service == nil {
		return nil, errs.Mark(booking.ErrServiceRequired, ErrStepIncomplete)
	}

	sel.Extras = []booking.ExtraSelection{}
	for _, id := range req.ExtraIDs {
		extra, err := w.catalogRepo.FindExtraByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrExtraNotFound)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if extra.ServiceID != sel.Service.ID {
			return nil, errs.Mark(errs.New("extra belongs to a different service"), ErrDomainValidation)
		}
		sel.ToggleExtra(booking.ExtraSelection{
			ID:    extra.ID,
			Name:  extra.Name,
			Price: extra.Price,
		})
	}
	if req.SpecialInstructions != nil {
		sel.SetSpecialInstructions(strings.TrimSpace(*req.SpecialInstructions))
	}

	sel.Step = booking.StepExtras
	if err := booking.Advance(sel); err != nil {
		return nil, errs.Mark(err, ErrStepIncomplete)
	}

	if err := w.bookingRepo.ReplaceExtras(ctx, sel.DraftID, sel.Extras); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := w.mirrorDraft(ctx, sel); err != nil {
		return nil, err
	}
	if err := w.save(ctx, customerID, sel); err != nil {
		return nil, err
	}
	return w.state(sel), nil
}

func (w *wizardUseCaseImpl) SubmitContact(ctx context.Context, customerID uuid.UUID, req reqdto.SubmitContactRequest) (*WizardState, error) {
	sel, err := w.loadOrStart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	sel.SetContact(strings.TrimSpace(req.Name), strings.TrimSpace(req.Email), strings.TrimSpace(req.Phone))

	if err := booking.ValidateStep(booking.StepReview, sel); err != nil {
		return nil, errs.Mark(err, ErrStepIncomplete)
	}
	sel.Step = booking.StepReview

	if err := w.mirrorDraft(ctx, sel); err != nil {
		return nil, err
	}
	if err := w.save(ctx, customerID, sel); err != nil {
		return nil, err
	}
	return w.state(sel), nil
}

func (w *wizardUseCaseImpl) Retreat(ctx context.Context, customerID uuid.UUID) (*WizardState, error) {
	sel, err := w.loadOrStart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	booking.Retreat(sel)

	if err := w.save(ctx, customerID, sel); err != nil {
		return nil, err
	}
	return w.state(sel), nil
}

// Reset drops the wizard state and returns the draft row to DRAFT. The draft
// itself is kept so the customer keeps their single open booking slot.
func (w *wizardUseCaseImpl) Reset(ctx context.Context, customerID uuid.UUID) (*WizardState, error) {
	draft, err := w.bookingRepo.GetOrCreateDraft(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if draft.Status == booking.StatusReadyForPayment {
		if _, err := w.bookingRepo.SetStatus(ctx, draft.ID, booking.StatusReadyForPayment, booking.StatusDraft); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	sel, err := w.sessions.Get(ctx, customerID)
	if err != nil {
		sel = booking.NewSelection(draft.ID)
	} else {
		sel.DraftID = draft.ID
		sel.Reset()
	}
	if err := w.save(ctx, customerID, sel); err != nil {
		return nil, err
	}
	return w.state(sel), nil
}

// Complete validates every step, freezes the quote into the draft row, marks
// it READY_FOR_PAYMENT and hands back what the frontend needs to start the
// Paystack charge.
func (w *wizardUseCaseImpl) Complete(ctx context.Context, customerID uuid.UUID) (*PaymentInit, error) {
	sel, err := w.loadOrStart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	for step := booking.StepService; step <= booking.StepReview; step++ {
		if err := booking.ValidateStep(step, sel); err != nil {
			return nil, errs.Mark(err, ErrStepIncomplete)
		}
	}

	loc, err := time.LoadLocation(w.bookingCfg.TimeZone)
	if err != nil {
		loc = time.UTC
	}
	start, err := sel.StartTime(loc)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	end := start.Add(estimateDuration(sel))

	summary := sel.Summary(w.serviceFee())
	reference := w.paymentReference(ctx, customerID, sel)

	rc := ReviewCompletion{
		TotalPrice:   summary.Total,
		StartTime:    start,
		EndTime:      end,
		Frequency:    sel.Frequency,
		ContactName:  sel.ContactName,
		ContactEmail: sel.ContactEmail,
		ContactPhone: sel.ContactPhone,
		PaymentRef:   reference,
	}
	if sel.SpecialInstructions != "" {
		notes := sel.SpecialInstructions
		rc.Notes = &notes
	}
	if sel.Cleaner != nil {
		cleanerID := sel.Cleaner.ID
		rc.CleanerID = &cleanerID
	}

	snap, err := w.bookingRepo.CompleteReview(ctx, sel.DraftID, rc)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := w.save(ctx, customerID, sel); err != nil {
		return nil, err
	}

	return &PaymentInit{
		BookingID: snap.ID,
		Reference: reference,
		Amount:    summary.Total,
		Currency:  w.paymentCfg.Currency,
		Email:     sel.ContactEmail,
	}, nil
}

// mirrorDraft pushes the session selection into the draft row. The session
// stays authoritative while the wizard runs; the row keeps admin tooling and
// the payment step in sync.
func (w *wizardUseCaseImpl) mirrorDraft(ctx context.Context, sel *booking.Selection) error {
	summary := sel.Summary(w.serviceFee())
	total := summary.Total.Minor()
	patch := DraftPatch{
		RegionID:   sel.RegionID,
		SuburbID:   sel.SuburbID,
		TotalPrice: &total,
	}
	if sel.Service != nil {
		serviceID := sel.Service.ID
		patch.ServiceID = &serviceID
	}
	if sel.Address != "" {
		addr := sel.Address
		patch.Address = &addr
	}
	if sel.SpecialInstructions != "" {
		notes := sel.SpecialInstructions
		patch.Notes = &notes
	}
	if sel.Date != "" {
		freq := sel.Frequency.String()
		patch.Frequency = &freq
	}
	if sel.Cleaner != nil {
		cleanerID := sel.Cleaner.ID
		patch.CleanerID = &cleanerID
	}
	if sel.ContactName != "" {
		name := sel.ContactName
		email := sel.ContactEmail
		phone := sel.ContactPhone
		patch.ContactName = &name
		patch.ContactEmail = &email
		patch.ContactPhone = &phone
	}

	if _, err := w.bookingRepo.UpdateDraft(ctx, sel.DraftID, patch); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if sel.Service != nil {
		if err := w.bookingRepo.UpsertLineItem(ctx, sel.DraftID, booking.ItemTypeBedrooms, sel.Bedrooms, sel.Service.BedroomPrice); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := w.bookingRepo.UpsertLineItem(ctx, sel.DraftID, booking.ItemTypeBathrooms, sel.Bathrooms, sel.Service.BathroomPrice); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

// estimateDuration sizes the visit window from the property counters.
func estimateDuration(sel *booking.Selection) time.Duration {
	return time.Hour + time.Duration(sel.Bedrooms+sel.Bathrooms)*30*time.Minute
}

// paymentReference reuses the reference of a draft that already completed
// review and has not been charged yet, so re-running complete stays idempotent
// for verification. A failed attempt burns its reference with the processor
// and mints a fresh one.
func (w *wizardUseCaseImpl) paymentReference(ctx context.Context, customerID uuid.UUID, sel *booking.Selection) string {
	snap, err := w.bookingRepo.FindOpenByCustomer(ctx, customerID)
	if err == nil && snap.ID == sel.DraftID &&
		snap.Status == booking.StatusReadyForPayment &&
		snap.PaymentRef != nil && *snap.PaymentRef != "" &&
		(snap.PaymentStatus == nil || *snap.PaymentStatus != booking.PaymentStatusFailed.String()) {
		return *snap.PaymentRef
	}
	return newPaymentReference(sel.DraftID, w.clock.Now())
}

func newPaymentReference(bookingID uuid.UUID, now time.Time) string {
	short := strings.ToUpper(strings.ReplaceAll(bookingID.String(), "-", "")[:10])
	return fmt.Sprintf("SB-%s-%d", short, now.Unix())
}
