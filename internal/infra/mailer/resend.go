// Package mailer sends transactional email through the Resend HTTP API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"shalean-booking-api/internal/domain/booking"
	"shalean-booking-api/internal/pkg/config"
	"shalean-booking-api/internal/pkg/errs"
	"shalean-booking-api/internal/usecase/queries"
)

type ResendMailer struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	from       string
	admin      string
}

func NewResendMailer(cfg config.MailConfig) *ResendMailer {
	return &ResendMailer{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.ResendBaseURL,
		apiKey:     cfg.ResendAPIKey,
		from:       cfg.FromAddress,
		admin:      cfg.AdminAddress,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendBookingConfirmation mails the customer their receipt and copies the
// operations inbox. The admin copy failing does not fail the call.
func (m *ResendMailer) SendBookingConfirmation(ctx context.Context, detail *queries.BookingDetailView) error {
	if detail.ContactEmail == nil {
		return errs.New("booking has no contact email")
	}

	customerMsg := sendRequest{
		From:    m.from,
		To:      []string{*detail.ContactEmail},
		Subject: "Your cleaning is booked",
		HTML:    customerHTML(detail),
	}
	if err := m.send(ctx, customerMsg); err != nil {
		return errs.Wrap(err, "failed to send customer confirmation")
	}

	adminMsg := sendRequest{
		From:    m.from,
		To:      []string{m.admin},
		Subject: fmt.Sprintf("New booking %s", shortID(detail.ID.String())),
		HTML:    adminHTML(detail),
	}
	// The admin copy is best effort; the customer already has the receipt.
	_ = m.send(ctx, adminMsg)
	return nil
}

func (m *ResendMailer) send(ctx context.Context, msg sendRequest) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return errs.Wrap(err, "failed to encode email payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build email request")
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "resend request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errs.New(fmt.Sprintf("resend returned status %d: %s", resp.StatusCode, string(body)))
	}
	return nil
}

func customerHTML(d *queries.BookingDetailView) string {
	var b strings.Builder
	b.WriteString("<h2>Booking confirmed</h2>")
	fmt.Fprintf(&b, "<p>Hi %s, your cleaning is confirmed.</p>", deref(d.ContactName))
	b.WriteString("<ul>")
	fmt.Fprintf(&b, "<li>Reference: %s</li>", deref(d.PaymentRef))
	fmt.Fprintf(&b, "<li>Service: %s</li>", deref(d.ServiceName))
	if d.StartTime != nil {
		fmt.Fprintf(&b, "<li>Scheduled: %s</li>", d.StartTime.Format("Mon, 2 Jan 2006 15:04"))
	}
	if d.CleanerName != nil {
		fmt.Fprintf(&b, "<li>Cleaner: %s</li>", *d.CleanerName)
	}
	for _, e := range d.Extras {
		fmt.Fprintf(&b, "<li>%s x%d &ndash; &#8358;%s</li>", e.Name, e.Qty, booking.NewMoney(e.LineTotal).Major())
	}
	fmt.Fprintf(&b, "<li><strong>Total: &#8358;%s</strong></li>", booking.NewMoney(d.TotalPrice).Major())
	b.WriteString("</ul>")
	return b.String()
}

func adminHTML(d *queries.BookingDetailView) string {
	var b strings.Builder
	b.WriteString("<h2>New booking</h2>")
	b.WriteString("<ul>")
	fmt.Fprintf(&b, "<li>Booking: %s</li>", d.ID)
	fmt.Fprintf(&b, "<li>Customer: %s (%s, %s)</li>", deref(d.ContactName), deref(d.ContactEmail), deref(d.ContactPhone))
	fmt.Fprintf(&b, "<li>Service: %s</li>", deref(d.ServiceName))
	fmt.Fprintf(&b, "<li>Address: %s</li>", deref(d.Address))
	if d.StartTime != nil {
		fmt.Fprintf(&b, "<li>Scheduled: %s</li>", d.StartTime.Format("Mon, 2 Jan 2006 15:04"))
	}
	fmt.Fprintf(&b, "<li>Total: &#8358;%s</li>", booking.NewMoney(d.TotalPrice).Major())
	fmt.Fprintf(&b, "<li>Reference: %s</li>", deref(d.PaymentRef))
	b.WriteString("</ul>")
	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
