package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/macmobile/carwash/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// NotifyResult reports whether every booking email went out.
type NotifyResult struct {
	Sent bool
}

// Dispatcher composes booking emails and hands them to a Mailer.
type Dispatcher struct {
	mailer   Mailer
	business domain.BusinessInfo
	log      *zap.Logger
}

func NewDispatcher(mailer Mailer, business domain.BusinessInfo, log *zap.Logger) *Dispatcher {
	return &Dispatcher{mailer: mailer, business: business, log: log}
}

// Notify sends the business alert and the customer confirmation. Both sends are
// attempted; the result is Sent only if both succeeded. Failures are logged,
// never retried.
func (d *Dispatcher) Notify(ctx context.Context, booking *domain.Booking, svc domain.ServiceDefinition) NotifyResult {
	data := bookingData{
		BookingID:     booking.ID,
		ServiceName:   booking.Service.Name,
		Price:         domain.FormatPrice(booking.Service.Price),
		Duration:      svc.Duration,
		CustomerName:  booking.Customer.Name,
		CustomerPhone: booking.Customer.Phone,
		CustomerEmail: booking.Customer.Email,
		Message:       booking.Message,
		BusinessName:  d.business.Name,
		BusinessPhone: d.business.Phone,
		BusinessHours: d.business.Hours,
	}
	if data.Duration == "" {
		data.Duration = "N/A"
	}

	var errs error
	errs = multierr.Append(errs, d.send(ctx, businessAlert, data, Message{
		To:      []string{d.business.Email},
		Subject: fmt.Sprintf("New Booking #%s - %s", booking.ID, booking.Customer.Name),
	}))
	errs = multierr.Append(errs, d.send(ctx, customerConfirmation, data, Message{
		To:      []string{booking.Customer.Email},
		Subject: fmt.Sprintf("Booking Confirmed #%s - %s", booking.ID, d.business.Name),
	}))

	if errs != nil {
		d.log.Error("booking emails failed",
			zap.String("booking_id", booking.ID),
			zap.Error(errs),
		)
		return NotifyResult{Sent: false}
	}

	d.log.Info("booking emails sent", zap.String("booking_id", booking.ID))
	return NotifyResult{Sent: true}
}

// SendTest mails a short message to the business address to check the transport.
func (d *Dispatcher) SendTest(ctx context.Context, now time.Time) error {
	return d.send(ctx, smokeTest, smokeTestData{
		SentAt:       now.Format(time.DateTime),
		BusinessName: d.business.Name,
	}, Message{
		To:      []string{d.business.Email},
		Subject: "Test Email - " + d.business.Name,
	})
}

func (d *Dispatcher) send(ctx context.Context, tmpl *template.Template, data any, msg Message) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	msg.HTML = buf.String()
	return d.mailer.Send(ctx, msg)
}
