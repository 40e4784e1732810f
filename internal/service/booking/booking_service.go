package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/macmobile/carwash/internal/domain"
	"github.com/macmobile/carwash/internal/email"
	"github.com/macmobile/carwash/internal/repository"
	"go.uber.org/zap"
)

const idTimeLayout = "20060102150405"

type BookingUseCase interface {
	CreateBooking(ctx context.Context, req domain.BookingRequest) (*Confirmation, error)
}

type Catalog interface {
	Lookup(code string) (domain.ServiceDefinition, bool)
}

type Notifier interface {
	Notify(ctx context.Context, booking *domain.Booking, svc domain.ServiceDefinition) email.NotifyResult
}

// Confirmation describes an accepted booking and which side effects succeeded.
type Confirmation struct {
	Booking   domain.Booking
	Price     string
	FileSaved bool
	EmailSent bool
}

type BookingService struct {
	validator *Validator
	catalog   Catalog
	bookings  repository.BookingRepository
	notifier  Notifier
	log       *zap.Logger
	idPrefix  string
	now       func() time.Time
	newRef    func() string
}

type BookingServiceOption func(*BookingService)

func WithIDPrefix(prefix string) BookingServiceOption {
	return func(s *BookingService) {
		s.idPrefix = prefix
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	catalog Catalog,
	bookings repository.BookingRepository,
	notifier Notifier,
	log *zap.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		validator: NewValidator(),
		catalog:   catalog,
		bookings:  bookings,
		notifier:  notifier,
		log:       log,
		idPrefix:  "MAC",
		now:       time.Now,
		newRef:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// NewBookingID derives a booking ID from the submission time at second
// granularity. Two bookings in the same second get the same ID.
func NewBookingID(prefix string, t time.Time) string {
	return prefix + t.Format(idTimeLayout)
}

// CreateBooking validates the request, resolves the service, writes the text
// log, sends notifications and finally appends the structured backup. Only a
// validation failure is returned as an error; log, mail and backup failures
// are reported through the Confirmation flags or swallowed.
//
// Once started, a submission runs to completion: cancellation of ctx (a client
// disconnecting mid-request) does not reach the recorder or the mailer.
func (s *BookingService) CreateBooking(ctx context.Context, req domain.BookingRequest) (*Confirmation, error) {
	ctx = context.WithoutCancel(ctx)

	s.log.Info("booking request received",
		zap.String("name", req.Name),
		zap.String("service", req.Service),
	)

	input, err := s.validator.Validate(req)
	if err != nil {
		return nil, err
	}

	svc, found := s.catalog.Lookup(input.Service)
	if !found {
		s.log.Warn("unknown service code, using fallback",
			zap.String("service", input.Service),
			zap.String("fallback_name", svc.Name),
		)
	}

	createdAt := s.now()
	booking := &domain.Booking{
		ID:        NewBookingID(s.idPrefix, createdAt),
		Ref:       s.newRef(),
		CreatedAt: createdAt,
		Customer: domain.Customer{
			Name:  input.Name,
			Phone: input.Phone,
			Email: input.Email,
		},
		Service: domain.BookedService{
			Code:  input.Service,
			Name:  svc.Name,
			Price: svc.Price,
		},
		Message: input.Message,
		Status:  domain.BookingStatusPending,
	}

	fileSaved := true
	if err := s.bookings.AppendLog(ctx, booking); err != nil {
		fileSaved = false
		s.log.Warn("failed to write booking log",
			zap.String("booking_id", booking.ID),
			zap.Error(err),
		)
	}

	booking.EmailSent = s.notifier.Notify(ctx, booking, svc).Sent

	if err := s.bookings.AppendBackup(ctx, booking); err != nil {
		s.log.Debug("booking backup skipped",
			zap.String("booking_id", booking.ID),
			zap.Error(err),
		)
	}

	s.log.Info("booking completed",
		zap.String("booking_id", booking.ID),
		zap.Bool("file_saved", fileSaved),
		zap.Bool("email_sent", booking.EmailSent),
	)

	return &Confirmation{
		Booking:   *booking,
		Price:     domain.FormatPrice(booking.Service.Price),
		FileSaved: fileSaved,
		EmailSent: booking.EmailSent,
	}, nil
}

var _ BookingUseCase = (*BookingService)(nil)
