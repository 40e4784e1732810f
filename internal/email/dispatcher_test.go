package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/macmobile/carwash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func testBusiness() domain.BusinessInfo {
	return domain.BusinessInfo{
		Name:  "MAC Mobile Car Wash",
		Phone: "+971 5011 34356",
		Email: "info@macmobilecarwash.com",
		Hours: "7 days a week, 8 AM - 8 PM",
	}
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:       "MAC20250102101112",
		Customer: domain.Customer{Name: "Ali", Phone: "+971500000000", Email: "ali@x.com"},
		Service:  domain.BookedService{Code: "silver", Name: "Silver Shine", Price: 65},
		Status:   domain.BookingStatusPending,
	}
}

func testService() domain.ServiceDefinition {
	return domain.ServiceDefinition{Code: "silver", Name: "Silver Shine", Price: 65, Duration: "45 mins"}
}

func isBusinessAlert(msg Message) bool {
	return len(msg.To) == 1 && msg.To[0] == "info@macmobilecarwash.com" &&
		msg.Subject == "New Booking #MAC20250102101112 - Ali"
}

func isCustomerConfirmation(msg Message) bool {
	return len(msg.To) == 1 && msg.To[0] == "ali@x.com" &&
		msg.Subject == "Booking Confirmed #MAC20250102101112 - MAC Mobile Car Wash"
}

func TestDispatcher_Notify_Success(t *testing.T) {
	mailer := &MockMailer{}
	d := NewDispatcher(mailer, testBusiness(), zap.NewNop())
	ctx := context.Background()

	var alert, confirmation Message
	mailer.On("Send", ctx, mock.MatchedBy(isBusinessAlert)).
		Run(func(args mock.Arguments) { alert = args.Get(1).(Message) }).
		Return(nil).Once()
	mailer.On("Send", ctx, mock.MatchedBy(isCustomerConfirmation)).
		Run(func(args mock.Arguments) { confirmation = args.Get(1).(Message) }).
		Return(nil).Once()

	result := d.Notify(ctx, testBooking(), testService())

	assert.True(t, result.Sent)
	mailer.AssertExpectations(t)

	assert.Contains(t, alert.HTML, "MAC20250102101112")
	assert.Contains(t, alert.HTML, "Silver Shine")
	assert.Contains(t, alert.HTML, "AED 65")
	assert.Contains(t, alert.HTML, "45 mins")
	assert.Contains(t, alert.HTML, "+971500000000")
	assert.Contains(t, alert.HTML, "ali@x.com")
	assert.NotContains(t, alert.HTML, "Message:")

	assert.Contains(t, confirmation.HTML, "Dear Ali")
	assert.Contains(t, confirmation.HTML, "within 1 hour")
	assert.Contains(t, confirmation.HTML, "Payment is made after service completion")
	assert.Contains(t, confirmation.HTML, "+971 5011 34356")
}

func TestDispatcher_Notify_IncludesMessage(t *testing.T) {
	mailer := &MockMailer{}
	d := NewDispatcher(mailer, testBusiness(), zap.NewNop())
	ctx := context.Background()

	booking := testBooking()
	booking.Message = "Parking level <B2>"

	var alert Message
	mailer.On("Send", ctx, mock.MatchedBy(isBusinessAlert)).
		Run(func(args mock.Arguments) { alert = args.Get(1).(Message) }).
		Return(nil).Once()
	mailer.On("Send", ctx, mock.MatchedBy(isCustomerConfirmation)).Return(nil).Once()

	d.Notify(ctx, booking, testService())

	assert.Contains(t, alert.HTML, "Message:")
	assert.Contains(t, alert.HTML, "Parking level &lt;B2&gt;")
}

func TestDispatcher_Notify_FirstSendFails(t *testing.T) {
	mailer := &MockMailer{}
	core, logs := observer.New(zapcore.ErrorLevel)
	d := NewDispatcher(mailer, testBusiness(), zap.New(core))
	ctx := context.Background()

	mailer.On("Send", ctx, mock.MatchedBy(isBusinessAlert)).Return(errors.New("smtp down")).Once()
	mailer.On("Send", ctx, mock.MatchedBy(isCustomerConfirmation)).Return(nil).Once()

	result := d.Notify(ctx, testBooking(), testService())

	assert.False(t, result.Sent)
	mailer.AssertExpectations(t)
	assert.Equal(t, 1, logs.FilterMessage("booking emails failed").Len())
}

func TestDispatcher_Notify_SecondSendFails(t *testing.T) {
	mailer := &MockMailer{}
	d := NewDispatcher(mailer, testBusiness(), zap.NewNop())
	ctx := context.Background()

	mailer.On("Send", ctx, mock.MatchedBy(isBusinessAlert)).Return(nil).Once()
	mailer.On("Send", ctx, mock.MatchedBy(isCustomerConfirmation)).Return(errors.New("mailbox unavailable")).Once()

	result := d.Notify(ctx, testBooking(), testService())

	assert.False(t, result.Sent)
	mailer.AssertExpectations(t)
}

func TestDispatcher_SendTest(t *testing.T) {
	mailer := &MockMailer{}
	d := NewDispatcher(mailer, testBusiness(), zap.NewNop())
	ctx := context.Background()
	now := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	mailer.On("Send", ctx, mock.MatchedBy(func(msg Message) bool {
		return msg.Subject == "Test Email - MAC Mobile Car Wash" &&
			msg.To[0] == "info@macmobilecarwash.com"
	})).Return(nil).Once()

	assert.NoError(t, d.SendTest(ctx, now))
	mailer.AssertExpectations(t)
}
