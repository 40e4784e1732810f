package domain

import (
	"strconv"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending BookingStatus = "pending"
)

// BookingRequest is the raw form submission.
type BookingRequest struct {
	Name    string
	Phone   string
	Email   string
	Service string
	Message string
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type BookedService struct {
	Code  string  `json:"type"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Booking struct {
	ID        string        `json:"booking_id"`
	Ref       string        `json:"ref"`
	CreatedAt time.Time     `json:"timestamp"`
	Customer  Customer      `json:"customer"`
	Service   BookedService `json:"service"`
	Message   string        `json:"message"`
	Status    BookingStatus `json:"status"`
	EmailSent bool          `json:"email_sent"`
}

// FormatPrice renders an AED amount the way it is shown to customers, e.g. "AED 65".
func FormatPrice(price float64) string {
	return "AED " + strconv.FormatFloat(price, 'f', -1, 64)
}
