package api

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/macmobile/carwash/internal/domain"
	"github.com/macmobile/carwash/internal/service/booking"
	"go.uber.org/zap"
)

const (
	acceptedMessage = "Thank you! Your booking has been confirmed. We will contact you within 1 hour."
	noDataMessage   = "No data received"
	internalMessage = "Something went wrong. Please call us directly."
)

type BookingHandler struct {
	service booking.BookingUseCase
	log     *zap.Logger
	debug   bool
}

type createBookingRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Message string `json:"message"`
}

type bookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID string `json:"booking_id"`
	Service   string `json:"service"`
	Price     string `json:"price"`
	EmailSent bool   `json:"email_sent"`
	FileSaved bool   `json:"file_saved"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewBookingHandler builds the submission handler. With debug set, internal
// error details are echoed back in the response.
func NewBookingHandler(service booking.BookingUseCase, log *zap.Logger, debug bool) *BookingHandler {
	return &BookingHandler{service: service, log: log, debug: debug}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/contact", h.create)
	router.POST("/bookings", h.create)
}

func (h *BookingHandler) create(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.internalError(c, fmt.Errorf("panic: %v", r), debug.Stack())
		}
	}()

	// null, {} and an empty body all count as nothing submitted
	var fields map[string]any
	if err := c.ShouldBindBodyWith(&fields, binding.JSON); err != nil || len(fields) == 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Message: noDataMessage})
		return
	}
	var req createBookingRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: noDataMessage})
		return
	}

	conf, err := h.service.CreateBooking(c.Request.Context(), domain.BookingRequest{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Service: req.Service,
		Message: req.Message,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, errorResponse{Message: verr.Message})
			return
		}
		h.internalError(c, err, debug.Stack())
		return
	}

	c.JSON(http.StatusOK, bookingResponse{
		Success:   true,
		Message:   acceptedMessage,
		BookingID: conf.Booking.ID,
		Service:   conf.Booking.Service.Name,
		Price:     conf.Price,
		EmailSent: conf.EmailSent,
		FileSaved: conf.FileSaved,
	})
}

func (h *BookingHandler) internalError(c *gin.Context, err error, stack []byte) {
	h.log.Error("booking failed",
		zap.Error(err),
		zap.String("stack", string(stack)),
	)

	resp := errorResponse{Message: internalMessage}
	if h.debug {
		resp.Error = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
}
