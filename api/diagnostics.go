package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/macmobile/carwash/internal/repository"
	"go.uber.org/zap"
)

const previewChars = 1000

type TestMailer interface {
	SendTest(ctx context.Context, now time.Time) error
}

// DiagnosticsHandler exposes the mail smoke test and the booking log preview.
// Neither touches the booking workflow.
type DiagnosticsHandler struct {
	bookings repository.BookingRepository
	mailer   TestMailer
	log      *zap.Logger
	now      func() time.Time
}

func NewDiagnosticsHandler(bookings repository.BookingRepository, mailer TestMailer, log *zap.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{bookings: bookings, mailer: mailer, log: log, now: time.Now}
}

func (h *DiagnosticsHandler) Register(router gin.IRoutes) {
	router.GET("/test-email", h.testEmail)
	router.GET("/admin/bookings", h.preview)
}

func (h *DiagnosticsHandler) testEmail(c *gin.Context) {
	now := h.now()
	if err := h.mailer.SendTest(c.Request.Context(), now); err != nil {
		h.log.Warn("test email failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Test email sent successfully!",
		"timestamp": now.Format("2006-01-02T15:04:05.000000"),
	})
}

func (h *DiagnosticsHandler) preview(c *gin.Context) {
	p, err := h.bookings.Tail(c.Request.Context(), previewChars)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}

	content := p.Content
	if !p.Exists {
		content = "No bookings file found"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Bookings loaded from text file",
		"file_exists":     p.Exists,
		"file_size":       p.Size,
		"content_preview": content,
	})
}
