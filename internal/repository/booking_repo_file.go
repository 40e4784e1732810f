package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/macmobile/carwash/internal/domain"
)

const (
	separatorWidth  = 60
	timestampLayout = "2006-01-02T15:04:05.000000"
)

// BookingRepository persists bookings to two independent append-only stores:
// a human readable log and a JSON-lines backup. The two writes are not
// coordinated; either may fail while the other succeeds.
type BookingRepository interface {
	Init(ctx context.Context) error
	AppendLog(ctx context.Context, booking *domain.Booking) error
	AppendBackup(ctx context.Context, booking *domain.Booking) error
	Tail(ctx context.Context, maxChars int) (*LogPreview, error)
}

// LogPreview is the end of the text log as shown on the admin page.
type LogPreview struct {
	Exists  bool
	Size    int64
	Content string
}

type FileBookingRepository struct {
	logPath    string
	backupPath string
	banner     string
}

// NewBookingRepository returns a repository writing to logPath and backupPath.
// title appears in the banner written when the log file is first created.
func NewBookingRepository(logPath, backupPath, title string) BookingRepository {
	return &FileBookingRepository{
		logPath:    logPath,
		backupPath: backupPath,
		banner:     "=== " + strings.ToUpper(title) + " BOOKINGS ===\n\n",
	}
}

// Init creates the log with its banner and an empty backup if they are absent.
func (r *FileBookingRepository) Init(ctx context.Context) error {
	if err := r.ensureLog(); err != nil {
		return err
	}
	f, err := os.OpenFile(r.backupPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("create backup file: %w", err)
	}
	return f.Close()
}

// AppendLog and AppendBackup ignore ctx cancellation so an accepted booking is
// never dropped halfway through.
func (r *FileBookingRepository) AppendLog(ctx context.Context, booking *domain.Booking) error {
	if err := r.ensureLog(); err != nil {
		return err
	}
	return appendTo(r.logPath, []byte(formatLogEntry(booking)))
}

func (r *FileBookingRepository) AppendBackup(ctx context.Context, booking *domain.Booking) error {
	line, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("marshal booking %s: %w", booking.ID, err)
	}
	return appendTo(r.backupPath, append(line, '\n'))
}

func (r *FileBookingRepository) Tail(ctx context.Context, maxChars int) (*LogPreview, error) {
	data, err := os.ReadFile(r.logPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &LogPreview{}, nil
		}
		return nil, fmt.Errorf("read booking log: %w", err)
	}

	content := []rune(string(data))
	if maxChars > 0 && len(content) > maxChars {
		content = content[len(content)-maxChars:]
	}
	return &LogPreview{Exists: true, Size: int64(len(data)), Content: string(content)}, nil
}

func (r *FileBookingRepository) ensureLog() error {
	f, err := os.OpenFile(r.logPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("create booking log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(r.banner); err != nil {
		return fmt.Errorf("write booking log banner: %w", err)
	}
	return nil
}

// appendTo writes data with a single write call so a whole entry lands in one append.
func appendTo(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("append %s: %w", path, err)
	}
	return f.Close()
}

func formatLogEntry(b *domain.Booking) string {
	separator := strings.Repeat("=", separatorWidth)

	message := b.Message
	if message == "" {
		message = "N/A"
	}
	emailSent := "No"
	if b.EmailSent {
		emailSent = "Yes"
	}

	var sb strings.Builder
	sb.WriteString("\n" + separator + "\n")
	fmt.Fprintf(&sb, "BOOKING ID: %s\n", b.ID)
	fmt.Fprintf(&sb, "DATE: %s\n", b.CreatedAt.Format(timestampLayout))
	fmt.Fprintf(&sb, "CUSTOMER: %s\n", b.Customer.Name)
	fmt.Fprintf(&sb, "PHONE: %s\n", b.Customer.Phone)
	fmt.Fprintf(&sb, "EMAIL: %s\n", b.Customer.Email)
	fmt.Fprintf(&sb, "SERVICE: %s\n", b.Service.Name)
	fmt.Fprintf(&sb, "PRICE: %s\n", domain.FormatPrice(b.Service.Price))
	fmt.Fprintf(&sb, "MESSAGE: %s\n", message)
	fmt.Fprintf(&sb, "EMAIL SENT: %s\n", emailSent)
	sb.WriteString(separator + "\n")
	return sb.String()
}

var _ BookingRepository = (*FileBookingRepository)(nil)
