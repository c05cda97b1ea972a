package inquiry

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"sobasite/internal/core/domain/reservation"
	"sobasite/internal/platform/logger"
)

const maxDetailsRunes = 200

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func textPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// LogSink records accepted submissions in the service log. Free text is
// stripped of markup and truncated; contact details are reduced to what an
// operator needs to spot the entry.
type LogSink struct {
	logger logger.Logger
}

func NewLogSink(log logger.Logger) *LogSink {
	return &LogSink{logger: log}
}

func (s *LogSink) Deliver(ctx context.Context, inquiry reservation.FormState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fields := []logger.Field{
		logger.String("category", inquiry.Category.String()),
		logger.String("name", Sanitize(inquiry.Name)),
		logger.String("email_domain", emailDomain(inquiry.Email)),
		logger.String("details", truncate(Sanitize(inquiry.Details), maxDetailsRunes)),
	}
	if inquiry.Category.RequiresVisit() {
		fields = append(fields, logger.String("date", inquiry.Date))
		if n, ok := inquiry.GuestCount(); ok {
			fields = append(fields, logger.Int("guests", n))
		}
	}

	s.logger.Info("Inquiry received", fields...)
	return nil
}

// Sanitize removes every HTML element from user supplied text.
func Sanitize(text string) string {
	return strings.TrimSpace(textPolicy().Sanitize(text))
}

func emailDomain(email string) string {
	if i := strings.LastIndex(email, "@"); i >= 0 {
		return email[i+1:]
	}
	return ""
}

func truncate(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max]) + "…"
}
