package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/anapath_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/anapath_backend/internal/core/ports/repositories"
	"github.com/SscSPs/anapath_backend/internal/middleware"
)

const dayLayout = "2006-01-02"

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireTenant rejects calls made without a tenant identifier.
func (s *BaseService) RequireTenant(tenantID string) error {
	if strings.TrimSpace(tenantID) == "" {
		return apperrors.ErrMissingTenant
	}
	return nil
}

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

// parseDay reads a YYYY-MM-DD date as midnight in loc.
func parseDay(raw string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(dayLayout, strings.TrimSpace(raw), loc)
	if err != nil {
		return time.Time{}, validationErr("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return day, nil
}

// inclusiveRange turns optional inclusive day bounds into a half-open range.
func inclusiveRange(from, to string, loc *time.Location) (portsrepo.DateRange, error) {
	var r portsrepo.DateRange
	if strings.TrimSpace(from) != "" {
		start, err := parseDay(from, loc)
		if err != nil {
			return r, err
		}
		r.From = &start
	}
	if strings.TrimSpace(to) != "" {
		end, err := parseDay(to, loc)
		if err != nil {
			return r, err
		}
		end = end.AddDate(0, 0, 1)
		r.To = &end
	}
	if r.From != nil && r.To != nil && !r.From.Before(*r.To) {
		return r, validationErr("dateFrom %s is after dateTo %s", from, to)
	}
	return r, nil
}

func locationOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
