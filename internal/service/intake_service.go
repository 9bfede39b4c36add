package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/melodybakes/inquiry-api/internal/models"
	appErrors "github.com/melodybakes/inquiry-api/pkg/errors"
)

type intakeInquiryStore interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
}

type intakeRateLimiter interface {
	Allow(ctx context.Context, ipHash string) bool
	Record(ctx context.Context, ipHash string) error
}

type intakeCache interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

// IntakeService runs the submission pipeline: honeypot, rate limit,
// validation, persistence, rate-limit bookkeeping. Each request is handled
// independently; the only shared state is in the backing stores.
type IntakeService struct {
	inquiries intakeInquiryStore
	limiter   intakeRateLimiter
	cache     intakeCache
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewIntakeService constructs an IntakeService. Cache and metrics may be nil.
func NewIntakeService(inquiries intakeInquiryStore, limiter intakeRateLimiter, cache intakeCache, metrics *MetricsService, logger *zap.Logger) *IntakeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakeService{inquiries: inquiries, limiter: limiter, cache: cache, metrics: metrics, logger: logger}
}

// Submit processes one raw order-form payload from the given client address.
// On success the created inquiry is returned with its assigned id.
func (s *IntakeService) Submit(ctx context.Context, req models.SubmitInquiryRequest, clientIP string) (*models.Inquiry, error) {
	// Bots fill the hidden field; drop them before spending a database
	// round-trip, with the same generic reason the validator would give.
	if req.Honeypot != nil && strings.TrimSpace(*req.Honeypot) != "" {
		s.logger.Info("honeypot triggered, rejecting submission")
		s.countIntake(IntakeOutcomeHoneypot)
		return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid submission")
	}

	ipHash := HashClientIP(strings.TrimSpace(clientIP))

	if !s.limiter.Allow(ctx, ipHash) {
		s.logger.Info("rate limit exceeded", zap.String("ip_hash", ipHash))
		s.countIntake(IntakeOutcomeRateLimited)
		return nil, appErrors.Clone(appErrors.ErrRateLimited, "Too many submissions. Please try again later.")
	}

	sanitized, reason := ValidateSubmission(req)
	if sanitized == nil {
		s.logger.Info("submission rejected", zap.String("reason", reason))
		s.countIntake(IntakeOutcomeRejected)
		return nil, appErrors.Clone(appErrors.ErrValidation, reason)
	}

	inquiry := &models.Inquiry{
		Name:             sanitized.Name,
		Contact:          sanitized.Contact,
		CakeType:         sanitized.CakeType,
		EventType:        sanitized.EventType,
		DeliveryOption:   sanitized.DeliveryOption,
		DeliveryLocation: sanitized.DeliveryLocation,
		DateNeeded:       sanitized.DateNeeded,
		AdditionalNotes:  sanitized.AdditionalNotes,
		Status:           models.StatusNew,
	}

	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		s.logger.Error("failed to persist inquiry", zap.Error(err))
		s.countIntake(IntakeOutcomeError)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to submit inquiry")
	}

	// The business write already succeeded; bookkeeping failures are logged
	// and swallowed so a quota hiccup never turns a created inquiry into an
	// error response. A failed insert above never reaches this point, so a
	// failed submission never consumes quota.
	if err := s.limiter.Record(ctx, ipHash); err != nil {
		s.logger.Warn("failed to record rate limit entry", zap.String("ip_hash", ipHash), zap.Error(err))
	}

	if s.cache != nil {
		if err := s.cache.DeleteByPattern(ctx, "inquiries:*"); err != nil {
			s.logger.Warn("failed to invalidate inquiry cache", zap.Error(err))
		}
	}

	s.logger.Info("order inquiry submitted", zap.String("id", inquiry.ID), zap.String("ip_hash", ipHash))
	s.countIntake(IntakeOutcomeAccepted)
	return inquiry, nil
}

func (s *IntakeService) countIntake(outcome string) {
	if s.metrics != nil {
		s.metrics.IncIntake(outcome)
	}
}
