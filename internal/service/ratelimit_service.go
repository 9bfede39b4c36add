package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/melodybakes/inquiry-api/pkg/config"
)

// UnknownClient is the shared quota bucket used when the client address cannot
// be determined. Merging such clients is a deliberate tradeoff: legitimate
// traffic behind broken proxies stays available at the cost of attribution.
const UnknownClient = "unknown"

// HashClientIP derives a short, non-reversible digest of the client address.
// It is the 32-bit rolling hash the production endpoint has always used; a
// privacy heuristic, not a security control.
func HashClientIP(ip string) string {
	if ip == "" {
		ip = UnknownClient
	}
	var h int32
	for _, c := range ip {
		h = (h << 5) - h + int32(c)
	}
	return strconv.FormatInt(int64(h), 16)
}

type rateLimitStore interface {
	CountSince(ctx context.Context, ipHash string, since time.Time) (int, error)
	Record(ctx context.Context, ipHash string, submittedAt time.Time) error
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// RateLimitService enforces the sliding-window submission quota.
type RateLimitService struct {
	store  rateLimitStore
	logger *zap.Logger
	max    int
	window time.Duration
}

// NewRateLimitService constructs the service, falling back to five
// submissions per hour when the configuration leaves the quota unset.
func NewRateLimitService(store rateLimitStore, logger *zap.Logger, cfg config.RateLimitConfig) *RateLimitService {
	if logger == nil {
		logger = zap.NewNop()
	}
	max := cfg.MaxSubmissions
	if max <= 0 {
		max = 5
	}
	window := cfg.Window
	if window <= 0 {
		window = time.Hour
	}
	return &RateLimitService{store: store, logger: logger, max: max, window: window}
}

// Allow reports whether the hash may submit right now. Expired entries are
// purged eagerly first. A store read failure is logged and treated as allow:
// the quota exists to suppress spam, not to gate legitimate orders.
func (s *RateLimitService) Allow(ctx context.Context, ipHash string) bool {
	cutoff := time.Now().UTC().Add(-s.window)

	if _, err := s.store.PurgeBefore(ctx, cutoff); err != nil {
		s.logger.Warn("rate limit purge failed", zap.Error(err))
	}

	count, err := s.store.CountSince(ctx, ipHash, cutoff)
	if err != nil {
		s.logger.Warn("rate limit check failed", zap.String("ip_hash", ipHash), zap.Error(err))
		return true
	}

	return count < s.max
}

// Record books a submission against the hash. A creation that succeeded must
// never be rolled back over bookkeeping, so callers invoke this only after
// the inquiry insert and may swallow its error.
func (s *RateLimitService) Record(ctx context.Context, ipHash string) error {
	return s.store.Record(ctx, ipHash, time.Now().UTC())
}
