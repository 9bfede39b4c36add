package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/melodybakes/inquiry-api/internal/models"
	"github.com/melodybakes/inquiry-api/internal/notify"
	appErrors "github.com/melodybakes/inquiry-api/pkg/errors"
	"github.com/melodybakes/inquiry-api/pkg/export"
)

type inquiryStore interface {
	List(ctx context.Context, filter models.InquiryFilter) ([]models.Inquiry, int, error)
	ListAll(ctx context.Context, status *models.InquiryStatus) ([]models.Inquiry, error)
	GetByID(ctx context.Context, id string) (*models.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error
}

type moderationCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// InquiryService backs the moderation dashboard: listing, status changes,
// exports and the WhatsApp hand-off link.
type InquiryService struct {
	repo     inquiryStore
	cache    moderationCache
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewInquiryService constructs the moderation service. Cache may be nil.
func NewInquiryService(repo inquiryStore, cache moderationCache, logger *zap.Logger, cacheTTL time.Duration) *InquiryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InquiryService{
		repo:     repo,
		cache:    cache,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

type cachedInquiryList struct {
	Items []models.Inquiry `json:"items"`
	Total int              `json:"total"`
}

// List returns inquiries newest-first with pagination metadata, serving from
// the cache when a fresh copy exists for the same filter.
func (s *InquiryService) List(ctx context.Context, statusFilter string, page, pageSize int) ([]models.Inquiry, *models.Pagination, error) {
	filter := models.InquiryFilter{Page: page, PageSize: pageSize}
	if statusFilter != "" && statusFilter != "all" {
		status := models.InquiryStatus(statusFilter)
		if !models.ValidStatus(status) {
			return nil, nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown status %q", statusFilter))
		}
		filter.Status = &status
	}

	key := listCacheKey(filter)
	if s.cache != nil {
		var cached cachedInquiryList
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return cached.Items, s.pagination(filter, cached.Total), nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("inquiry cache read failed", zap.Error(err))
		}
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list inquiries")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, cachedInquiryList{Items: items, Total: total}, s.cacheTTL); err != nil {
			s.logger.Warn("inquiry cache write failed", zap.Error(err))
		}
	}

	return items, s.pagination(filter, total), nil
}

// Get returns a single inquiry by id.
func (s *InquiryService) Get(ctx context.Context, id string) (*models.Inquiry, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves an inquiry to any of the five workflow statuses. There
// is no transition graph and no optimistic concurrency; two operators editing
// the same inquiry is last-write-wins.
func (s *InquiryService) UpdateStatus(ctx context.Context, id, status string) (*models.Inquiry, error) {
	newStatus := models.InquiryStatus(status)
	if !models.ValidStatus(newStatus) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown status %q", status))
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.DeleteByPattern(ctx, "inquiries:*"); err != nil {
			s.logger.Warn("failed to invalidate inquiry cache", zap.Error(err))
		}
	}

	return s.repo.GetByID(ctx, id)
}

// Export renders the (optionally status-filtered) inquiry list as CSV or PDF.
func (s *InquiryService) Export(ctx context.Context, statusFilter, format string) (string, string, []byte, error) {
	var status *models.InquiryStatus
	if statusFilter != "" && statusFilter != "all" {
		st := models.InquiryStatus(statusFilter)
		if !models.ValidStatus(st) {
			return "", "", nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown status %q", statusFilter))
		}
		status = &st
	}

	inquiries, err := s.repo.ListAll(ctx, status)
	if err != nil {
		return "", "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to export inquiries")
	}

	switch format {
	case "", "csv":
		data, err := s.csv.Render(inquiryDataset(inquiries, true))
		if err != nil {
			return "", "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return "inquiries.csv", "text/csv", data, nil
	case "pdf":
		data, err := s.pdf.Render(inquiryDataset(inquiries, false), "Order Inquiries")
		if err != nil {
			return "", "", nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return "inquiries.pdf", "application/pdf", data, nil
	default:
		return "", "", nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown export format %q", format))
	}
}

// OrderSheet renders one inquiry as a printable kitchen sheet.
func (s *InquiryService) OrderSheet(ctx context.Context, id string) ([]byte, error) {
	inquiry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := [][2]string{
		{"Name", inquiry.Name},
		{"Contact", inquiry.Contact},
		{"Cake Type", inquiry.CakeType},
		{"Event", deref(inquiry.EventType)},
		{"Delivery", string(inquiry.DeliveryOption)},
		{"Location", deref(inquiry.DeliveryLocation)},
		{"Date Needed", inquiry.DateNeeded},
		{"Status", string(inquiry.Status)},
		{"Received", inquiry.CreatedAt.Format("2006-01-02 15:04")},
		{"Notes", deref(inquiry.AdditionalNotes)},
	}

	data, err := s.pdf.RenderSheet("Order Sheet", fields)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render order sheet")
	}
	return data, nil
}

// WhatsAppLink builds a wa.me URL that opens a chat with the customer,
// pre-filled with a summary of their inquiry.
func (s *InquiryService) WhatsAppLink(ctx context.Context, id string) (string, error) {
	inquiry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	phone := notify.PhoneDigits(inquiry.Contact)
	if phone == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "inquiry contact has no dialable number")
	}

	lines := []string{
		fmt.Sprintf("Hi %s! 🎂", notify.Sanitize(inquiry.Name, 100)),
		"",
		"Thanks for your order inquiry with Melody Bakes. Here's what we have on file:",
		"",
		fmt.Sprintf("Cake Type: %s", notify.Sanitize(inquiry.CakeType, 100)),
	}
	if event := deref(inquiry.EventType); event != "" {
		lines = append(lines, fmt.Sprintf("Occasion: %s", notify.Sanitize(event, 100)))
	}
	lines = append(lines, fmt.Sprintf("Date Needed: %s", inquiry.DateNeeded))
	delivery := string(inquiry.DeliveryOption)
	if location := deref(inquiry.DeliveryLocation); location != "" {
		delivery = fmt.Sprintf("%s (%s)", delivery, notify.Sanitize(location, 200))
	}
	lines = append(lines,
		fmt.Sprintf("Delivery: %s", delivery),
		"",
		"We'll be in touch shortly with your quotation! 💜",
	)

	return notify.BuildURL(phone, strings.Join(lines, "\n")), nil
}

func (s *InquiryService) pagination(filter models.InquiryFilter, total int) *models.Pagination {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	return &models.Pagination{Page: page, PageSize: size, TotalCount: total}
}

func listCacheKey(filter models.InquiryFilter) string {
	status := "all"
	if filter.Status != nil {
		status = string(*filter.Status)
	}
	return fmt.Sprintf("inquiries:list:%s:%d:%d", status, filter.Page, filter.PageSize)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func inquiryDataset(inquiries []models.Inquiry, includeNotes bool) export.Dataset {
	headers := []string{"ID", "Name", "Contact", "Cake Type", "Event", "Delivery", "Location", "Date Needed", "Status", "Created"}
	if includeNotes {
		headers = append(headers, "Notes")
	}
	rows := make([]map[string]string, 0, len(inquiries))
	for _, inquiry := range inquiries {
		row := map[string]string{
			"ID":          inquiry.ID,
			"Name":        inquiry.Name,
			"Contact":     inquiry.Contact,
			"Cake Type":   inquiry.CakeType,
			"Event":       deref(inquiry.EventType),
			"Delivery":    string(inquiry.DeliveryOption),
			"Location":    deref(inquiry.DeliveryLocation),
			"Date Needed": inquiry.DateNeeded,
			"Status":      string(inquiry.Status),
			"Created":     inquiry.CreatedAt.Format(time.RFC3339),
		}
		if includeNotes {
			row["Notes"] = deref(inquiry.AdditionalNotes)
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
