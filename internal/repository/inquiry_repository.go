package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/melodybakes/inquiry-api/internal/models"
	appErrors "github.com/melodybakes/inquiry-api/pkg/errors"
)

const inquiryColumns = "id, name, contact, cake_type, event_type, delivery_option, delivery_location, date_needed, additional_notes, status, created_at"

// InquiryRepository provides persistence for order inquiries.
type InquiryRepository struct {
	db *sqlx.DB
}

// NewInquiryRepository creates the repository.
func NewInquiryRepository(db *sqlx.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// Create inserts a new inquiry. The id, status and created_at are assigned
// here when the caller leaves them zero.
func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.ID == "" {
		inquiry.ID = uuid.NewString()
	}
	if inquiry.Status == "" {
		inquiry.Status = models.StatusNew
	}
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO order_inquiries (id, name, contact, cake_type, event_type, delivery_option, delivery_location, date_needed, additional_notes, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err := r.db.ExecContext(ctx, query,
		inquiry.ID,
		inquiry.Name,
		inquiry.Contact,
		inquiry.CakeType,
		inquiry.EventType,
		inquiry.DeliveryOption,
		inquiry.DeliveryLocation,
		inquiry.DateNeeded,
		inquiry.AdditionalNotes,
		inquiry.Status,
		inquiry.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

// List returns inquiries newest-first, optionally filtered by exact status.
func (r *InquiryRepository) List(ctx context.Context, filter models.InquiryFilter) ([]models.Inquiry, int, error) {
	where := "1=1"
	args := []interface{}{}
	if filter.Status != nil {
		where = "status = $1"
		args = append(args, *filter.Status)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s FROM order_inquiries WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		inquiryColumns, where, size, offset)
	var inquiries []models.Inquiry
	if err := r.db.SelectContext(ctx, &inquiries, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list inquiries: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM order_inquiries WHERE %s", where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count inquiries: %w", err)
	}
	return inquiries, total, nil
}

// ListAll returns every inquiry newest-first, optionally filtered by status.
// Used by exports, which must not be silently truncated by pagination.
func (r *InquiryRepository) ListAll(ctx context.Context, status *models.InquiryStatus) ([]models.Inquiry, error) {
	where := "1=1"
	args := []interface{}{}
	if status != nil {
		where = "status = $1"
		args = append(args, *status)
	}
	query := fmt.Sprintf("SELECT %s FROM order_inquiries WHERE %s ORDER BY created_at DESC", inquiryColumns, where)
	var inquiries []models.Inquiry
	if err := r.db.SelectContext(ctx, &inquiries, query, args...); err != nil {
		return nil, fmt.Errorf("list all inquiries: %w", err)
	}
	return inquiries, nil
}

// GetByID returns a single inquiry.
func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	query := fmt.Sprintf("SELECT %s FROM order_inquiries WHERE id = $1", inquiryColumns)
	var inquiry models.Inquiry
	if err := r.db.GetContext(ctx, &inquiry, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, fmt.Errorf("get inquiry %s: %w", id, err)
	}
	return &inquiry, nil
}

// UpdateStatus sets the status of a single inquiry. Any of the five statuses
// may follow any other; the last write wins.
func (r *InquiryRepository) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	const query = `UPDATE order_inquiries SET status = $1, updated_at = now() WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update inquiry status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update inquiry status: %w", err)
	}
	if affected == 0 {
		return appErrors.ErrNotFound
	}
	return nil
}
