package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/melodybakes/inquiry-api/internal/models"
	appErrors "github.com/melodybakes/inquiry-api/pkg/errors"
)

type mockModerationStore struct {
	inquiries     []models.Inquiry
	byID          map[string]*models.Inquiry
	updated       map[string]models.InquiryStatus
	listCalls     int
	listAllStatus []*models.InquiryStatus
}

func (m *mockModerationStore) List(ctx context.Context, filter models.InquiryFilter) ([]models.Inquiry, int, error) {
	m.listCalls++
	return m.inquiries, len(m.inquiries), nil
}

func (m *mockModerationStore) ListAll(ctx context.Context, status *models.InquiryStatus) ([]models.Inquiry, error) {
	m.listAllStatus = append(m.listAllStatus, status)
	return m.inquiries, nil
}

func (m *mockModerationStore) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	if inquiry, ok := m.byID[id]; ok {
		return inquiry, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "inquiry not found")
}

func (m *mockModerationStore) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	if _, ok := m.byID[id]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "inquiry not found")
	}
	if m.updated == nil {
		m.updated = make(map[string]models.InquiryStatus)
	}
	m.updated[id] = status
	m.byID[id].Status = status
	return nil
}

type memoryCache struct {
	entries map[string][]byte
	deletes []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := c.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *memoryCache) DeleteByPattern(ctx context.Context, pattern string) error {
	c.deletes = append(c.deletes, pattern)
	for key := range c.entries {
		if strings.HasPrefix(key, strings.TrimSuffix(pattern, "*")) {
			delete(c.entries, key)
		}
	}
	return nil
}

func sampleInquiry(id string) models.Inquiry {
	event := "Birthday"
	return models.Inquiry{
		ID:             id,
		Name:           "Thandi Nkosi",
		Contact:        "0821234567",
		CakeType:       "Chocolate fudge",
		EventType:      &event,
		DeliveryOption: models.DeliveryPickup,
		DateNeeded:     "2026-09-12",
		Status:         models.StatusNew,
		CreatedAt:      time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func newModerationFixture() (*InquiryService, *mockModerationStore, *memoryCache) {
	first := sampleInquiry("inq-1")
	store := &mockModerationStore{
		inquiries: []models.Inquiry{first},
		byID:      map[string]*models.Inquiry{"inq-1": &first},
	}
	cache := newMemoryCache()
	svc := NewInquiryService(store, cache, zap.NewNop(), 5*time.Minute)
	return svc, store, cache
}

func TestInquiryListCachesResult(t *testing.T) {
	svc, store, cache := newModerationFixture()

	items, pagination, err := svc.List(context.Background(), "", 1, 20)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, pagination.TotalCount)
	assert.Equal(t, 1, store.listCalls)
	assert.Contains(t, cache.entries, "inquiries:list:all:1:20")

	// Second identical call served from cache.
	items, _, err = svc.List(context.Background(), "", 1, 20)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, store.listCalls)
}

func TestInquiryListStatusFilterKeyedSeparately(t *testing.T) {
	svc, _, cache := newModerationFixture()

	_, _, err := svc.List(context.Background(), "new", 1, 20)
	require.NoError(t, err)
	assert.Contains(t, cache.entries, "inquiries:list:new:1:20")
}

func TestInquiryListUnknownStatus(t *testing.T) {
	svc, _, _ := newModerationFixture()

	_, _, err := svc.List(context.Background(), "archived", 1, 20)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestInquiryListAllKeywordMeansUnfiltered(t *testing.T) {
	svc, store, _ := newModerationFixture()

	items, _, err := svc.List(context.Background(), "all", 1, 20)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, store.listCalls)
}

func TestInquiryUpdateStatus(t *testing.T) {
	svc, store, cache := newModerationFixture()
	// Warm the cache so invalidation is observable.
	_, _, err := svc.List(context.Background(), "", 1, 20)
	require.NoError(t, err)

	inquiry, err := svc.UpdateStatus(context.Background(), "inq-1", "contacted")
	require.NoError(t, err)
	assert.Equal(t, models.StatusContacted, inquiry.Status)
	assert.Equal(t, models.StatusContacted, store.updated["inq-1"])
	assert.Equal(t, []string{"inquiries:*"}, cache.deletes)
	assert.Empty(t, cache.entries)
}

func TestInquiryUpdateStatusUnknown(t *testing.T) {
	svc, store, _ := newModerationFixture()

	_, err := svc.UpdateStatus(context.Background(), "inq-1", "archived")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Empty(t, store.updated)
}

func TestInquiryUpdateStatusNotFound(t *testing.T) {
	svc, _, _ := newModerationFixture()

	_, err := svc.UpdateStatus(context.Background(), "missing", "contacted")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestInquiryExportCSV(t *testing.T) {
	svc, _, _ := newModerationFixture()

	filename, contentType, data, err := svc.Export(context.Background(), "", "csv")
	require.NoError(t, err)
	assert.Equal(t, "inquiries.csv", filename)
	assert.Equal(t, "text/csv", contentType)

	body := string(data)
	assert.Contains(t, body, "Notes")
	assert.Contains(t, body, "Thandi Nkosi")
	assert.Contains(t, body, "2026-09-12")
}

func TestInquiryExportPDF(t *testing.T) {
	svc, _, _ := newModerationFixture()

	filename, contentType, data, err := svc.Export(context.Background(), "new", "pdf")
	require.NoError(t, err)
	assert.Equal(t, "inquiries.pdf", filename)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestInquiryExportUnknownFormat(t *testing.T) {
	svc, _, _ := newModerationFixture()

	_, _, _, err := svc.Export(context.Background(), "", "xlsx")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestInquiryOrderSheet(t *testing.T) {
	svc, _, _ := newModerationFixture()

	data, err := svc.OrderSheet(context.Background(), "inq-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestInquiryWhatsAppLink(t *testing.T) {
	svc, _, _ := newModerationFixture()

	url, err := svc.WhatsAppLink(context.Background(), "inq-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://wa.me/0821234567?text="))
	assert.Contains(t, url, "Thandi")
}

func TestInquiryWhatsAppLinkNoDialableNumber(t *testing.T) {
	svc, store, _ := newModerationFixture()
	store.byID["inq-1"].Contact = "thandi@example.com"

	_, err := svc.WhatsAppLink(context.Background(), "inq-1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
