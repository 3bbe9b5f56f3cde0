package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/Rayalistisch/gsmteam-afspraken-admin/config"
	"github.com/Rayalistisch/gsmteam-afspraken-admin/models"
	"github.com/Rayalistisch/gsmteam-afspraken-admin/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockRequestStore is a mock implementation of store.RequestStore
type MockRequestStore struct {
	mock.Mock
}

func (m *MockRequestStore) Create(row map[string]interface{}) (*models.RepairRequest, error) {
	args := m.Called(row)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RepairRequest), args.Error(1)
}

func (m *MockRequestStore) Patch(id string, patch map[string]interface{}) (*models.RepairRequest, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RepairRequest), args.Error(1)
}

func (m *MockRequestStore) GetByID(id string) (*models.RepairRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RepairRequest), args.Error(1)
}

// MockCatalogStore is a mock implementation of store.CatalogStore
type MockCatalogStore struct {
	mock.Mock
}

func (m *MockCatalogStore) List(filter models.CatalogFilter) ([]models.CatalogEntry, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CatalogEntry), args.Error(1)
}

func (m *MockCatalogStore) Brands() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogStore) Create(row map[string]interface{}) (string, error) {
	args := m.Called(row)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogStore) Update(id string, patch map[string]interface{}) error {
	args := m.Called(id, patch)
	return args.Error(0)
}

func (m *MockCatalogStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockMailer is a mock implementation of services.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, html string, attachments ...services.Attachment) error {
	args := m.Called(ctx, to, subject, html, attachments)
	return args.Error(0)
}

func mailerFactory(m services.Mailer) MailerFactory {
	return func() (services.Mailer, error) { return m, nil }
}

func failingMailerFactory(err error) MailerFactory {
	return func() (services.Mailer, error) { return nil, err }
}

func testConfig() *config.Config {
	return &config.Config{
		AllowedOrigins: []string{"https://gsmteam.nl"},
		MailFrom:       "GSM Team <noreply@gsmteam.nl>",
	}
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := map[string]interface{}{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w, resp
}
