package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "dialtone/pkg/errors"
	"dialtone/pkg/logger"
	"dialtone/pkg/model"
	"dialtone/pkg/nanp"
	"dialtone/pkg/tabular"
)

// Mock service for testing
type mockFormatterService struct {
	formatSheetFunc     func(ctx context.Context, sheet tabular.Source, opts model.Options) (*model.Report, error)
	formatAllSheetsFunc func(ctx context.Context, store tabular.Store, opts model.Options) ([]*model.Report, error)
}

func (m *mockFormatterService) NormalizeValue(raw any, style string) string {
	return nanp.Normalize(raw, style)
}

func (m *mockFormatterService) FormatSheet(ctx context.Context, sheet tabular.Source, opts model.Options) (*model.Report, error) {
	if m.formatSheetFunc != nil {
		return m.formatSheetFunc(ctx, sheet, opts)
	}
	return &model.Report{Sheet: sheet.Name()}, nil
}

func (m *mockFormatterService) FormatAllSheets(ctx context.Context, store tabular.Store, opts model.Options) ([]*model.Report, error) {
	if m.formatAllSheetsFunc != nil {
		return m.formatAllSheetsFunc(ctx, store, opts)
	}
	return nil, nil
}

type staticSheet struct {
	name string
}

func (s *staticSheet) Name() string                                   { return s.name }
func (s *staticSheet) Headers(context.Context) ([]string, error)      { return nil, nil }
func (s *staticSheet) ReadColumn(context.Context, int) ([]any, error) { return nil, nil }
func (s *staticSheet) WriteColumn(context.Context, int, []string) error {
	return nil
}

type staticStore struct {
	sheets map[string]tabular.Source
}

func (s *staticStore) Sheets(ctx context.Context) ([]tabular.Source, error) {
	var out []tabular.Source
	for _, sheet := range s.sheets {
		out = append(out, sheet)
	}
	return out, nil
}

func (s *staticStore) Sheet(ctx context.Context, name string) (tabular.Source, error) {
	if sheet, ok := s.sheets[name]; ok {
		return sheet, nil
	}
	return nil, apperrors.NotFound("sheet")
}

func newTestHandler(svc *mockFormatterService, store tabular.Store) *FormatterHandler {
	log := logger.New(logger.Config{Output: io.Discard})
	return NewFormatterHandler(
		svc,
		func(headerRow int) tabular.Store { return store },
		model.Options{Style: "digits", HeaderRow: 0},
		log,
	)
}

func newTestRouter(h *FormatterHandler) *httprouter.Router {
	router := httprouter.New()
	h.RegisterRoutes(router)
	return router
}

func TestNormalizeEndpoint(t *testing.T) {
	handler := newTestHandler(&mockFormatterService{}, &staticStore{})
	router := newTestRouter(handler)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantResult string
	}{
		{
			name:       "vanity number",
			body:       `{"value":"1-800-FLOWERS"}`,
			wantStatus: http.StatusOK,
			wantResult: "8003569377",
		},
		{
			name:       "explicit style",
			body:       `{"value":"4155550123","style":"e164"}`,
			wantStatus: http.StatusOK,
			wantResult: "+14155550123",
		},
		{
			name:       "numeric value",
			body:       `{"value":4155550123}`,
			wantStatus: http.StatusOK,
			wantResult: "4155550123",
		},
		{
			name:       "null value",
			body:       `{"value":null}`,
			wantStatus: http.StatusOK,
			wantResult: "",
		},
		{
			name:       "unparseable value",
			body:       `{"value":"hello"}`,
			wantStatus: http.StatusOK,
			wantResult: "INVALID",
		},
		{
			name:       "malformed body",
			body:       `{"value":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/normalize", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp struct {
				Data NormalizeResponse `json:"data"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if resp.Data.Result != tt.wantResult {
				t.Errorf("result = %q, want %q", resp.Data.Result, tt.wantResult)
			}
		})
	}
}

func TestFormatSheetEndpoint(t *testing.T) {
	store := &staticStore{sheets: map[string]tabular.Source{
		"contacts": &staticSheet{name: "contacts"},
	}}

	var receivedOpts model.Options
	svc := &mockFormatterService{
		formatSheetFunc: func(ctx context.Context, sheet tabular.Source, opts model.Options) (*model.Report, error) {
			receivedOpts = opts
			return &model.Report{RunID: "run-1", Sheet: sheet.Name(), Style: opts.Style}, nil
		},
	}

	handler := newTestHandler(svc, store)
	router := newTestRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sheets/contacts/format",
		bytes.NewBufferString(`{"style":"paren","header_row":2}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if receivedOpts.Style != "paren" || receivedOpts.HeaderRow != 2 {
		t.Errorf("service received opts %+v, want style=paren header_row=2", receivedOpts)
	}

	var resp struct {
		Data model.Report `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Sheet != "contacts" {
		t.Errorf("report sheet = %q, want contacts", resp.Data.Sheet)
	}
}

func TestFormatSheetEndpoint_DefaultsWhenNoBody(t *testing.T) {
	store := &staticStore{sheets: map[string]tabular.Source{
		"contacts": &staticSheet{name: "contacts"},
	}}

	var receivedOpts model.Options
	svc := &mockFormatterService{
		formatSheetFunc: func(ctx context.Context, sheet tabular.Source, opts model.Options) (*model.Report, error) {
			receivedOpts = opts
			return &model.Report{Sheet: sheet.Name()}, nil
		},
	}

	handler := newTestHandler(svc, store)
	router := newTestRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sheets/contacts/format", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if receivedOpts.Style != "digits" || receivedOpts.HeaderRow != 0 {
		t.Errorf("expected configured defaults, got %+v", receivedOpts)
	}
}

func TestFormatSheetEndpoint_SheetNotFound(t *testing.T) {
	handler := newTestHandler(&mockFormatterService{}, &staticStore{})
	router := newTestRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sheets/missing/format", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestFormatAllSheetsEndpoint_NoPhoneColumns(t *testing.T) {
	svc := &mockFormatterService{
		formatAllSheetsFunc: func(ctx context.Context, store tabular.Store, opts model.Options) ([]*model.Report, error) {
			return nil, apperrors.NoPhoneColumns("notes")
		},
	}

	handler := newTestHandler(svc, &staticStore{})
	router := newTestRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/format", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == "" {
		t.Error("expected a user-facing error message")
	}
}
