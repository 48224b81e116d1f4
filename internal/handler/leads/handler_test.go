package leads

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/oakfield/london-property-agent/backend/internal/model/lead"
	"github.com/oakfield/london-property-agent/backend/internal/store/leadcsv"
)

func setupRouter(store Lister) *chi.Mux {
	r := chi.NewRouter()
	New(store).RegisterRoutes(r)
	return r
}

type listPayload struct {
	Leads []map[string]string `json:"leads"`
	Total int                 `json:"total"`
}

func TestListReturnsStoredLeads(t *testing.T) {
	store, err := leadcsv.New(filepath.Join(t.TempDir(), "leads.csv"))
	if err != nil {
		t.Fatalf("New err: %v", err)
	}

	const captures = 3
	for i := 0; i < captures; i++ {
		rec := lead.Record{
			Lead: lead.Lead{
				Name:         "Jane",
				Email:        "jane@x.com",
				InterestType: "buy",
				Postcode:     "SW1A 1AA",
			},
			CapturedAt:    time.Now().UTC(),
			EmailValid:    true,
			PostcodeValid: true,
		}
		if err := store.Append(rec); err != nil {
			t.Fatalf("Append err: %v", err)
		}
	}

	r := setupRouter(store)
	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload listPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Total != captures || len(payload.Leads) != captures {
		t.Fatalf("expected %d leads, got total=%d len=%d", captures, payload.Total, len(payload.Leads))
	}
	for _, item := range payload.Leads {
		for _, col := range leadcsv.Columns {
			if _, ok := item[col]; !ok {
				t.Fatalf("lead item missing column %q: %v", col, item)
			}
		}
	}
}

func TestListEmptyStore(t *testing.T) {
	store, err := leadcsv.New(filepath.Join(t.TempDir(), "leads.csv"))
	if err != nil {
		t.Fatalf("New err: %v", err)
	}

	r := setupRouter(store)
	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload listPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Total != 0 {
		t.Fatalf("expected total 0, got %d", payload.Total)
	}
	if payload.Leads == nil {
		t.Fatal("expected leads to be an empty list, not null")
	}
}

type failingLister struct{}

func (failingLister) List() ([]map[string]string, int, error) {
	return nil, 0, errors.New("read failure")
}

func TestListStoreFailure(t *testing.T) {
	r := setupRouter(failingLister{})
	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}
