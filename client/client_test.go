package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/officine/remise-tui/feed"
)

// newCatalogueServer serves /api/catalogue with cursor pagination over n
// generated products.
func newCatalogueServer(t *testing.T, n int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			json.NewEncoder(w).Encode(HealthResponse{Status: "ok", Version: "1.2.3"})
			return
		case "/api/catalogue":
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Detail: "not found"})
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit <= 0 {
			t.Errorf("missing limit param")
			limit = 10
		}
		start := 0
		if c := r.URL.Query().Get("cursor"); c != "" {
			start, _ = strconv.Atoi(c)
		}
		end := start + limit
		if end > n {
			end = n
		}
		page := feed.Page[CatalogueProduct]{TotalCount: n}
		for i := start; i < end; i++ {
			page.Items = append(page.Items, CatalogueProduct{
				ID:        i,
				CIPCode:   "340093" + strconv.Itoa(1000000+i),
				TradeName: "PRODUCT " + strconv.Itoa(i),
			})
		}
		if end < n {
			page.NextCursor = strconv.Itoa(end)
		}
		json.NewEncoder(w).Encode(page)
	}))
}

func TestHealth(t *testing.T) {
	srv := newCatalogueServer(t, 0)
	defer srv.Close()

	c := New(srv.URL)
	h, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if h.Status != "ok" || h.Version != "1.2.3" {
		t.Errorf("unexpected health response: %+v", h)
	}
}

func TestListCatalogue_FirstPage(t *testing.T) {
	srv := newCatalogueServer(t, 250)
	defer srv.Close()

	c := New(srv.URL)
	page, err := c.ListCatalogue(context.Background(), CatalogueFilter{}, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != DefaultPageSize {
		t.Errorf("want %d items, got %d", DefaultPageSize, len(page.Items))
	}
	if page.TotalCount != 250 {
		t.Errorf("want total 250, got %d", page.TotalCount)
	}
	if page.NextCursor == "" {
		t.Error("want a continuation cursor")
	}
}

func TestListCatalogue_CursorRoundTrips(t *testing.T) {
	srv := newCatalogueServer(t, 250)
	defer srv.Close()

	c := New(srv.URL)
	c.PageSize = 100
	first, err := c.ListCatalogue(context.Background(), CatalogueFilter{}, "")
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	second, err := c.ListCatalogue(context.Background(), CatalogueFilter{}, first.NextCursor)
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if second.Items[0].ID != 100 {
		t.Errorf("want second page to start at 100, got %d", second.Items[0].ID)
	}

	// The final page ends the cursor chain.
	last, err := c.ListCatalogue(context.Background(), CatalogueFilter{}, second.NextCursor)
	if err != nil {
		t.Fatalf("last page: %v", err)
	}
	if last.NextCursor != "" {
		t.Errorf("want empty cursor on the last page, got %q", last.NextCursor)
	}
	if len(last.Items) != 50 {
		t.Errorf("want 50 items on the last page, got %d", len(last.Items))
	}
}

func TestAuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("secret")
	if _, err := c.Health(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("want bearer header, got %q", gotAuth)
	}
}

func TestErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(ErrorResponse{Detail: "invalid cursor"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListCatalogue(context.Background(), CatalogueFilter{}, "bogus")
	if err == nil {
		t.Fatal("want an error")
	}
	if !strings.Contains(err.Error(), "invalid cursor") {
		t.Errorf("error must carry the backend detail, got %v", err)
	}
	if !strings.Contains(err.Error(), "422") {
		t.Errorf("error must carry the status code, got %v", err)
	}
}
