package joplin

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func envelopePage(count int, hasMore bool) string {
	items := make([]string, count)
	for i := range items {
		items[i] = fmt.Sprintf(`{"id":"item-%d"}`, i)
	}
	return fmt.Sprintf(`{"items":[%s],"has_more":%t}`, strings.Join(items, ","), hasMore)
}

func barePage(count int) string {
	items := make([]string, count)
	for i := range items {
		items[i] = fmt.Sprintf(`{"id":"item-%d"}`, i)
	}
	return "[" + strings.Join(items, ",") + "]"
}

func TestFetchAllEnvelopePages(t *testing.T) {
	pages := []string{
		envelopePage(100, true),
		envelopePage(100, true),
		envelopePage(37, false),
	}
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 || page > len(pages) {
			t.Errorf("unexpected page %d", page)
			http.Error(w, "bad page", http.StatusBadRequest)
			return
		}
		if got := r.URL.Query().Get("limit"); got != "100" {
			t.Errorf("unexpected per-page limit %q", got)
		}
		requests++
		_, _ = w.Write([]byte(pages[page-1]))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, false, &fakeDesktop{})
	items, err := c.FetchAll(context.Background(), "folders", nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 237 {
		t.Fatalf("expected 237 items, got %d", len(items))
	}
	if requests != 3 {
		t.Fatalf("expected 3 requests, got %d", requests)
	}
}

func TestFetchAllBareArrayStopsOnShortPage(t *testing.T) {
	pages := []string{barePage(100), barePage(5)}
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		requests++
		_, _ = w.Write([]byte(pages[page-1]))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, false, &fakeDesktop{})
	items, err := c.FetchAll(context.Background(), "notes", nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 105 {
		t.Fatalf("expected 105 items, got %d", len(items))
	}
	if requests != 2 {
		t.Fatalf("expected 2 requests, got %d", requests)
	}
}

func TestFetchAllStopsAtPageCeiling(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(envelopePage(100, true)))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, false, &fakeDesktop{})
	items, err := c.FetchAll(context.Background(), "notes", nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != maxPages {
		t.Fatalf("expected %d requests, got %d", maxPages, requests)
	}
	if len(items) != maxPages*100 {
		t.Fatalf("expected %d items, got %d", maxPages*100, len(items))
	}
}

func TestFetchAllLimitCapsResult(t *testing.T) {
	pages := []string{envelopePage(100, true), envelopePage(100, false)}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(pages[page-1]))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, false, &fakeDesktop{})
	items, err := c.FetchAll(context.Background(), "notes", nil, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 150 {
		t.Fatalf("expected 150 items, got %d", len(items))
	}
}

func TestFetchAllSmallLimitShrinksPageSize(t *testing.T) {
	var gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(envelopePage(10, false)))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, false, &fakeDesktop{})
	if _, err := c.FetchAll(context.Background(), "notes", url.Values{}, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != "10" {
		t.Fatalf("expected per-page limit 10, got %q", gotLimit)
	}
}

func TestFetchAllUnrecognizedShapeStops(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(`42`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, false, &fakeDesktop{})
	items, err := c.FetchAll(context.Background(), "notes", nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
	if requests != 1 {
		t.Fatalf("expected a single request, got %d", requests)
	}
}

func TestParsePage(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    int
		hasMore bool
		ok      bool
	}{
		{"envelope more", `{"items":[{},{}],"has_more":true}`, 2, true, true},
		{"envelope done", `{"items":[{}],"has_more":false}`, 1, false, true},
		{"envelope empty", `{"items":[],"has_more":false}`, 0, false, true},
		{"bare full", barePage(3), 3, true, true},
		{"bare short", barePage(2), 2, false, true},
		{"object without items", `{"id":"x"}`, 0, false, false},
		{"scalar", `42`, 0, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, ok := parsePage(gjson.Parse(tc.body), 3)
			if ok != tc.ok {
				t.Fatalf("ok = %t, want %t", ok, tc.ok)
			}
			if len(page.items) != tc.want {
				t.Fatalf("items = %d, want %d", len(page.items), tc.want)
			}
			if page.hasMore != tc.hasMore {
				t.Fatalf("hasMore = %t, want %t", page.hasMore, tc.hasMore)
			}
		})
	}
}
