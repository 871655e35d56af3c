package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestFetchAllocations(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/getmysocialallocations" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("authorization"); got != "Bearer tok123" {
			t.Errorf("authorization = %q", got)
		}
		if got := r.Header.Get("x-auth-provider"); got != "GOOGLE" {
			t.Errorf("x-auth-provider = %q", got)
		}
		q := r.URL.Query()
		if q.Get("page") != "0" || q.Get("size") != "50" || q.Get("sort") != "{}" {
			t.Errorf("query = %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[
			{"domainName":"beta.com"},
			{"domainName":"alpha.com","presentDomain":{"domain":"alpha.ai"}},
			{"domainName":""}
		],"totalElements":3,"totalPages":1}`))
	}))
	defer srv.Close()

	c := NewClient("tok123")
	c.BaseURL = srv.URL

	resp, raw, err := c.FetchAllocations(context.Background(), 50)
	if err != nil {
		t.Fatalf("FetchAllocations: %v", err)
	}
	if len(raw) == 0 {
		t.Error("raw body not returned")
	}
	if resp.TotalElements != 3 {
		t.Errorf("TotalElements = %d", resp.TotalElements)
	}

	got := ExtractDomains(resp)
	want := []string{"alpha.ai", "alpha.com", "beta.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractDomains = %v, want %v", got, want)
	}
}

func TestFetchAllocationsUnauthorized(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("stale")
	c.BaseURL = srv.URL

	_, _, err := c.FetchAllocations(context.Background(), 0)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Body != "token expired" {
		t.Errorf("Body = %q", apiErr.Body)
	}
}

func TestFetchAllocationsDefaultSize(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("size"); got != "200" {
			t.Errorf("size = %q, want 200", got)
		}
		w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	c := NewClient("tok")
	c.BaseURL = srv.URL
	if _, _, err := c.FetchAllocations(context.Background(), 0); err != nil {
		t.Fatalf("FetchAllocations: %v", err)
	}
}
