package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/thisisdarkstar/lead-toolkit/internal/lead"
)

func TestHandleCheck(t *testing.T) {
	h := testHandler(t, fakeFinder{leads: map[string][]lead.Lead{
		"apex.com": {
			{Domain: "apex.in", URL: "http://apex.in", Category: "Software",
				CopyrightYear: "2024", LeadType: "Medium"},
		},
	}}, nil)

	rec := httptest.NewRecorder()
	h.HandleCheck(rec, httptest.NewRequest(http.MethodGet, "/check?domain=apex.com", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	html := rec.Body.String()
	for _, want := range []string{"Leads for apex.com", "apex.in", "Software", "2024", "Medium"} {
		if !strings.Contains(html, want) {
			t.Errorf("result page missing %q", want)
		}
	}
}

func TestHandleCheckRedirectsWithoutDomain(t *testing.T) {
	h := testHandler(t, fakeFinder{}, nil)
	rec := httptest.NewRecorder()
	h.HandleCheck(rec, httptest.NewRequest(http.MethodGet, "/check", nil))
	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", rec.Code)
	}
}

func TestHandleCheckInvalidDomain(t *testing.T) {
	h := testHandler(t, fakeFinder{}, nil)
	rec := httptest.NewRecorder()
	h.HandleCheck(rec, httptest.NewRequest(http.MethodGet, "/check?domain=nodots", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
