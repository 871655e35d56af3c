package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/thisisdarkstar/lead-toolkit/internal/console"
	"github.com/thisisdarkstar/lead-toolkit/internal/dashboard"
	"github.com/thisisdarkstar/lead-toolkit/internal/lead"
	"github.com/thisisdarkstar/lead-toolkit/internal/storage"
)

type fakeFinder struct {
	leads map[string][]lead.Lead
}

func (f fakeFinder) FindOne(ctx context.Context, source string) ([]lead.Lead, error) {
	if leads, ok := f.leads[source]; ok {
		return leads, nil
	}
	return nil, fmt.Errorf("scan failed for %s", source)
}

func (f fakeFinder) Find(ctx context.Context, domains []string) lead.Result {
	res := lead.Result{Data: make(lead.Report)}
	for _, d := range domains {
		leads, err := f.FindOne(ctx, d)
		if err != nil {
			if res.Errors == nil {
				res.Errors = make(map[string]string)
			}
			res.Errors[d] = err.Error()
			continue
		}
		res.Data[d] = leads
	}
	return res
}

type fakeDashboard struct {
	resp *dashboard.AllocationsResponse
	err  error
}

func (f fakeDashboard) FetchAllocations(ctx context.Context, size int) (*dashboard.AllocationsResponse, []byte, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	raw, _ := json.Marshal(f.resp)
	return f.resp, raw, nil
}

func testHandler(t *testing.T, finder Finder, dash AllocationsFetcher) *Handler {
	t.Helper()
	data, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	h := New(finder, data, console.NewWriter(io.Discard, false))
	if dash != nil {
		h.NewDashboard = func(string) AllocationsFetcher { return dash }
	}
	return h
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestHandleHealth(t *testing.T) {
	h := testHandler(t, fakeFinder{}, nil)
	rec := httptest.NewRecorder()
	h.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	body := decodeJSON(t, rec)
	if body["status"] != "healthy" {
		t.Errorf("status = %v", body["status"])
	}
}

func TestHandleHome(t *testing.T) {
	h := testHandler(t, fakeFinder{}, nil)
	rec := httptest.NewRecorder()
	h.HandleHome(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Lead Toolkit") {
		t.Error("home page missing title")
	}

	rec = httptest.NewRecorder()
	h.HandleHome(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", rec.Code)
	}
}

func TestFindLeadsSingle(t *testing.T) {
	h := testHandler(t, fakeFinder{leads: map[string][]lead.Lead{
		"apex.com": {{Domain: "apex.in", LeadType: "Medium", Status: "active"}},
	}}, nil)

	rec := httptest.NewRecorder()
	h.HandleFindLeads(rec, httptest.NewRequest(http.MethodGet, "/api/find-leads?domain=apex.com", nil))

	body := decodeJSON(t, rec)
	if body["success"] != true || body["count"] != float64(1) {
		t.Errorf("body = %v", body)
	}
}

func TestFindLeadsSingleMissingParam(t *testing.T) {
	h := testHandler(t, fakeFinder{}, nil)
	rec := httptest.NewRecorder()
	h.HandleFindLeads(rec, httptest.NewRequest(http.MethodGet, "/api/find-leads", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func uploadRequest(t *testing.T, url, field, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	fw.Write([]byte(content))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestFindLeadsUpload(t *testing.T) {
	h := testHandler(t, fakeFinder{leads: map[string][]lead.Lead{
		"apex.com": {{Domain: "apex.in", LeadType: "Medium"}},
	}}, nil)

	req := uploadRequest(t, "/api/find-leads", "file", "domains.txt", "apex.com\nbroken.example\n")
	rec := httptest.NewRecorder()
	h.HandleFindLeads(rec, req)

	body := decodeJSON(t, rec)
	if body["success"] != true {
		t.Fatalf("body = %v", body)
	}
	leadsMap := body["leads"].(map[string]interface{})
	if _, ok := leadsMap["apex.com"]; !ok {
		t.Errorf("leads = %v", leadsMap)
	}
	errsMap, ok := body["errors"].(map[string]interface{})
	if !ok {
		t.Fatalf("errors missing from body: %v", body)
	}
	if _, ok := errsMap["broken.example"]; !ok {
		t.Errorf("errors = %v", errsMap)
	}

	// The run is persisted for /api/files.
	files, err := h.Data.List()
	if err != nil || len(files) != 1 {
		t.Errorf("List = %v, %v; want 1 persisted file", files, err)
	}
}

func TestFindLeadsUploadEmptyFile(t *testing.T) {
	h := testHandler(t, fakeFinder{}, nil)
	req := uploadRequest(t, "/api/find-leads", "file", "domains.txt", "\n\n")
	rec := httptest.NewRecorder()
	h.HandleFindLeads(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestExtractCSV(t *testing.T) {
	h := testHandler(t, fakeFinder{}, nil)
	req := uploadRequest(t, "/api/extract-csv", "file", "input.csv", "domain,price\nbeta.com,1\nalpha.com,2\n")
	rec := httptest.NewRecorder()
	h.HandleExtractCSV(rec, req)

	body := decodeJSON(t, rec)
	domains := body["domains"].([]interface{})
	if len(domains) != 2 || domains[0] != "alpha.com" {
		t.Errorf("domains = %v", domains)
	}
}

func TestExtractNamekart(t *testing.T) {
	present := struct {
		Domain string `json:"domain"`
	}{Domain: "alpha.ai"}
	h := testHandler(t, fakeFinder{}, fakeDashboard{resp: &dashboard.AllocationsResponse{
		Content: []dashboard.Allocation{
			{DomainName: "alpha.com", PresentDomain: &present},
			{DomainName: "beta.com"},
		},
	}})

	payload := `{"token":"tok","size":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/extract-namekart", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.HandleExtractNamekart(rec, req)

	body := decodeJSON(t, rec)
	if body["success"] != true || body["count"] != float64(3) {
		t.Fatalf("body = %v", body)
	}

	files, _ := h.Data.List()
	if len(files) != 2 { // domain list + raw payload
		t.Errorf("persisted files = %v, want 2", files)
	}
}

func TestExtractNamekartMissingToken(t *testing.T) {
	h := testHandler(t, fakeFinder{}, fakeDashboard{})
	req := httptest.NewRequest(http.MethodPost, "/api/extract-namekart", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.HandleExtractNamekart(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestFilesAndClear(t *testing.T) {
	h := testHandler(t, fakeFinder{}, nil)
	if _, err := h.Data.Save("x", "txt", []byte("hi")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	rec := httptest.NewRecorder()
	h.HandleFiles(rec, httptest.NewRequest(http.MethodGet, "/api/files", nil))
	body := decodeJSON(t, rec)
	if body["count"] != float64(1) {
		t.Errorf("files count = %v", body["count"])
	}

	rec = httptest.NewRecorder()
	h.HandleClearFiles(rec, httptest.NewRequest(http.MethodDelete, "/api/clear-files", nil))
	body = decodeJSON(t, rec)
	if body["count"] != float64(1) || body["success"] != true {
		t.Errorf("clear body = %v", body)
	}

	rec = httptest.NewRecorder()
	h.HandleClearFiles(rec, httptest.NewRequest(http.MethodGet, "/api/clear-files", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET clear status = %d, want 405", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("inner handler should not run for OPTIONS")
	})
	rec := httptest.NewRecorder()
	CORS(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/health", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS origin header")
	}
}
