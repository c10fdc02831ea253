package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"CandleGrid/internal/dashboard"
	"CandleGrid/internal/model"
)

type fakeService struct {
	lastParams dashboard.Params
	dash       *model.Dashboard
	err        error
}

func (f *fakeService) Render(p dashboard.Params) (*model.Dashboard, error) {
	f.lastParams = p
	return f.dash, f.err
}

func (f *fakeService) Catalog() []string {
	return []string{"AAPL", "MSFT"}
}

func (f *fakeService) MaxSelections() int { return 9 }

func doRequest(t *testing.T, svc Service, path string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewServer(svc)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestCatalog(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "/api/v1/catalog")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Tickers       []string `json:"tickers"`
		MaxSelections int      `json:"max_selections"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Tickers) != 2 || body.MaxSelections != 9 {
		t.Errorf("body = %+v", body)
	}
}

func TestDashboard_ParsesSelection(t *testing.T) {
	svc := &fakeService{dash: &model.Dashboard{Columns: 3}}
	rec := doRequest(t, svc, "/api/v1/dashboard?tickers=aapl,%20msft&start=2025-01-01&end=2025-06-01&sma=true&sma_period=50")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	p := svc.lastParams
	if len(p.Tickers) != 2 || p.Tickers[0] != "AAPL" || p.Tickers[1] != "MSFT" {
		t.Errorf("tickers = %v, want upper-cased trimmed [AAPL MSFT]", p.Tickers)
	}
	if p.Start.Format("2006-01-02") != "2025-01-01" || p.End.Format("2006-01-02") != "2025-06-01" {
		t.Errorf("dates = %v..%v", p.Start, p.End)
	}
	if !p.SMA || p.SMAPeriod != 50 {
		t.Errorf("sma params = %v/%d", p.SMA, p.SMAPeriod)
	}
	if !p.SR || p.SRWindow != 20 || p.SRLevels != 3 {
		t.Errorf("sr defaults not applied: %v/%d/%d", p.SR, p.SRWindow, p.SRLevels)
	}
}

func TestDashboard_BadDateRejected(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "/api/v1/dashboard?tickers=AAPL&start=not-a-date&end=2025-06-01")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDashboard_CodedErrorsMapTo400(t *testing.T) {
	svc := &fakeService{err: &dashboard.CodedError{
		Code:    dashboard.CodeInvalidDateRange,
		Message: "the start date must be before the end date",
	}}
	rec := doRequest(t, svc, "/api/v1/dashboard?tickers=AAPL&start=2025-06-01&end=2025-01-01")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "start date") {
		t.Errorf("body should carry the message: %s", rec.Body.String())
	}
}
