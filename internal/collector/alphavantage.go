package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"CandleGrid/internal/model"
)

// AlphaVantageFetcher implements Fetcher using the Alpha Vantage
// TIME_SERIES_DAILY endpoint. Any provider with equivalent daily-bar
// semantics is substitutable behind the Fetcher interface.
type AlphaVantageFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAlphaVantageFetcher creates a new fetcher with optional proxy support.
func NewAlphaVantageFetcher(apiKey, proxyURL string) *AlphaVantageFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &AlphaVantageFetcher{
		BaseURL: "https://www.alphavantage.co",
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *AlphaVantageFetcher) Name() string { return "alphavantage" }

// avDay is one daily entry of the TIME_SERIES_DAILY response.
type avDay struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

type avResponse struct {
	ErrorMessage string           `json:"Error Message"`
	Note         string           `json:"Note"`
	Series       map[string]avDay `json:"Time Series (Daily)"`
}

func (f *AlphaVantageFetcher) FetchDailyBars(symbol string, start, end time.Time) ([]model.Bar, error) {
	endpoint := fmt.Sprintf("%s/query?function=TIME_SERIES_DAILY&symbol=%s&outputsize=full&apikey=%s",
		f.BaseURL, url.QueryEscape(symbol), url.QueryEscape(f.APIKey))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &FetchError{Provider: "alphavantage", Message: "request failed", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &FetchError{Provider: "alphavantage", Message: fmt.Sprintf("status %d, body: %s", resp.StatusCode, string(body))}
	}

	var avResp avResponse
	if err := json.NewDecoder(resp.Body).Decode(&avResp); err != nil {
		return nil, &FetchError{Provider: "alphavantage", Message: "decode response", Err: err}
	}
	if avResp.ErrorMessage != "" {
		return nil, &FetchError{Provider: "alphavantage", Message: avResp.ErrorMessage}
	}
	if avResp.Note != "" {
		// Rate-limit notes come back as HTTP 200.
		return nil, &FetchError{Provider: "alphavantage", Message: avResp.Note}
	}

	bars := make([]model.Bar, 0, len(avResp.Series))
	for day, entry := range avResp.Series {
		t, err := time.Parse("2006-01-02", day)
		if err != nil {
			continue
		}
		if t.Before(start) || t.After(end) {
			continue
		}
		bar, ok := entry.toBar(t)
		if !ok {
			continue
		}
		bars = append(bars, bar)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

func (d avDay) toBar(t time.Time) (model.Bar, bool) {
	o, err1 := strconv.ParseFloat(d.Open, 64)
	h, err2 := strconv.ParseFloat(d.High, 64)
	l, err3 := strconv.ParseFloat(d.Low, 64)
	c, err4 := strconv.ParseFloat(d.Close, 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return model.Bar{}, false
	}
	v, _ := strconv.ParseFloat(d.Volume, 64)
	return model.Bar{Date: t, Open: o, High: h, Low: l, Close: c, Volume: v}, true
}
