package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"CandleGrid/internal/dashboard"
	"CandleGrid/internal/model"
)

type dashboardInput struct {
	Tickers   string `query:"tickers" example:"AAPL,MSFT,GOOGL" doc:"Comma-separated tickers from the catalog; order sets grid position"`
	Start     string `query:"start" example:"2025-01-01" doc:"Range start, YYYY-MM-DD"`
	End       string `query:"end" example:"2025-12-31" doc:"Range end, YYYY-MM-DD (must be after start)"`
	SMA       bool   `query:"sma" doc:"Attach a trailing simple-moving-average overlay"`
	SMAPeriod int    `query:"sma_period" default:"20" doc:"SMA period, 10-200"`
	SR        bool   `query:"sr" default:"true" doc:"Attach support/resistance level annotations"`
	SRWindow  int    `query:"sr_window" default:"20" doc:"Extrema detection radius, 5-50; smaller means more levels"`
	SRLevels  int    `query:"sr_levels" default:"3" doc:"Levels to keep per side, 1-10"`
	Height    int    `query:"height" default:"300" doc:"Chart height hint"`
}

type dashboardOutput struct {
	Body *model.Dashboard
}

type catalogOutput struct {
	Body struct {
		Tickers       []string `json:"tickers"`
		MaxSelections int      `json:"max_selections"`
	}
}

func registerHandlers(api huma.API, svc Service) {
	type healthOutput struct {
		Body struct {
			Status string `json:"status"`
		}
	}
	huma.Register(api, huma.Operation{OperationID: "health", Method: http.MethodGet, Path: "/health", Summary: "Health check", Tags: []string{"Health"}},
		func(ctx context.Context, input *struct{}) (*healthOutput, error) {
			out := &healthOutput{}
			out.Body.Status = "ok"
			return out, nil
		})

	huma.Register(api, huma.Operation{OperationID: "get-catalog", Method: http.MethodGet, Path: "/api/v1/catalog", Summary: "List selectable tickers", Tags: []string{"Dashboard"}},
		func(ctx context.Context, input *struct{}) (*catalogOutput, error) {
			out := &catalogOutput{}
			out.Body.Tickers = svc.Catalog()
			out.Body.MaxSelections = svc.MaxSelections()
			return out, nil
		})

	huma.Register(api, huma.Operation{OperationID: "render-dashboard", Method: http.MethodGet, Path: "/api/v1/dashboard", Summary: "Render the candlestick dashboard grid", Tags: []string{"Dashboard"}},
		func(ctx context.Context, input *dashboardInput) (*dashboardOutput, error) {
			params, err := toParams(input)
			if err != nil {
				return nil, err
			}
			dash, err := svc.Render(params)
			if err != nil {
				return nil, mapErr(err)
			}
			return &dashboardOutput{Body: dash}, nil
		})
}

func toParams(in *dashboardInput) (dashboard.Params, error) {
	var p dashboard.Params

	for _, raw := range strings.Split(in.Tickers, ",") {
		t := strings.ToUpper(strings.TrimSpace(raw))
		if t != "" {
			p.Tickers = append(p.Tickers, t)
		}
	}

	var err error
	if p.Start, err = time.Parse("2006-01-02", in.Start); err != nil {
		return p, huma.Error400BadRequest("start must be a YYYY-MM-DD date")
	}
	if p.End, err = time.Parse("2006-01-02", in.End); err != nil {
		return p, huma.Error400BadRequest("end must be a YYYY-MM-DD date")
	}

	p.SMA = in.SMA
	p.SMAPeriod = in.SMAPeriod
	p.SR = in.SR
	p.SRWindow = in.SRWindow
	p.SRLevels = in.SRLevels
	p.Height = in.Height
	return p, nil
}
