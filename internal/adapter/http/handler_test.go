package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"trackpanel/internal/core/domain"
	"trackpanel/internal/core/port"
	"trackpanel/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockTrackerUseCase) {
	svc := mocks.NewMockTrackerUseCase(t)
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return h, svc
}

func doRequest(h *Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestTrackClickRedirects(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().
		RouteClick(mock.Anything, mock.AnythingOfType("port.ClickRequest")).
		Return("https://adv.example.com/in?c=ck-1", nil)

	rec := doRequest(h, http.MethodGet, "/api/v1/track?camp_id=42&click_id=ck-1&source=sub-a", nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "https://adv.example.com/in?c=ck-1" {
		t.Fatalf("Location = %q", loc)
	}
}

func TestTrackClickParamMapping(t *testing.T) {
	h, svc := newTestHandler(t)

	var got port.ClickRequest
	svc.EXPECT().
		RouteClick(mock.Anything, mock.AnythingOfType("port.ClickRequest")).
		RunAndReturn(func(ctx context.Context, req port.ClickRequest) (string, error) {
			got = req
			return "https://x/", nil
		})

	// source_id is accepted as an alias when source is absent.
	doRequest(h, http.MethodGet, "/api/v1/track?camp_id=42&source_id=sub-b&publisher_id=7&gaid=g1", nil)
	if got.Source != "sub-b" || got.PublisherID != "7" || got.GAID != "g1" || got.CampaignRef != "42" {
		t.Fatalf("mapped request = %+v", got)
	}
}

func TestTrackClickErrors(t *testing.T) {
	cases := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{"missing camp_id", "/api/v1/track", nil, http.StatusBadRequest},
		{"unknown campaign", "/api/v1/track?camp_id=404", fmt.Errorf("campaign: %w", domain.ErrNotFound), http.StatusNotFound},
		{"no destination", "/api/v1/track?camp_id=42", fmt.Errorf("campaign: %w", domain.ErrNoDestination), http.StatusBadRequest},
		{"internal error", "/api/v1/track?camp_id=42", fmt.Errorf("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, svc := newTestHandler(t)
			if tc.err != nil {
				svc.EXPECT().
					RouteClick(mock.Anything, mock.AnythingOfType("port.ClickRequest")).
					Return("", tc.err)
			}
			rec := doRequest(h, http.MethodGet, tc.target, nil)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestConversionEndpoint(t *testing.T) {
	t.Run("recorded", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.EXPECT().
			RecordConversion(mock.Anything, port.ConversionRequest{ClickID: "ck-1", Payout: "2.5"}).
			Return(&port.ConversionResult{Status: domain.StatusApproved}, nil)

		rec := doRequest(h, http.MethodGet, "/api/v1/track/conversion?click_id=ck-1&payout=2.5", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var body conversionResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !body.Success || body.Status != "approved" || body.Message != "Conversion recorded" {
			t.Fatalf("body = %+v", body)
		}
	})

	t.Run("duplicate reads like success", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.EXPECT().
			RecordConversion(mock.Anything, mock.AnythingOfType("port.ConversionRequest")).
			Return(&port.ConversionResult{Status: domain.StatusSampled, Duplicate: true}, nil)

		rec := doRequest(h, http.MethodGet, "/api/v1/track/conversion?click_id=ck-1", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var body conversionResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
		if body.Message != "Conversion already recorded" || body.Status != "sampled" {
			t.Fatalf("body = %+v", body)
		}
	})

	t.Run("status mapping", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
		}{
			{"missing click_id", fmt.Errorf("x: %w", domain.ErrInvalidRequest), http.StatusBadRequest},
			{"unknown click", fmt.Errorf("x: %w", domain.ErrNotFound), http.StatusNotFound},
			{"internal", fmt.Errorf("db down"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				h, svc := newTestHandler(t)
				svc.EXPECT().
					RecordConversion(mock.Anything, mock.AnythingOfType("port.ConversionRequest")).
					Return(nil, tc.err)

				rec := doRequest(h, http.MethodGet, "/api/v1/track/conversion?click_id=x", nil)
				if rec.Code != tc.want {
					t.Fatalf("status = %d, want %d", rec.Code, tc.want)
				}
			})
		}
	})
}

func TestReprocessEndpoint(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().
		ReprocessCampaign(mock.Anything, "11").
		Return(&port.ReprocessResult{Total: 20, Updated: 4}, nil)

	rec := doRequest(h, http.MethodPost, "/api/v1/campaigns/11/reprocess-sampling", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var res port.ReprocessResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Total != 20 || res.Updated != 4 {
		t.Fatalf("result = %+v", res)
	}
}

func TestReprocessEndpointNotFound(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().
		ReprocessCampaign(mock.Anything, "404").
		Return(nil, fmt.Errorf("campaign: %w", domain.ErrNotFound))

	rec := doRequest(h, http.MethodPost, "/api/v1/campaigns/404/reprocess-sampling", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateSamplingEndpoint(t *testing.T) {
	h, svc := newTestHandler(t)

	rules := []domain.SamplingRule{{
		PublisherID: "2",
		SubIDsMode:  domain.SubIDsInclude,
		SubIDs:      []string{"a"},
		Mode:        domain.SamplingPercentage,
		Value:       50,
	}}
	svc.EXPECT().
		UpdateSamplingRules(mock.Anything, "11", rules).
		Return(&port.ReprocessResult{Total: 2, Updated: 1}, nil)

	body := `{"sampling":[{"publisherId":"2","subIdsType":"Include","subIds":["a"],"samplingType":"percentage","samplingValue":50}]}`
	rec := doRequest(h, http.MethodPut, "/api/v1/campaigns/11/sampling", strings.NewReader(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateSamplingEndpointBadJSON(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doRequest(h, http.MethodPut, "/api/v1/campaigns/11/sampling", strings.NewReader("{"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPostbackSettings(t *testing.T) {
	t.Run("get unconfigured", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.EXPECT().GetPostbackConfig(mock.Anything).Return(nil, nil)

		rec := doRequest(h, http.MethodGet, "/api/v1/postback", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var body postbackBody
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
		if body.URL != "" {
			t.Fatalf("url = %q, want empty", body.URL)
		}
	})

	t.Run("save", func(t *testing.T) {
		h, svc := newTestHandler(t)
		svc.EXPECT().
			SavePostbackConfig(mock.Anything, "https://up.example.com/pb?c={click_id}").
			Return(&domain.PostbackConfig{URL: "https://up.example.com/pb?c={click_id}"}, nil)

		rec := doRequest(h, http.MethodPost, "/api/v1/postback",
			strings.NewReader(`{"url":"https://up.example.com/pb?c={click_id}"}`))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})
}

func TestStatsOverview(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().
		GetStats(mock.Anything, mock.AnythingOfType("port.StatsReq")).
		Return(&port.StatsResp{Clicks: 100, Conversions: 10, Sampled: 2, Approved: 8, Payout: 12.5}, nil)

	rec := doRequest(h, http.MethodGet, "/api/v1/stats/overview", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp port.StatsResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Clicks != 100 || resp.Sampled != 2 {
		t.Fatalf("stats = %+v", resp)
	}
}

func TestStatsOverviewBadParams(t *testing.T) {
	h, _ := newTestHandler(t)
	for _, target := range []string{
		"/api/v1/stats/overview?from=yesterday",
		"/api/v1/stats/overview?campaign_id=abc",
	} {
		if rec := doRequest(h, http.MethodGet, target, nil); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestRealIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1"}, "10.0.0.2:555", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": "5.6.7.8"}, "10.0.0.2:555", "5.6.7.8"},
		{"socket peer", nil, "9.9.9.9:1234", "9.9.9.9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			if got := realIP(req); got != tc.want {
				t.Fatalf("realIP = %q, want %q", got, tc.want)
			}
		})
	}
}
