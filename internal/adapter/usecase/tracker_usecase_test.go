package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"trackpanel/internal/core/domain"
	"trackpanel/internal/core/port"
	"trackpanel/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUseCase(t *testing.T) (*TrackerUseCase, *mocks.MockTrackerRepository, *mocks.MockSampleQuota, *mocks.MockNotifier) {
	repo := mocks.NewMockTrackerRepository(t)
	quota := mocks.NewMockSampleQuota(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewTrackerUseCase(repo, quota, notifier, discardLogger())
	return svc, repo, quota, notifier
}

func waitFor(t *testing.T, done <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestRouteClickExpandsMacros(t *testing.T) {
	svc, repo, _, _ := newTestUseCase(t)

	camp := &domain.Campaign{
		CampaignID: 42,
		DefaultURL: "https://adv.example.com/in?c={click_id}&camp={camp_id}&s={source}",
	}
	repo.EXPECT().FindCampaignByRef(mock.Anything, "42").Return(camp, nil)

	logged := make(chan *domain.Click, 1)
	repo.EXPECT().
		CreateClick(mock.Anything, mock.AnythingOfType("*domain.Click")).
		Run(func(ctx context.Context, click *domain.Click) { logged <- click }).
		Return(nil)

	dest, err := svc.RouteClick(context.Background(), port.ClickRequest{
		CampaignRef: "42",
		ClickID:     "ck-1",
		PublisherID: "7",
		Source:      "sub-a",
	})
	if err != nil {
		t.Fatalf("RouteClick error: %v", err)
	}
	want := "https://adv.example.com/in?c=ck-1&camp=42&s=sub-a"
	if dest != want {
		t.Fatalf("destination = %q, want %q", dest, want)
	}

	select {
	case click := <-logged:
		if click.ClickID != "ck-1" || click.CampaignID != 42 || click.PublisherID != "7" {
			t.Fatalf("logged click = %+v", click)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("click was never logged")
	}
}

func TestRouteClickGeneratesMissingClickID(t *testing.T) {
	for _, inbound := range []string{"", "{click_id}", "%7Bclick_id%7D"} {
		t.Run(fmt.Sprintf("inbound %q", inbound), func(t *testing.T) {
			svc, repo, _, _ := newTestUseCase(t)

			camp := &domain.Campaign{CampaignID: 42, DefaultURL: "https://x/?c={click_id}"}
			repo.EXPECT().FindCampaignByRef(mock.Anything, "42").Return(camp, nil)

			done := make(chan struct{})
			repo.EXPECT().
				CreateClick(mock.Anything, mock.AnythingOfType("*domain.Click")).
				Run(func(ctx context.Context, click *domain.Click) {
					if click.ClickID == "" || strings.ContainsAny(click.ClickID, "{}%") {
						t.Errorf("click id not regenerated: %q", click.ClickID)
					}
					close(done)
				}).
				Return(nil)

			dest, err := svc.RouteClick(context.Background(), port.ClickRequest{
				CampaignRef: "42",
				ClickID:     inbound,
			})
			if err != nil {
				t.Fatalf("RouteClick error: %v", err)
			}
			if strings.ContainsAny(dest, "{}") {
				t.Fatalf("destination still carries a placeholder: %q", dest)
			}
			waitFor(t, done, "click logging")
		})
	}
}

func TestRouteClickErrors(t *testing.T) {
	t.Run("unknown campaign", func(t *testing.T) {
		svc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().FindCampaignByRef(mock.Anything, "404").Return(nil, nil)

		_, err := svc.RouteClick(context.Background(), port.ClickRequest{CampaignRef: "404"})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("no destination", func(t *testing.T) {
		svc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().FindCampaignByRef(mock.Anything, "42").
			Return(&domain.Campaign{CampaignID: 42}, nil)

		_, err := svc.RouteClick(context.Background(), port.ClickRequest{CampaignRef: "42"})
		if !errors.Is(err, domain.ErrNoDestination) {
			t.Fatalf("expected ErrNoDestination, got %v", err)
		}
	})
}

func TestRecordConversionValidation(t *testing.T) {
	t.Run("missing click_id", func(t *testing.T) {
		svc, _, _, _ := newTestUseCase(t)
		_, err := svc.RecordConversion(context.Background(), port.ConversionRequest{})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("unknown click", func(t *testing.T) {
		svc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().FindClickByID(mock.Anything, "ghost").Return(nil, nil)

		_, err := svc.RecordConversion(context.Background(), port.ConversionRequest{ClickID: "ghost"})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRecordConversionNoRulesApproved(t *testing.T) {
	svc, repo, _, _ := newTestUseCase(t)

	click := &domain.Click{ClickID: "ck-1", CampaignID: 11, Source: "sub-a"}
	repo.EXPECT().FindClickByID(mock.Anything, "ck-1").Return(click, nil)
	repo.EXPECT().FindConversionByClickID(mock.Anything, "ck-1").Return(nil, nil)
	repo.EXPECT().FindCampaignByRef(mock.Anything, "11").
		Return(&domain.Campaign{CampaignID: 11}, nil)

	var created *domain.Conversion
	repo.EXPECT().
		CreateConversion(mock.Anything, mock.AnythingOfType("*domain.Conversion")).
		Run(func(ctx context.Context, conv *domain.Conversion) { created = conv }).
		Return(nil)
	repo.EXPECT().GetPostbackConfig(mock.Anything).Return(nil, nil)

	res, err := svc.RecordConversion(context.Background(), port.ConversionRequest{
		ClickID: "ck-1",
		Payout:  "2.50",
	})
	if err != nil {
		t.Fatalf("RecordConversion error: %v", err)
	}
	if res.Status != domain.StatusApproved || res.Duplicate {
		t.Fatalf("result = %+v, want approved non-duplicate", res)
	}
	if created.Status != domain.StatusApproved || created.OriginalStatus != domain.StatusApproved {
		t.Fatalf("stored statuses = %q/%q, want approved/approved", created.Status, created.OriginalStatus)
	}
	if created.Payout != 2.5 || created.CampaignID != 11 {
		t.Fatalf("stored conversion = %+v", created)
	}
}

func TestRecordConversionPercentageDraw(t *testing.T) {
	cases := []struct {
		name string
		draw float64
		want domain.ConversionStatus
	}{
		{"draw under value samples", 0.2, domain.StatusSampled},
		{"draw over value approves", 0.9, domain.StatusApproved},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, _, _ := newTestUseCase(t)
			svc.randFloat = func() float64 { return tc.draw }

			click := &domain.Click{ClickID: "ck-1", CampaignID: 11, PublisherID: "2", Source: "sub-a"}
			camp := &domain.Campaign{
				CampaignID: 11,
				Rules:      []domain.SamplingRule{{PublisherID: "2", Mode: domain.SamplingPercentage, Value: 50}},
			}
			pub := &domain.Publisher{ID: 2}

			repo.EXPECT().FindClickByID(mock.Anything, "ck-1").Return(click, nil)
			repo.EXPECT().FindConversionByClickID(mock.Anything, "ck-1").Return(nil, nil)
			repo.EXPECT().FindCampaignByRef(mock.Anything, "11").Return(camp, nil)
			repo.EXPECT().FindPublisherByRef(mock.Anything, "2").Return(pub, nil)
			repo.EXPECT().CreateConversion(mock.Anything, mock.AnythingOfType("*domain.Conversion")).Return(nil)
			repo.EXPECT().GetPostbackConfig(mock.Anything).Return(nil, nil)

			res, err := svc.RecordConversion(context.Background(), port.ConversionRequest{ClickID: "ck-1"})
			if err != nil {
				t.Fatalf("RecordConversion error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("status = %q, want %q", res.Status, tc.want)
			}
		})
	}
}

func TestRecordConversionFixedQuota(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)

	setup := func(t *testing.T) (*TrackerUseCase, *mocks.MockTrackerRepository, *mocks.MockSampleQuota) {
		svc, repo, quota, _ := newTestUseCase(t)
		svc.now = func() time.Time { return now }

		click := &domain.Click{ClickID: "ck-1", CampaignID: 11, PublisherID: "2", Source: "sub-a"}
		camp := &domain.Campaign{
			CampaignID: 11,
			Rules:      []domain.SamplingRule{{PublisherID: "2", Mode: domain.SamplingFixed, Value: 5}},
		}
		repo.EXPECT().FindClickByID(mock.Anything, "ck-1").Return(click, nil)
		repo.EXPECT().FindConversionByClickID(mock.Anything, "ck-1").Return(nil, nil)
		repo.EXPECT().FindCampaignByRef(mock.Anything, "11").Return(camp, nil)
		repo.EXPECT().FindPublisherByRef(mock.Anything, "2").Return(&domain.Publisher{ID: 2}, nil)
		repo.EXPECT().CreateConversion(mock.Anything, mock.AnythingOfType("*domain.Conversion")).Return(nil)
		repo.EXPECT().GetPostbackConfig(mock.Anything).Return(nil, nil)
		return svc, repo, quota
	}

	wantKey := port.QuotaKey{CampaignID: 11, PublisherID: "2", Day: "2025-03-10"}

	t.Run("under cap samples", func(t *testing.T) {
		svc, _, quota := setup(t)
		quota.EXPECT().Acquire(mock.Anything, wantKey, int64(5), mock.Anything).Return(true, nil)

		res, err := svc.RecordConversion(context.Background(), port.ConversionRequest{ClickID: "ck-1"})
		if err != nil {
			t.Fatalf("RecordConversion error: %v", err)
		}
		if res.Status != domain.StatusSampled {
			t.Fatalf("status = %q, want sampled", res.Status)
		}
	})

	t.Run("cap reached approves", func(t *testing.T) {
		svc, _, quota := setup(t)
		quota.EXPECT().Acquire(mock.Anything, wantKey, int64(5), mock.Anything).Return(false, nil)

		res, err := svc.RecordConversion(context.Background(), port.ConversionRequest{ClickID: "ck-1"})
		if err != nil {
			t.Fatalf("RecordConversion error: %v", err)
		}
		if res.Status != domain.StatusApproved {
			t.Fatalf("status = %q, want approved", res.Status)
		}
	})

	t.Run("quota backend error fails open", func(t *testing.T) {
		svc, _, quota := setup(t)
		quota.EXPECT().Acquire(mock.Anything, wantKey, int64(5), mock.Anything).
			Return(false, errors.New("redis down"))

		res, err := svc.RecordConversion(context.Background(), port.ConversionRequest{ClickID: "ck-1"})
		if err != nil {
			t.Fatalf("RecordConversion error: %v", err)
		}
		if res.Status != domain.StatusApproved {
			t.Fatalf("status = %q, want approved on quota failure", res.Status)
		}
	})
}

func TestRecordConversionDuplicate(t *testing.T) {
	t.Run("existing conversion found", func(t *testing.T) {
		svc, repo, _, _ := newTestUseCase(t)

		click := &domain.Click{ClickID: "ck-1", CampaignID: 11}
		repo.EXPECT().FindClickByID(mock.Anything, "ck-1").Return(click, nil)
		repo.EXPECT().FindConversionByClickID(mock.Anything, "ck-1").
			Return(&domain.Conversion{ClickID: "ck-1", Status: domain.StatusSampled}, nil)

		res, err := svc.RecordConversion(context.Background(), port.ConversionRequest{ClickID: "ck-1"})
		if err != nil {
			t.Fatalf("RecordConversion error: %v", err)
		}
		if !res.Duplicate || res.Status != domain.StatusSampled {
			t.Fatalf("result = %+v, want duplicate with original status", res)
		}
	})

	t.Run("insert race collapses to one row", func(t *testing.T) {
		svc, repo, _, _ := newTestUseCase(t)

		click := &domain.Click{ClickID: "ck-1", CampaignID: 11}
		repo.EXPECT().FindClickByID(mock.Anything, "ck-1").Return(click, nil)
		repo.EXPECT().FindConversionByClickID(mock.Anything, "ck-1").Return(nil, nil)
		repo.EXPECT().FindCampaignByRef(mock.Anything, "11").
			Return(&domain.Campaign{CampaignID: 11}, nil)
		repo.EXPECT().CreateConversion(mock.Anything, mock.AnythingOfType("*domain.Conversion")).
			Return(fmt.Errorf("insert: %w", domain.ErrDuplicate))

		res, err := svc.RecordConversion(context.Background(), port.ConversionRequest{ClickID: "ck-1"})
		if err != nil {
			t.Fatalf("expected idempotent success, got %v", err)
		}
		if !res.Duplicate {
			t.Fatalf("result = %+v, want duplicate", res)
		}
	})
}

func TestRecordConversionNotifications(t *testing.T) {
	run := func(t *testing.T, draw float64, wantURLs []string) {
		svc, repo, _, notifier := newTestUseCase(t)
		svc.randFloat = func() float64 { return draw }

		click := &domain.Click{ClickID: "ck-1", CampaignID: 11, PublisherID: "2", Source: "sub-a"}
		camp := &domain.Campaign{
			CampaignID: 11,
			Rules:      []domain.SamplingRule{{Mode: domain.SamplingPercentage, Value: 50}},
		}
		pub := &domain.Publisher{ID: 2, PostbackURL: "https://pub.example.com/pb?c={click_id}"}

		repo.EXPECT().FindClickByID(mock.Anything, "ck-1").Return(click, nil)
		repo.EXPECT().FindConversionByClickID(mock.Anything, "ck-1").Return(nil, nil)
		repo.EXPECT().FindCampaignByRef(mock.Anything, "11").Return(camp, nil)
		repo.EXPECT().FindPublisherByRef(mock.Anything, "2").Return(pub, nil)
		repo.EXPECT().CreateConversion(mock.Anything, mock.AnythingOfType("*domain.Conversion")).Return(nil)
		repo.EXPECT().GetPostbackConfig(mock.Anything).
			Return(&domain.PostbackConfig{URL: "https://up.example.com/pb?c={click_id}&p={payout}"}, nil)

		urls := make(chan string, len(wantURLs))
		for range wantURLs {
			notifier.EXPECT().
				Deliver(mock.Anything, mock.AnythingOfType("string")).
				Run(func(ctx context.Context, url string) { urls <- url }).
				Return(nil).
				Once()
		}

		if _, err := svc.RecordConversion(context.Background(), port.ConversionRequest{ClickID: "ck-1", Payout: "3"}); err != nil {
			t.Fatalf("RecordConversion error: %v", err)
		}

		got := make(map[string]bool, len(wantURLs))
		for range wantURLs {
			select {
			case u := <-urls:
				got[u] = true
			case <-time.After(3 * time.Second):
				t.Fatalf("missing postback, delivered so far: %v", got)
			}
		}
		for _, u := range wantURLs {
			if !got[u] {
				t.Fatalf("expected postback to %q, delivered: %v", u, got)
			}
		}
	}

	t.Run("approved fires upstream and publisher", func(t *testing.T) {
		run(t, 0.9, []string{
			"https://up.example.com/pb?c=ck-1&p=3",
			"https://pub.example.com/pb?c=ck-1",
		})
	})

	t.Run("sampled withholds publisher postback", func(t *testing.T) {
		run(t, 0.2, []string{
			"https://up.example.com/pb?c=ck-1&p=3",
		})
	})
}

func TestReprocessCampaign(t *testing.T) {
	svc, repo, _, _ := newTestUseCase(t)
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	camp := &domain.Campaign{
		CampaignID: 11,
		Rules:      []domain.SamplingRule{{PublisherID: "2", Mode: domain.SamplingPercentage, Value: 50}},
	}
	convs := []domain.Conversion{
		{ID: 1, PublisherID: "2", Source: "a", Status: domain.StatusApproved, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 2, PublisherID: "2", Source: "a", Status: domain.StatusApproved, CreatedAt: now.Add(-time.Hour)},
		{ID: 3, PublisherID: "2", Source: "a", Status: domain.StatusApproved, CreatedAt: now},
	}

	repo.EXPECT().FindCampaignByRef(mock.Anything, "11").Return(camp, nil)
	repo.EXPECT().ListConversionsByCampaign(mock.Anything, int64(11)).Return(convs, nil)
	repo.EXPECT().FindPublisherByRef(mock.Anything, "2").Return(&domain.Publisher{ID: 2}, nil).Once()
	// floor(3*0.5) = 1: only the earliest flips to sampled.
	repo.EXPECT().UpdateConversionStatus(mock.Anything, int64(1), domain.StatusSampled).Return(nil)

	res, err := svc.ReprocessCampaign(context.Background(), "11")
	if err != nil {
		t.Fatalf("ReprocessCampaign error: %v", err)
	}
	if res.Total != 3 || res.Updated != 1 {
		t.Fatalf("result = %+v, want total 3 updated 1", res)
	}
}

func TestReprocessCampaignSyncsFixedQuota(t *testing.T) {
	svc, repo, quota, _ := newTestUseCase(t)
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	camp := &domain.Campaign{
		CampaignID: 11,
		Rules:      []domain.SamplingRule{{PublisherID: "2", Mode: domain.SamplingFixed, Value: 2}},
	}
	// Two conversions today, one yesterday. The cap admits both of today's.
	convs := []domain.Conversion{
		{ID: 1, PublisherID: "2", Source: "a", Status: domain.StatusApproved, CreatedAt: now.AddDate(0, 0, -1)},
		{ID: 2, PublisherID: "2", Source: "a", Status: domain.StatusApproved, CreatedAt: now.Add(-time.Hour)},
		{ID: 3, PublisherID: "2", Source: "a", Status: domain.StatusApproved, CreatedAt: now},
	}

	repo.EXPECT().FindCampaignByRef(mock.Anything, "11").Return(camp, nil)
	repo.EXPECT().ListConversionsByCampaign(mock.Anything, int64(11)).Return(convs, nil)
	repo.EXPECT().FindPublisherByRef(mock.Anything, "2").Return(&domain.Publisher{ID: 2}, nil).Once()
	repo.EXPECT().UpdateConversionStatus(mock.Anything, mock.AnythingOfType("int64"), domain.StatusSampled).Return(nil).Times(3)

	wantKey := port.QuotaKey{CampaignID: 11, PublisherID: "2", Day: "2025-03-10"}
	quota.EXPECT().Set(mock.Anything, wantKey, int64(2), mock.Anything).Return(nil)

	res, err := svc.ReprocessCampaign(context.Background(), "11")
	if err != nil {
		t.Fatalf("ReprocessCampaign error: %v", err)
	}
	if res.Updated != 3 {
		t.Fatalf("updated = %d, want 3", res.Updated)
	}
}

func TestReprocessCampaignNotFound(t *testing.T) {
	svc, repo, _, _ := newTestUseCase(t)
	repo.EXPECT().FindCampaignByRef(mock.Anything, "404").Return(nil, nil)

	_, err := svc.ReprocessCampaign(context.Background(), "404")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateSamplingRules(t *testing.T) {
	svc, repo, _, _ := newTestUseCase(t)

	camp := &domain.Campaign{CampaignID: 11}
	rules := []domain.SamplingRule{{PublisherID: "2", Mode: domain.SamplingPercentage, Value: 25}}
	updated := *camp
	updated.Rules = rules

	repo.EXPECT().FindCampaignByRef(mock.Anything, "11").Return(camp, nil).Once()
	repo.EXPECT().UpdateCampaignRules(mock.Anything, int64(11), rules).Return(nil)
	// The follow-up reprocess re-reads the campaign with the new rules.
	repo.EXPECT().FindCampaignByRef(mock.Anything, "11").Return(&updated, nil).Once()
	repo.EXPECT().ListConversionsByCampaign(mock.Anything, int64(11)).Return(nil, nil)

	res, err := svc.UpdateSamplingRules(context.Background(), "11", rules)
	if err != nil {
		t.Fatalf("UpdateSamplingRules error: %v", err)
	}
	if res.Total != 0 || res.Updated != 0 {
		t.Fatalf("result = %+v, want empty run", res)
	}
}
