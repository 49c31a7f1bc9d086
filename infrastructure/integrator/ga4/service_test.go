package ga4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ga4domain "github.com/vfg2006/backoffice-metrics-sync/infrastructure/integrator/ga4/domain"
	"github.com/vfg2006/backoffice-metrics-sync/infrastructure/integrator/ga4/mocks"
	"github.com/vfg2006/backoffice-metrics-sync/internal/config"
	"github.com/vfg2006/backoffice-metrics-sync/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		GA4: config.GA4{
			PropertyID:   "123456789",
			LookbackDays: 30,
		},
	}
}

func reportRow(dims []string, metrics []string) ga4domain.Row {
	row := ga4domain.Row{}
	for _, d := range dims {
		row.DimensionValues = append(row.DimensionValues, ga4domain.Value{Value: d})
	}
	for _, m := range metrics {
		row.MetricValues = append(row.MetricValues, ga4domain.Value{Value: m})
	}
	return row
}

// captureClient registra a requisição enviada e devolve a resposta fixa.
func captureClient(t *testing.T, ctrl *gomock.Controller, resp *ga4domain.RunReportResponse) (*mocks.MockClient, **ga4domain.RunReportRequest) {
	t.Helper()

	var captured *ga4domain.RunReportRequest
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		RunReport(gomock.Any()).
		DoAndReturn(func(req *ga4domain.RunReportRequest) (*ga4domain.RunReportResponse, error) {
			captured = req
			return resp, nil
		})

	return client, &captured
}

func TestGA4Integrator_Totals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Relatório com linha única popula os quatro agregados", func(t *testing.T) {
		resp := &ga4domain.RunReportResponse{
			Rows: []ga4domain.Row{
				reportRow(nil, []string{"1200", "1850", "0.6412", "5400"}),
			},
		}
		client, captured := captureClient(t, ctrl, resp)
		service := New(testConfig(), client)

		totals, err := service.Totals(30)

		require.NoError(t, err)
		assert.Equal(t, 1200, totals.Users)
		assert.Equal(t, 1850, totals.Sessions)
		assert.Equal(t, 0.6412, totals.EngagementRate)
		assert.Equal(t, 5400, totals.Pageviews)

		req := *captured
		assert.Equal(t, "123456789", req.Property)
		assert.Empty(t, req.Dimensions)
		assert.Equal(t, []ga4domain.Metric{
			{Name: "totalUsers"}, {Name: "sessions"}, {Name: "engagementRate"}, {Name: "screenPageViews"},
		}, req.Metrics)
		assert.Equal(t, []ga4domain.DateRange{{StartDate: "30daysAgo", EndDate: "today"}}, req.DateRanges)
	})

	t.Run("Relatório sem linhas resulta em agregados zerados, não erro", func(t *testing.T) {
		client, _ := captureClient(t, ctrl, &ga4domain.RunReportResponse{})
		service := New(testConfig(), client)

		totals, err := service.Totals(30)

		require.NoError(t, err)
		assert.Equal(t, 0, totals.Users)
		assert.Equal(t, 0, totals.Sessions)
		assert.Equal(t, 0.0, totals.EngagementRate)
		assert.Equal(t, 0, totals.Pageviews)
	})
}

func TestGA4Integrator_DailySeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resp := &ga4domain.RunReportResponse{
		Rows: []ga4domain.Row{
			reportRow([]string{"20240314"}, []string{"40", "30"}),
			reportRow([]string{"20240315"}, []string{"55", "42"}),
		},
	}
	client, captured := captureClient(t, ctrl, resp)
	service := New(testConfig(), client)

	series, err := service.DailySeries(30)

	require.NoError(t, err)
	// Rótulo DD/MM derivado da dimensão YYYYMMDD, na ordem da API
	assert.Equal(t, []string{"14/03", "15/03"}, series.Labels)
	assert.Equal(t, []int{40, 55}, series.Sessions)
	assert.Equal(t, []int{30, 42}, series.Users)

	req := *captured
	assert.Equal(t, []ga4domain.Dimension{{Name: "date"}}, req.Dimensions)
	assert.Equal(t, []ga4domain.Metric{{Name: "sessions"}, {Name: "totalUsers"}}, req.Metrics)
	assert.Equal(t, int64(32), req.Limit)
	assert.Empty(t, req.OrderBys)
}

func TestGA4Integrator_TopPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resp := &ga4domain.RunReportResponse{
		Rows: []ga4domain.Row{
			reportRow([]string{"/"}, []string{"300"}),
			reportRow([]string{"/musica"}, []string{"120"}),
		},
	}
	client, captured := captureClient(t, ctrl, resp)
	service := New(testConfig(), client)

	pages, err := service.TopPages(30, 10)

	require.NoError(t, err)
	assert.Equal(t, []domain.PageView{
		{Path: "/", Views: 300},
		{Path: "/musica", Views: 120},
	}, pages)

	req := *captured
	assert.Equal(t, int64(10), req.Limit)
	require.Len(t, req.OrderBys, 1)
	assert.Equal(t, "screenPageViews", req.OrderBys[0].Metric.MetricName)
	assert.True(t, req.OrderBys[0].Desc)
}

func TestGA4Integrator_Rankings(t *testing.T) {
	// Cada ranking envia seu limite na própria consulta: a resposta nunca
	// excede o tamanho configurado.
	tests := []struct {
		name          string
		call          func(s *GA4Integrator) ([]domain.NamedCount, error)
		wantDimension string
		wantMetric    string
		wantLimit     int64
	}{
		{
			name:          "Países por usuários, limite 8",
			call:          func(s *GA4Integrator) ([]domain.NamedCount, error) { return s.TopCountries(30, 8) },
			wantDimension: "country",
			wantMetric:    "totalUsers",
			wantLimit:     8,
		},
		{
			name:          "Dispositivos por usuários, limite 5",
			call:          func(s *GA4Integrator) ([]domain.NamedCount, error) { return s.TopDevices(30, 5) },
			wantDimension: "deviceCategory",
			wantMetric:    "totalUsers",
			wantLimit:     5,
		},
		{
			name:          "Canais por sessões, limite 8",
			call:          func(s *GA4Integrator) ([]domain.NamedCount, error) { return s.TopChannels(30, 8) },
			wantDimension: "sessionDefaultChannelGroup",
			wantMetric:    "sessions",
			wantLimit:     8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			resp := &ga4domain.RunReportResponse{
				Rows: []ga4domain.Row{
					reportRow([]string{"primeiro"}, []string{"90"}),
					reportRow([]string{"segundo"}, []string{"10"}),
				},
			}
			client, captured := captureClient(t, ctrl, resp)
			service := New(testConfig(), client)

			pairs, err := tt.call(service)

			require.NoError(t, err)
			// Ordem da API preservada, sem reordenação no cliente
			assert.Equal(t, []domain.NamedCount{
				{Label: "primeiro", Count: 90},
				{Label: "segundo", Count: 10},
			}, pairs)

			req := *captured
			assert.Equal(t, []ga4domain.Dimension{{Name: tt.wantDimension}}, req.Dimensions)
			assert.Equal(t, []ga4domain.Metric{{Name: tt.wantMetric}}, req.Metrics)
			assert.Equal(t, tt.wantLimit, req.Limit)
			require.Len(t, req.OrderBys, 1)
			assert.Equal(t, tt.wantMetric, req.OrderBys[0].Metric.MetricName)
			assert.True(t, req.OrderBys[0].Desc)
		})
	}
}

func TestGA4Integrator_KeyEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resp := &ga4domain.RunReportResponse{
		Rows: []ga4domain.Row{
			reportRow([]string{"cta_click"}, []string{"210"}),
			reportRow([]string{"video_play"}, []string{"80"}),
		},
	}
	client, captured := captureClient(t, ctrl, resp)
	service := New(testConfig(), client)

	events, err := service.KeyEvents(30, 20)

	require.NoError(t, err)
	assert.Equal(t, []domain.EventCount{
		{Name: "cta_click", Count: 210},
		{Name: "video_play", Count: 80},
	}, events)

	req := *captured
	assert.Equal(t, int64(20), req.Limit)
	require.NotNil(t, req.DimensionFilter)
	require.NotNil(t, req.DimensionFilter.Filter.InListFilter)
	assert.Equal(t, "eventName", req.DimensionFilter.Filter.FieldName)
	assert.Equal(t, domain.TrackedKeyEvents, req.DimensionFilter.Filter.InListFilter.Values)
}

func TestGA4Integrator_CTABreakdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resp := &ga4domain.RunReportResponse{
		Rows: []ga4domain.Row{
			reportRow([]string{"release_spotify_click"}, []string{"42"}),
			reportRow([]string{"quick_gift_click"}, []string{"7"}),
			reportRow([]string{"valor_desconhecido"}, []string{"999"}),
		},
	}
	client, captured := captureClient(t, ctrl, resp)
	service := New(testConfig(), client)

	breakdown, err := service.CTABreakdown(30, 20)

	require.NoError(t, err)
	assert.True(t, breakdown.Available)
	assert.Equal(t, 42, breakdown.Counts["Spotify"])
	assert.Equal(t, 7, breakdown.Counts["Regalo"])
	// Valores fora da tabela de mapeamento são descartados
	assert.Len(t, breakdown.Counts, 6)
	assert.Equal(t, 49, breakdown.Total())

	req := *captured
	assert.Equal(t, []ga4domain.Dimension{{Name: "customEvent:cta_name"}}, req.Dimensions)
	require.NotNil(t, req.DimensionFilter)
	require.NotNil(t, req.DimensionFilter.Filter.StringFilter)
	assert.Equal(t, "eventName", req.DimensionFilter.Filter.FieldName)
	assert.Equal(t, "cta_click", req.DimensionFilter.Filter.StringFilter.Value)
	assert.Equal(t, "EXACT", req.DimensionFilter.Filter.StringFilter.MatchType)
}

func TestGA4Integrator_ErroDoClientePropaga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().RunReport(gomock.Any()).Return(nil, assert.AnError)
	service := New(testConfig(), client)

	totals, err := service.Totals(30)

	assert.Nil(t, totals)
	assert.ErrorIs(t, err, assert.AnError)
}
