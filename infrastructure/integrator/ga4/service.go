package ga4

import (
	"fmt"

	"github.com/sirupsen/logrus"
	ga4domain "github.com/vfg2006/backoffice-metrics-sync/infrastructure/integrator/ga4/domain"
	"github.com/vfg2006/backoffice-metrics-sync/infrastructure/integrator/ga4/ga4client"
	"github.com/vfg2006/backoffice-metrics-sync/internal/config"
	"github.com/vfg2006/backoffice-metrics-sync/internal/domain"
)

// defaultRowLimit é o limite aplicado quando a consulta não define um.
const defaultRowLimit = 100

type GA4Integrator struct {
	cfg    *config.Config
	Client ga4client.Client
}

func New(cfg *config.Config, client ga4client.Client) *GA4Integrator {
	return &GA4Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// reportQuery descreve uma consulta em termos de nomes de dimensões e
// métricas; a janela é sempre "N dias atrás" até hoje.
type reportQuery struct {
	dimensions      []string
	metrics         []string
	days            int
	orderMetricDesc string
	limit           int64
	dimensionFilter *ga4domain.FilterExpression
}

func (s *GA4Integrator) runReport(q reportQuery) (*ga4domain.RunReportResponse, error) {
	limit := q.limit
	if limit == 0 {
		limit = defaultRowLimit
	}

	req := &ga4domain.RunReportRequest{
		Property: s.cfg.GA4.PropertyID,
		DateRanges: []ga4domain.DateRange{
			{StartDate: fmt.Sprintf("%ddaysAgo", q.days), EndDate: "today"},
		},
		Limit:           limit,
		DimensionFilter: q.dimensionFilter,
	}

	for _, name := range q.dimensions {
		req.Dimensions = append(req.Dimensions, ga4domain.Dimension{Name: name})
	}
	for _, name := range q.metrics {
		req.Metrics = append(req.Metrics, ga4domain.Metric{Name: name})
	}

	if q.orderMetricDesc != "" {
		req.OrderBys = []ga4domain.OrderBy{
			{Metric: &ga4domain.MetricOrderBy{MetricName: q.orderMetricDesc}, Desc: true},
		}
	}

	return s.Client.RunReport(req)
}

// Totals busca os agregados do período sem quebra por dimensão.
// A API retorna uma única linha; sem linhas, todos os campos ficam em zero.
func (s *GA4Integrator) Totals(days int) (*domain.Totals, error) {
	resp, err := s.runReport(reportQuery{
		metrics: []string{"totalUsers", "sessions", "engagementRate", "screenPageViews"},
		days:    days,
	})
	if err != nil {
		logrus.WithError(err).Error("ga4: falha ao buscar totais agregados")
		return nil, err
	}

	return &domain.Totals{
		Users:          firstInt(resp, 0),
		Sessions:       firstInt(resp, 1),
		EngagementRate: firstFloat(resp, 2),
		Pageviews:      firstInt(resp, 3),
	}, nil
}

// DailySeries busca sessões e usuários por data, na ordem retornada pela
// API (sem reordenação no cliente).
func (s *GA4Integrator) DailySeries(days int) (*domain.DailySeries, error) {
	resp, err := s.runReport(reportQuery{
		dimensions: []string{"date"},
		metrics:    []string{"sessions", "totalUsers"},
		days:       days,
		limit:      int64(days + 2),
	})
	if err != nil {
		logrus.WithError(err).Error("ga4: falha ao buscar série diária")
		return nil, err
	}

	return dailySeries(resp), nil
}

func (s *GA4Integrator) TopPages(days, limit int) ([]domain.PageView, error) {
	resp, err := s.runReport(reportQuery{
		dimensions:      []string{"pagePath"},
		metrics:         []string{"screenPageViews"},
		days:            days,
		orderMetricDesc: "screenPageViews",
		limit:           int64(limit),
	})
	if err != nil {
		logrus.WithError(err).Error("ga4: falha ao buscar páginas mais vistas")
		return nil, err
	}

	pages := make([]domain.PageView, 0, len(resp.Rows))
	for _, pair := range namedPairs(resp) {
		pages = append(pages, domain.PageView{Path: pair.Label, Views: pair.Count})
	}

	return pages, nil
}

func (s *GA4Integrator) TopCountries(days, limit int) ([]domain.NamedCount, error) {
	return s.topByMetric("country", "totalUsers", days, limit)
}

func (s *GA4Integrator) TopDevices(days, limit int) ([]domain.NamedCount, error) {
	return s.topByMetric("deviceCategory", "totalUsers", days, limit)
}

func (s *GA4Integrator) TopChannels(days, limit int) ([]domain.NamedCount, error) {
	return s.topByMetric("sessionDefaultChannelGroup", "sessions", days, limit)
}

func (s *GA4Integrator) topByMetric(dimension, metric string, days, limit int) ([]domain.NamedCount, error) {
	resp, err := s.runReport(reportQuery{
		dimensions:      []string{dimension},
		metrics:         []string{metric},
		days:            days,
		orderMetricDesc: metric,
		limit:           int64(limit),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"dimension": dimension,
			"error":     err.Error(),
		}).Error("ga4: falha ao buscar ranking por dimensão")
		return nil, err
	}

	return namedPairs(resp), nil
}

// KeyEvents busca a contagem dos eventos nomeados rastreados pelo site.
func (s *GA4Integrator) KeyEvents(days, limit int) ([]domain.EventCount, error) {
	resp, err := s.runReport(reportQuery{
		dimensions:      []string{"eventName"},
		metrics:         []string{"eventCount"},
		days:            days,
		orderMetricDesc: "eventCount",
		limit:           int64(limit),
		dimensionFilter: &ga4domain.FilterExpression{
			Filter: &ga4domain.Filter{
				FieldName:    "eventName",
				InListFilter: &ga4domain.InListFilter{Values: domain.TrackedKeyEvents},
			},
		},
	})
	if err != nil {
		logrus.WithError(err).Error("ga4: falha ao buscar key events")
		return nil, err
	}

	events := make([]domain.EventCount, 0, len(resp.Rows))
	for _, pair := range namedPairs(resp) {
		events = append(events, domain.EventCount{Name: pair.Label, Count: pair.Count})
	}

	return events, nil
}

// CTABreakdown consulta a dimensão customizada customEvent:cta_name,
// filtrada para o evento cta_click. A dimensão só existe em propriedades
// onde foi registrada manualmente: o chamador decide o que fazer com o erro.
func (s *GA4Integrator) CTABreakdown(days, limit int) (*domain.CTABreakdown, error) {
	resp, err := s.runReport(reportQuery{
		dimensions:      []string{"customEvent:cta_name"},
		metrics:         []string{"eventCount"},
		days:            days,
		orderMetricDesc: "eventCount",
		limit:           int64(limit),
		dimensionFilter: &ga4domain.FilterExpression{
			Filter: &ga4domain.Filter{
				FieldName:    "eventName",
				StringFilter: &ga4domain.StringFilter{Value: "cta_click", MatchType: "EXACT"},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	breakdown := domain.NewCTABreakdown()
	breakdown.Available = true
	for _, pair := range namedPairs(resp) {
		breakdown.Set(pair.Label, pair.Count)
	}

	logrus.WithField("cta_total", breakdown.Total()).Debug("ga4: breakdown de CTA carregado")

	return breakdown, nil
}
