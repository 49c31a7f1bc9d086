package ga4

import (
	ga4domain "github.com/vfg2006/backoffice-metrics-sync/infrastructure/integrator/ga4/domain"
	"github.com/vfg2006/backoffice-metrics-sync/internal/domain"
)

// firstInt extrai a métrica de índice idx da primeira linha do relatório.
// Sem linhas (ou valor não numérico) o resultado é zero.
func firstInt(resp *ga4domain.RunReportResponse, idx int) int {
	if len(resp.Rows) == 0 || idx >= len(resp.Rows[0].MetricValues) {
		return 0
	}
	return resp.Rows[0].MetricValues[idx].Int()
}

func firstFloat(resp *ga4domain.RunReportResponse, idx int) float64 {
	if len(resp.Rows) == 0 || idx >= len(resp.Rows[0].MetricValues) {
		return 0.0
	}
	return resp.Rows[0].MetricValues[idx].Float()
}

// namedPairs converte cada linha em {rótulo, contagem}, preservando a
// ordem retornada pela API (já ordenada pela métrica solicitada).
func namedPairs(resp *ga4domain.RunReportResponse) []domain.NamedCount {
	out := make([]domain.NamedCount, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		if len(row.DimensionValues) == 0 || len(row.MetricValues) == 0 {
			continue
		}
		out = append(out, domain.NamedCount{
			Label: row.DimensionValues[0].Value,
			Count: row.MetricValues[0].Int(),
		})
	}
	return out
}

// dailySeries monta os arrays paralelos da série diária. A dimensão date
// chega como YYYYMMDD e vira o rótulo DD/MM exibido no gráfico.
func dailySeries(resp *ga4domain.RunReportResponse) *domain.DailySeries {
	series := &domain.DailySeries{
		Labels:   []string{},
		Sessions: []int{},
		Users:    []int{},
	}

	for _, row := range resp.Rows {
		if len(row.DimensionValues) == 0 || len(row.MetricValues) < 2 {
			continue
		}

		raw := row.DimensionValues[0].Value
		label := raw
		if len(raw) == 8 {
			label = raw[6:8] + "/" + raw[4:6]
		}

		series.Labels = append(series.Labels, label)
		series.Sessions = append(series.Sessions, row.MetricValues[0].Int())
		series.Users = append(series.Users, row.MetricValues[1].Int())
	}

	return series
}
