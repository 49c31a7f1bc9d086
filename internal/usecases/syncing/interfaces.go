package syncing

import (
	"github.com/vfg2006/backoffice-metrics-sync/internal/domain"
)

// Insighter define a interface para obter métricas agregadas do GA4
type Insighter interface {
	// Totals obtém os agregados do período sem quebra por dimensão
	Totals(days int) (*domain.Totals, error)

	// DailySeries obtém sessões e usuários por data do período
	DailySeries(days int) (*domain.DailySeries, error)

	// TopPages obtém as páginas mais vistas, ordenadas por pageviews
	TopPages(days, limit int) ([]domain.PageView, error)

	// TopCountries obtém o ranking de países por usuários
	TopCountries(days, limit int) ([]domain.NamedCount, error)

	// TopDevices obtém o ranking de categorias de dispositivo por usuários
	TopDevices(days, limit int) ([]domain.NamedCount, error)

	// TopChannels obtém o ranking de canais por sessões
	TopChannels(days, limit int) ([]domain.NamedCount, error)

	// KeyEvents obtém a contagem dos eventos nomeados rastreados
	KeyEvents(days, limit int) ([]domain.EventCount, error)

	// CTABreakdown obtém a quebra de cliques de CTA pela dimensão customizada.
	// Consulta opcional: o erro indica apenas que a seção está indisponível.
	CTABreakdown(days, limit int) (*domain.CTABreakdown, error)
}

// MetricsWriter define a interface para persistir o documento de métricas
type MetricsWriter interface {
	Write(doc *domain.MetricsDocument) error
	Path() string
}
