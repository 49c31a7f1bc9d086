package syncing

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-metrics-sync/internal/config"
	"github.com/vfg2006/backoffice-metrics-sync/internal/domain"
)

// Limites fixos de cada relatório da bateria. São enviados na própria
// consulta: a API nunca retorna mais linhas do que o solicitado.
const (
	topPagesLimit     = 10
	topCountriesLimit = 8
	topDevicesLimit   = 5
	topChannelsLimit  = 8
	keyEventsLimit    = 20
	ctaBreakdownLimit = 20
)

// Service executa a bateria fixa de consultas contra uma propriedade e
// monta o documento consumido pelo dashboard.
type Service struct {
	cfg       *config.Config
	insighter Insighter
	writer    MetricsWriter
	logger    *logrus.Entry
	now       func() time.Time
}

func NewService(cfg *config.Config, insighter Insighter, writer MetricsWriter) *Service {
	return &Service{
		cfg:       cfg,
		insighter: insighter,
		writer:    writer,
		logger:    logrus.NewEntry(logrus.StandardLogger()),
		now:       time.Now,
	}
}

// WithLogger associa o logger da execução (com o sync_id) ao serviço,
// correlacionando as mensagens de toda a bateria de consultas.
func (s *Service) WithLogger(logger *logrus.Entry) *Service {
	s.logger = logger
	return s
}

// BuildMetrics executa todas as consultas em sequência e monta o documento.
// Qualquer erro fora da seção opcional de CTA interrompe a montagem:
// ou o documento completo é gerado, ou nada é escrito.
func (s *Service) BuildMetrics() (*domain.MetricsDocument, error) {
	lookback := s.cfg.GA4.LookbackDays

	totals, err := s.insighter.Totals(lookback)
	if err != nil {
		return nil, err
	}

	series, err := s.insighter.DailySeries(lookback)
	if err != nil {
		return nil, err
	}

	pages, err := s.insighter.TopPages(lookback, topPagesLimit)
	if err != nil {
		return nil, err
	}

	countries, err := s.insighter.TopCountries(lookback, topCountriesLimit)
	if err != nil {
		return nil, err
	}

	devices, err := s.insighter.TopDevices(lookback, topDevicesLimit)
	if err != nil {
		return nil, err
	}

	channels, err := s.insighter.TopChannels(lookback, topChannelsLimit)
	if err != nil {
		return nil, err
	}

	events, err := s.insighter.KeyEvents(lookback, keyEventsLimit)
	if err != nil {
		return nil, err
	}

	// Seção opcional: a dimensão customizada pode não estar registrada na
	// propriedade. Nesse caso o breakdown fica com as seis chaves zeradas.
	breakdown := domain.NewCTABreakdown()
	if b, err := s.insighter.CTABreakdown(lookback, ctaBreakdownLimit); err != nil {
		s.logger.WithError(err).Warn("sync: breakdown de CTA indisponível, usando valores zerados")
	} else {
		breakdown = b
	}

	doc := &domain.MetricsDocument{
		LastUpdated: s.now().UTC().Format(time.RFC3339),
		WindowDays:  lookback,
		KPIs: domain.KPISet{
			Users:          totals.Users,
			Sessions:       totals.Sessions,
			EngagementRate: totals.EngagementRate,
			CTAClicks:      breakdown.Total(),
			Pageviews:      totals.Pageviews,
		},
		Series:       *series,
		CTABreakdown: breakdown.Counts,
		TopPages:     pages,
		Events:       events,
		Countries:    countryCounts(countries),
		Devices:      deviceCounts(devices),
		Channels:     channelCounts(channels),
		Source: domain.SourceInfo{
			PropertyID:       s.cfg.GA4.PropertyID,
			GA4MeasurementID: domain.GA4MeasurementID,
			ClarityProjectID: domain.ClarityProjectID,
		},
	}

	return doc, nil
}

// Sync monta o documento e sobrescreve o arquivo de saída.
func (s *Service) Sync() (*domain.MetricsDocument, error) {
	doc, err := s.BuildMetrics()
	if err != nil {
		return nil, err
	}

	if err := s.writer.Write(doc); err != nil {
		s.logger.WithFields(logrus.Fields{
			"path":  s.writer.Path(),
			"error": err.Error(),
		}).Error("sync: falha ao escrever o documento de métricas")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"path":        s.writer.Path(),
		"window_days": doc.WindowDays,
	}).Info("sync: documento de métricas atualizado")

	return doc, nil
}

func countryCounts(pairs []domain.NamedCount) []domain.CountryCount {
	out := make([]domain.CountryCount, 0, len(pairs))
	for _, pair := range pairs {
		out = append(out, domain.CountryCount{Country: pair.Label, Count: pair.Count})
	}
	return out
}

func deviceCounts(pairs []domain.NamedCount) []domain.DeviceCount {
	out := make([]domain.DeviceCount, 0, len(pairs))
	for _, pair := range pairs {
		out = append(out, domain.DeviceCount{Device: pair.Label, Count: pair.Count})
	}
	return out
}

func channelCounts(pairs []domain.NamedCount) []domain.ChannelCount {
	out := make([]domain.ChannelCount, 0, len(pairs))
	for _, pair := range pairs {
		out = append(out, domain.ChannelCount{Channel: pair.Label, Count: pair.Count})
	}
	return out
}
