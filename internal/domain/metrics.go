package domain

// MetricsDocument é o snapshot completo consumido pelo dashboard do
// backoffice. O arquivo é substituído integralmente a cada execução;
// os nomes das chaves fazem parte do contrato com o frontend.
type MetricsDocument struct {
	LastUpdated  string         `json:"last_updated"`
	WindowDays   int            `json:"window_days"`
	KPIs         KPISet         `json:"kpis"`
	Series       DailySeries    `json:"series"`
	CTABreakdown map[string]int `json:"cta_breakdown"`
	TopPages     []PageView     `json:"top_pages"`
	Events       []EventCount   `json:"events"`
	Countries    []CountryCount `json:"countries"`
	Devices      []DeviceCount  `json:"devices"`
	Channels     []ChannelCount `json:"channels"`
	Source       SourceInfo     `json:"source"`
}

type KPISet struct {
	Users          int     `json:"users_7d"`
	Sessions       int     `json:"sessions_7d"`
	EngagementRate float64 `json:"engagement_rate"`
	CTAClicks      int     `json:"cta_clicks_7d"`
	Pageviews      int     `json:"pageviews_7d"`
}

// Totals agrega os números de cabeçalho do período, sem quebra por dimensão.
type Totals struct {
	Users          int
	Sessions       int
	EngagementRate float64
	Pageviews      int
}

// DailySeries guarda arrays paralelos na ordem retornada pela API
// (um item por data do período).
type DailySeries struct {
	Labels   []string `json:"labels"`
	Sessions []int    `json:"sessions"`
	Users    []int    `json:"users"`
}

// NamedCount é o par genérico {rótulo, contagem} extraído de um relatório
// com uma dimensão e uma métrica. A conversão para o tipo específico de
// cada lista acontece na montagem do documento.
type NamedCount struct {
	Label string
	Count int
}

type PageView struct {
	Path  string `json:"path"`
	Views int    `json:"views"`
}

type EventCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

type DeviceCount struct {
	Device string `json:"device"`
	Count  int    `json:"count"`
}

type ChannelCount struct {
	Channel string `json:"channel"`
	Count   int    `json:"count"`
}

type SourceInfo struct {
	PropertyID       string `json:"property_id"`
	GA4MeasurementID string `json:"ga4_measurement_id"`
	ClarityProjectID string `json:"clarity_project_id"`
}

// Identificadores fixos das fontes exibidas no dashboard.
const (
	GA4MeasurementID = "G-4V3KPXTJPN"
	ClarityProjectID = "vif42io02i"
)
