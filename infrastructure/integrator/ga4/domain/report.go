package ga4domain

import "strconv"

// RunReportRequest representa o corpo da requisição runReport da Data API v1beta.
// O campo Property compõe a URL (properties/{id}:runReport) e não faz parte do corpo.
type RunReportRequest struct {
	Property        string            `json:"-"`
	Dimensions      []Dimension       `json:"dimensions,omitempty"`
	Metrics         []Metric          `json:"metrics"`
	DateRanges      []DateRange       `json:"dateRanges"`
	OrderBys        []OrderBy         `json:"orderBys,omitempty"`
	Limit           int64             `json:"limit,omitempty"`
	DimensionFilter *FilterExpression `json:"dimensionFilter,omitempty"`
}

type Dimension struct {
	Name string `json:"name"`
}

type Metric struct {
	Name string `json:"name"`
}

type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type OrderBy struct {
	Metric *MetricOrderBy `json:"metric,omitempty"`
	Desc   bool           `json:"desc,omitempty"`
}

type MetricOrderBy struct {
	MetricName string `json:"metricName"`
}

type FilterExpression struct {
	Filter *Filter `json:"filter,omitempty"`
}

type Filter struct {
	FieldName    string        `json:"fieldName"`
	StringFilter *StringFilter `json:"stringFilter,omitempty"`
	InListFilter *InListFilter `json:"inListFilter,omitempty"`
}

type StringFilter struct {
	MatchType string `json:"matchType,omitempty"`
	Value     string `json:"value"`
}

type InListFilter struct {
	Values []string `json:"values"`
}

type RunReportResponse struct {
	DimensionHeaders []Header `json:"dimensionHeaders,omitempty"`
	MetricHeaders    []Header `json:"metricHeaders,omitempty"`
	Rows             []Row    `json:"rows,omitempty"`
	RowCount         int      `json:"rowCount,omitempty"`
}

type Header struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

type Row struct {
	DimensionValues []Value `json:"dimensionValues,omitempty"`
	MetricValues    []Value `json:"metricValues,omitempty"`
}

// Value é o valor bruto retornado pela API, sempre como string,
// mesmo para métricas numéricas.
type Value struct {
	Value string `json:"value"`
}

// Int converte o valor para inteiro. Valores vazios ou não numéricos
// resultam em zero, nunca em erro.
func (v Value) Int() int {
	f, err := strconv.ParseFloat(v.Value, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// Float converte o valor para float64, com fallback em zero.
func (v Value) Float() float64 {
	f, err := strconv.ParseFloat(v.Value, 64)
	if err != nil {
		return 0.0
	}
	return f
}
