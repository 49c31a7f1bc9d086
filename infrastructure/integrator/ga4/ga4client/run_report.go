package ga4client

import (
	"bytes"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	ga4domain "github.com/vfg2006/backoffice-metrics-sync/infrastructure/integrator/ga4/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunReport executa uma única consulta runReport de forma síncrona.
// Não há retry nem backoff: qualquer erro da API sobe sem tratamento.
func (c *GA4Client) RunReport(req *ga4domain.RunReportRequest) (*ga4domain.RunReportResponse, error) {
	url := fmt.Sprintf("%s/properties/%s:runReport", c.Cfg.GA4.BaseURL, req.Property)

	payload, err := json.Marshal(req)
	if err != nil {
		logrus.WithError(err).Error("ga4: erro ao serializar requisição de relatório")
		return nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("ga4: erro ao criar a requisição")
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		logrus.WithError(err).Error("ga4: erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response ga4domain.RunReportResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("ga4: erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}
