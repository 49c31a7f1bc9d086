package ga4client

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	ga4domain "github.com/vfg2006/backoffice-metrics-sync/infrastructure/integrator/ga4/domain"
	"github.com/vfg2006/backoffice-metrics-sync/internal/config"
	"golang.org/x/oauth2/google"
)

const scopeAnalyticsReadonly = "https://www.googleapis.com/auth/analytics.readonly"

type Client interface {
	RunReport(req *ga4domain.RunReportRequest) (*ga4domain.RunReportResponse, error)
}

type GA4Client struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

// NewClient autentica com a service account (JSON bruto vindo do ambiente)
// e retorna um cliente pronto para consultar a Data API.
func NewClient(cfg *config.Config) (Client, error) {
	jwtConfig, err := google.JWTConfigFromJSON([]byte(cfg.GA4.CredentialsJSON), scopeAnalyticsReadonly)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar credenciais da service account")
	}

	return &GA4Client{
		Cfg:        cfg,
		HTTPClient: jwtConfig.Client(context.Background()),
	}, nil
}

// HandleResponse lê o corpo da resposta e converte status não-2xx
// na mensagem de erro retornada pela API do Google.
func (c *GA4Client) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta da API")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &responseError{}
		if jsonErr := json.Unmarshal(body, apiErr); jsonErr == nil && apiErr.Error.Message != "" {
			return nil, errors.Errorf("ga4: %s (status %d)", apiErr.Error.Message, resp.StatusCode)
		}
		return nil, errors.Errorf("ga4: resposta inesperada da API (status %d)", resp.StatusCode)
	}

	return body, nil
}

type responseError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
