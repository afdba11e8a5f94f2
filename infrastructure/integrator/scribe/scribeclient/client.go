package scribeclient

import (
	"net/http"
	"time"

	scribedomain "github.com/vfg2006/content-pulse-api/infrastructure/integrator/scribe/domain"
	"github.com/vfg2006/content-pulse-api/internal/config"
)

type Client interface {
	GenerateInsights(request scribedomain.GenerateInsightsRequest) (scribedomain.GenerateInsightsResponse, error)
	Summarize(request scribedomain.SummarizeRequest) (scribedomain.SummarizeResponse, error)
}

type ScribeClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API do Scribe
func NewClient(cfg *config.Config) Client {
	return &ScribeClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Scribe.TimeoutSeconds) * time.Second,
		},
		config: cfg,
	}
}
