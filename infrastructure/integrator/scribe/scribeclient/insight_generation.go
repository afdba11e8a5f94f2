package scribeclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
	scribedomain "github.com/vfg2006/content-pulse-api/infrastructure/integrator/scribe/domain"
)

const (
	generateInsightsPath = "/v1/insights/generate"
	summarizePath        = "/v1/insights/summarize"
)

func (c *ScribeClient) GenerateInsights(request scribedomain.GenerateInsightsRequest) (scribedomain.GenerateInsightsResponse, error) {
	var response scribedomain.GenerateInsightsResponse

	if err := c.post(generateInsightsPath, request, &response); err != nil {
		return response, errors.Wrap(err, "falha ao gerar insights no Scribe")
	}

	return response, nil
}

func (c *ScribeClient) Summarize(request scribedomain.SummarizeRequest) (scribedomain.SummarizeResponse, error) {
	var response scribedomain.SummarizeResponse

	if err := c.post(summarizePath, request, &response); err != nil {
		return response, errors.Wrap(err, "falha ao resumir insights no Scribe")
	}

	return response, nil
}

// post executa a requisição e tenta novamente uma única vez em caso de erro
// de transporte. Respostas com status de erro não são repetidas.
func (c *ScribeClient) post(endpointPath string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar o payload: %w", err)
	}

	endpoint, err := url.Parse(c.config.Scribe.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, endpointPath)

	var lastErr error
	attempts := 1 + c.config.Scribe.MaxRetries

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * time.Second)
		}

		resp, err := c.doRequest(endpoint.String(), body)
		if err != nil {
			lastErr = err
			continue
		}

		if err := decodeResponse(resp, out); err != nil {
			return err
		}

		return nil
	}

	return lastErr
}

// doRequest monta e executa a requisição; o timeout vem do próprio http.Client
func (c *ScribeClient) doRequest(endpoint string, body []byte) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Scribe.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}

	return resp, nil
}

func decodeResponse(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
