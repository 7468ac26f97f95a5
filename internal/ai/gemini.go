// Package ai implements the text-generation collaborator against the
// Gemini generateContent REST API. The backend only ever sends a
// formatted textual digest and consumes back opaque prose; no structured
// data crosses this boundary.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ganhospro/backend/internal/domain"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// promptTemplate frames the driver's digest for the model. Matches the
// analysis brief shown on the premium screen.
const promptTemplate = `Você é um analista financeiro especialista em otimizar ganhos para motoristas de aplicativo.
Analise os seguintes dados de corridas de um motorista e forneça insights acionáveis.

**Dados:**
%s

**Sua Tarefa:**
1. **Resumo de Performance:** Calcule e apresente o total de ganhos, a média de ganhos por dia e o lucro líquido médio por KM.
2. **Identifique os Dias Mais Rentáveis:** Aponte quais dias da semana ou datas foram mais lucrativos.
3. **Sugestões de Melhoria:** Ofereça 2-3 dicas práticas e específicas para este motorista aumentar seus lucros.
4. **Conclusão:** Termine com uma nota de encorajamento.

Seja claro, conciso e use formatação markdown com títulos e listas para facilitar a leitura.`

// GeminiClient calls the generateContent endpoint of a Gemini model.
// It implements service.Summarizer. All transport, auth and API failures
// surface as wrapped domain.ErrService — the caller's state is never
// affected and a retry is always safe.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiClient constructs a client for the given API key and model
// (e.g. "gemini-2.5-flash").
func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// WithBaseURL overrides the API endpoint. Used by tests to point the
// client at a local httptest server.
func (c *GeminiClient) WithBaseURL(baseURL string) *GeminiClient {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Summarize sends the digest wrapped in the analysis prompt and returns
// the model's prose.
func (c *GeminiClient) Summarize(ctx context.Context, digest string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: gemini api key not configured", domain.ErrService)
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, digest)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("ai.GeminiClient.Summarize: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ai.GeminiClient.Summarize: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a bounded slice of the body for the error message.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: gemini returned %d: %s", domain.ErrService, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrService, err)
	}

	text := extractText(decoded)
	if text == "" {
		return "", fmt.Errorf("%w: gemini returned no text", domain.ErrService)
	}
	return text, nil
}

// extractText joins the text parts of the first candidate.
func extractText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String())
}
