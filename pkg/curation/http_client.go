package curation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const generateTimeout = 60 * time.Second

type httpClient struct {
	endpoint string
	key      string
	model    string
	timeout  time.Duration // mcp query budget; the pipeline runs tools + LLM
	httpc    *http.Client
	log      zerolog.Logger
}

func NewHTTP(endpoint, key, model string, timeout time.Duration, log zerolog.Logger) Client {
	if timeout <= 0 {
		timeout = 300 * time.Second
	}
	return &httpClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    model,
		timeout:  timeout,
		httpc:    &http.Client{},
		log:      log.With().Str("component", "curation").Logger(),
	}
}

func (c *httpClient) Curate(ctx context.Context, query, areaCode, sigunguCode string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload := map[string]string{"query": query}
	if areaCode != "" {
		payload["area_code"] = areaCode
	}
	if sigunguCode != "" {
		payload["sigungu_code"] = sigunguCode
	}

	body, err := c.post(ctx, "/v1/mcp/query", payload)
	if err != nil {
		return nil, errors.Wrap(err, "mcp query")
	}

	var out Result
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "decode mcp response")
	}
	return &out, nil
}

func (c *httpClient) Generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	messages := []map[string]string{}
	if systemPrompt != "" {
		messages = append(messages, map[string]string{"role": "system", "content": systemPrompt})
	}
	messages = append(messages, map[string]string{"role": "user", "content": prompt})

	body, err := c.post(ctx, "/v1/chat/completions", map[string]any{
		"model":       c.model,
		"messages":    messages,
		"temperature": 0.7,
		"max_tokens":  1024,
	})
	if err != nil {
		return "", errors.Wrap(err, "chat completion")
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", errors.Wrap(err, "decode completion")
	}
	if len(out.Choices) == 0 {
		return "", errors.New("no choices in completion")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

func (c *httpClient) post(ctx context.Context, path string, payload any) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("llm server non-ok")
		return nil, fmt.Errorf("llm server status %d", resp.StatusCode)
	}
	return body, nil
}
