package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultGeminiBaseURL is the hosted generative language API root.
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	// DefaultGeminiModel is used when no model is configured.
	DefaultGeminiModel = "gemini-2.0-flash"
)

// Gemini calls the generateContent endpoint of the hosted generative
// language API. The credential travels as the key query parameter; the
// request and response bodies follow the documented contents/parts shape.
// Exactly one outbound request is made per Generate call: no retry, no
// chunking of oversized prompts.
type Gemini struct {
	BaseURL    string // defaults to DefaultGeminiBaseURL
	Model      string // defaults to DefaultGeminiModel
	APIKey     string
	HTTPClient *http.Client
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt and returns the first candidate's first text
// part. A success response missing any of the expected keys yields an empty
// string rather than an error; transport failures and non-2xx statuses are
// returned as errors.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(g.APIKey) == "" {
		return "", fmt.Errorf("missing gemini api key")
	}
	base := g.BaseURL
	if base == "" {
		base = DefaultGeminiBaseURL
	}
	model := g.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s", strings.TrimRight(base, "/"), model, url.QueryEscape(g.APIKey))

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	hc := g.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 60 * time.Second}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("gemini status: %d", resp.StatusCode)
	}
	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	// Missing candidates or parts degrade to an empty reply on purpose.
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}
