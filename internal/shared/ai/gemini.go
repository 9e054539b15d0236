package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type gemini struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

// NewGemini returns a Generator backed by the Gemini generateContent
// API. Every failure path returns the static fallback for that method.
func NewGemini(endpoint, key, model string) Generator {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &gemini{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *gemini) JobDescription(ctx context.Context, workType, location string) string {
	prompt := fmt.Sprintf(
		"Write a short, inviting, and clear job description (max 30 words) for an agricultural job. Work Type: %s. Location: %s. Target audience: Local farm workers.",
		workType, location)

	text := g.generate(ctx, prompt)
	if text == "" {
		return FallbackDescription
	}
	return text
}

func (g *gemini) MaintenanceTips(ctx context.Context, equipmentName string) string {
	prompt := fmt.Sprintf(
		"Provide 3 short, bulleted maintenance tips for a farming %s. Keep it under 50 words total.",
		equipmentName)

	text := g.generate(ctx, prompt)
	if text == "" {
		return FallbackTips
	}
	return text
}

func (g *gemini) EquipmentImage(ctx context.Context, equipmentType, name string) string {
	// Image generation is not wired through the REST text endpoint;
	// serve the stock photo until a dedicated image pipeline exists.
	return FallbackImageURL
}

func (g *gemini) generate(ctx context.Context, prompt string) string {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return ""
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.endpoint, g.model, g.key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return ""
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpc.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ""
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return ""
	}

	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
}
