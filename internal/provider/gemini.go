package provider

import (
	"context"
	"fmt"
	"strings"

	"factcheck/internal/claim"

	"google.golang.org/genai"
)

// =============================================================================
// GOOGLE GEMINI ADAPTER
// =============================================================================

const defaultGeminiModel = "gemini-2.5-flash"

const geminiSystemPrompt = `You are a careful fact-checking assistant.
Judge the user's claim and answer only with JSON matching the schema.
verdict: REAL when reliable evidence supports the claim, FAKE when it is
contradicted, NOT_ENOUGH_INFO otherwise. confidence: integer 0-100.
sources: up to three named sources with a one-sentence excerpt each.`

// Gemini verifies claims with Google's Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

// NewGemini creates a Gemini adapter.
func NewGemini(ctx context.Context, apiKey, model string, temperature float32) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	temp := temperature
	return &Gemini{
		client: client,
		model:  model,
		config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(geminiSystemPrompt, genai.RoleUser),
			Temperature:       &temp,
			ResponseMIMEType:  "application/json",
			ResponseSchema:    resultSchema(),
		},
	}, nil
}

// Verify asks the model for a structured verdict.
func (g *Gemini) Verify(ctx context.Context, text string) (claim.Result, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt(text)), g.config)
	if err != nil {
		return claim.Result{}, fmt.Errorf("%w: gemini: %v", ErrUnavailable, err)
	}
	return decodeResult([]byte(cleanModelOutput(resp.Text())))
}

// prompt pairs the raw claim with its normalized form.
func prompt(text string) string {
	p := "Claim: " + text
	if cleaned := claim.Clean(text); cleaned != "" && cleaned != text {
		p += "\nNormalized: " + cleaned
	}
	return p
}

// Name returns the adapter name.
func (g *Gemini) Name() string {
	return "gemini:" + g.model
}

func resultSchema() *genai.Schema {
	verdicts := make([]string, 0, len(claim.Verdicts))
	for _, v := range claim.Verdicts {
		verdicts = append(verdicts, string(v))
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"verdict":    {Type: genai.TypeString, Enum: verdicts},
			"confidence": {Type: genai.TypeInteger},
			"sources": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {Type: genai.TypeString},
						"text": {Type: genai.TypeString},
					},
					Required: []string{"name", "text"},
				},
			},
		},
		Required: []string{"verdict", "confidence", "sources"},
	}
}
