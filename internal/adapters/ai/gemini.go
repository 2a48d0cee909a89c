package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/thariapp/thari_backend/internal/core/domain"
	portsai "github.com/thariapp/thari_backend/internal/core/ports/ai"
)

const systemInstruction = `You are a friendly personal finance coach.
You receive a short summary of the user's income, expenses and top spending
categories. Reply with two or three concrete, encouraging sentences of advice
in plain text. Do not use markdown, lists or headings.`

// GeminiAdvisor asks a Gemini model for advice over the condensed summary.
type GeminiAdvisor struct {
	client *genai.Client
	model  string
}

// NewGeminiAdvisor creates the advisor. It returns an error when the API key
// is missing so the caller can run without an advisor instead.
func NewGeminiAdvisor(ctx context.Context, apiKey, model string) (*GeminiAdvisor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiAdvisor{client: client, model: model}, nil
}

var _ portsai.Advisor = (*GeminiAdvisor)(nil)

// Advise sends the summary as a one-shot prompt and returns the model text.
func (g *GeminiAdvisor) Advise(ctx context.Context, summary domain.AdviceSummary) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(summary)), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}

func buildPrompt(summary domain.AdviceSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total income: %s%s\n", summary.CurrencySymbol, summary.TotalIncome.StringFixed(2))
	fmt.Fprintf(&b, "Total expenses: %s%s\n", summary.CurrencySymbol, summary.TotalExpense.StringFixed(2))
	if len(summary.TopCategories) > 0 {
		b.WriteString("Top spending categories:\n")
		for _, c := range summary.TopCategories {
			fmt.Fprintf(&b, "- %s: %s%s\n", c.CategoryName, summary.CurrencySymbol, c.Spent.StringFixed(2))
		}
	}
	b.WriteString("Give me advice on my finances.")
	return b.String()
}
