package ai

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xeipuuv/gojsonschema"

	"financial-saver-go/internal/config"
	"financial-saver-go/internal/ledger"
	"financial-saver-go/internal/models"
)

//go:embed schema/categorization.schema.json
var categorizationSchema string

const systemPrompt = `You are a financial AI assistant that categorizes expenses. Based on the merchant name, description, and amount, categorize the transaction into one of these categories: %s.

Rules:
- Return only the category name exactly as provided
- If uncertain, choose the most likely category
- For unclear transactions, use "Other"
- Consider common spending patterns and merchant types
Respond with a JSON object: {"category": string, "confidence": number, "reasoning": string}`

// CategorySource supplies the expense categories the model may pick from.
type CategorySource interface {
	ExpenseCategories(ctx context.Context) ([]models.Category, error)
}

// Classifier assigns expense categories via an LLM. The model's JSON reply is
// validated against an embedded schema before anything is trusted.
type Classifier struct {
	cfg        *config.Config
	categories CategorySource
	schema     *gojsonschema.Schema
	http       *http.Client
}

func NewClassifier(cfg *config.Config, categories CategorySource) (*Classifier, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(categorizationSchema))
	if err != nil {
		return nil, err
	}
	return &Classifier{cfg: cfg, categories: categories, schema: schema, http: &http.Client{}}, nil
}

func (c *Classifier) Categorize(ctx context.Context, merchant, description string, amount decimal.Decimal) (*ledger.Categorization, error) {
	if c.cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY missing")
	}
	if merchant == "" && description == "" {
		return nil, fmt.Errorf("merchant or description required")
	}

	categories, err := c.categories.ExpenseCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("no expense categories available")
	}

	names := make([]string, 0, len(categories))
	for _, cat := range categories {
		names = append(names, cat.Name)
	}

	userMsg := fmt.Sprintf("Categorize this transaction:\nMerchant: %s\nDescription: %s\nAmount: $%s\n\nCategory:",
		merchant, description, amount.StringFixed(2))

	body := map[string]any{
		"model":           c.cfg.OpenAILlmModel,
		"response_format": map[string]string{"type": "json_object"},
		"messages": []map[string]string{
			{"role": "system", "content": fmt.Sprintf(systemPrompt, strings.Join(names, ", "))},
			{"role": "user", "content": userMsg},
		},
	}
	b, _ := json.Marshal(body)
	req, _ := http.NewRequestWithContext(ctx, "POST", c.cfg.OpenAIBaseURL+"/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.cfg.OpenAIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		bs, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("llm error: %s", string(bs))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("no choices")
	}

	raw := []byte(out.Choices[0].Message.Content)
	res, err := c.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, err
	}
	if !res.Valid() {
		return nil, fmt.Errorf("schema invalid: %v", res.Errors())
	}

	var parsed struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
		Reasoning  string  `json:"reasoning"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	return matchCategory(categories, parsed.Category, parsed.Confidence, parsed.Reasoning), nil
}

// matchCategory resolves the model's answer to a known category,
// case-insensitively. No match falls back to the first category at low
// confidence rather than failing the caller.
func matchCategory(categories []models.Category, name string, confidence float64, reasoning string) *ledger.Categorization {
	for _, cat := range categories {
		if strings.EqualFold(cat.Name, name) {
			return &ledger.Categorization{
				CategoryID:   cat.ID,
				CategoryName: cat.Name,
				Confidence:   confidence,
				Reasoning:    reasoning,
			}
		}
	}
	return &ledger.Categorization{
		CategoryID:   categories[0].ID,
		CategoryName: categories[0].Name,
		Confidence:   0.5,
		Reasoning:    "No exact match found, using default category",
	}
}
