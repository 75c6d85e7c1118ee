package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/health-risk/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

const systemPrompt = `You are a non-medical wellness assistant.

You receive a rule-based health risk prediction computed from a person's wearable data (heart rate, steps, sleep, calories). You must base your conclusions only on the provided data.

Your goals:
- Explain in plain language what drove the risk score and level.
- Point out the metrics that deviate most from their baselines (see "contributing_factors").
- Describe the direction of the 7-day forecast in "predicted_trend".
- Give practical, behavioral suggestions that build on the listed recommendations.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- The score is a heuristic, not a clinical measure. Never present it as one.
- If "data_source" is "synthetic", say clearly that the person has not recorded enough data yet and that the numbers are placeholders.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the risk level and its main drivers.",
  "observations": [
    "2-5 bullet points about the metrics and their status."
  ],
  "guidance": [
    "2-4 concrete, non-medical suggestions tailored to these numbers."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing one person's health risk prediction.

- "data_source" tells whether the prediction came from recorded data or is a placeholder.
- "metrics_analyzed" holds the average heart rate (bpm), daily steps, sleep (hours) and calories (kcal).
- "prediction" holds the score in [0,1], its level, the contributing factors, recommendations and a 7-day forecast.

JSON:

%s

Based on this data, respond in the required JSON format.`

// NarrativeLLM turns a risk prediction into a readable narrative.
type NarrativeLLM interface {
	// GenerateRiskNarrative takes a context object and returns an LLM-generated narrative.
	GenerateRiskNarrative(ctx context.Context, insightsCtx *domain.RiskInsightsContext) (*domain.RiskNarrative, error)
}

// OpenAIClient implements NarrativeLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating narratives.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = DefaultModel
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(opts...)

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateRiskNarrative calls OpenAI to explain a prediction.
func (c *OpenAIClient) GenerateRiskNarrative(ctx context.Context, insightsCtx *domain.RiskInsightsContext) (*domain.RiskNarrative, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return parseNarrative(resp.Choices[0].Message.Content)
}

// parseNarrative decodes the model output. Code fences are tolerated.
func parseNarrative(content string) (*domain.RiskNarrative, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var narrative domain.RiskNarrative
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &narrative); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if narrative.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}

	return &narrative, nil
}
