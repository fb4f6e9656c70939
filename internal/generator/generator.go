// Package generator builds new worlds with Gemini. Generated worlds go
// through the same loading and validation as authored ones.
package generator

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/tatianab/bilingual-text-game/internal/content"
	"github.com/tatianab/bilingual-text-game/internal/models"
)

//go:embed prompts/generate_world.txt
var generateWorldPrompt string

var generateWorldTemplate = template.Must(template.New("generate_world").Parse(generateWorldPrompt))

// maxAttempts bounds how often a rejected world is sent back to the model.
const maxAttempts = 3

var ErrNoContent = errors.New("no content returned from Gemini")

type Generator struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *zap.Logger
}

func New(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Generator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		client: client,
		model:  client.GenerativeModel(model),
		logger: logger,
	}, nil
}

func (g *Generator) Close() error {
	return g.client.Close()
}

// GenerateWorld asks the model for a world matching hint. Worlds that fail
// validation are sent back with the problems found, up to maxAttempts times.
func (g *Generator) GenerateWorld(ctx context.Context, hint string) (models.State, error) {
	var problem string
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		prompt, err := renderPrompt(hint, problem)
		if err != nil {
			return models.State{}, err
		}

		text, err := g.generate(ctx, prompt)
		if err != nil {
			return models.State{}, err
		}

		state, err := ParseResponse(text)
		if err == nil {
			g.logger.Info("generated world",
				zap.Int("attempt", attempt),
				zap.Int("rooms", len(state.Rooms)),
				zap.Int("characters", len(state.Characters)),
			)
			return state, nil
		}
		g.logger.Warn("generated world rejected", zap.Int("attempt", attempt), zap.Error(err))
		problem = err.Error()
		lastErr = err
	}
	return models.State{}, fmt.Errorf("no valid world after %d attempts: %w", maxAttempts, lastErr)
}

func (g *Generator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoContent
	}

	part := resp.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini: %T", part)
	}
	return string(text), nil
}

func renderPrompt(hint, problem string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Hint    string
		Example string
		Problem string
	}{
		Hint:    strings.TrimSpace(hint),
		Example: string(content.DefaultWorldYAML()),
		Problem: problem,
	}
	if err := generateWorldTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}

// ParseResponse strips any Markdown code fence from a model answer and loads
// the world it contains.
func ParseResponse(text string) (models.State, error) {
	cleanYAML := strings.TrimSpace(text)
	cleanYAML = strings.TrimPrefix(cleanYAML, "```yaml")
	cleanYAML = strings.TrimPrefix(cleanYAML, "```")
	cleanYAML = strings.TrimSuffix(cleanYAML, "```")

	state, err := models.ParseWorld([]byte(cleanYAML))
	if err != nil {
		return models.State{}, fmt.Errorf("parse generated world: %w", err)
	}
	return state, nil
}
