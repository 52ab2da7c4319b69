// Package gemini counts tokens of generated content with the Gemini local
// tokenizer, so users can see what llms-full.txt costs in a model context.
package gemini

import (
	"context"
	"fmt"

	"github.com/aeojs/aeo"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ aeo.TokenCounter = (*TokenCounter)(nil)

// DefaultModel is the tokenizer model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// TokenCounter counts tokens offline; the tokenizer vocabulary is fetched
// once and cached by the genai module.
type TokenCounter struct {
	model string
	tok   *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model. An empty
// model selects DefaultModel.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, aeo.Errorf(aeo.EINVALID, "unsupported tokenizer model %q: %v", model, err)
	}
	return &TokenCounter{model: model, tok: tok}, nil
}

// Model returns the tokenizer model name.
func (tc *TokenCounter) Model() string { return tc.model }

// CountTokens returns the token count of text sent as a single user turn.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}, nil)
	if err != nil {
		return 0, fmt.Errorf("count %s tokens: %w", tc.model, err)
	}
	return int(result.TotalTokens), nil
}
