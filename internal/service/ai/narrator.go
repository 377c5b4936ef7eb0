package ai

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/kapu/namevibes-bot/internal/constants"
	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/internal/util"
	"go.uber.org/zap"
)

// ErrNarrativeDisabled is returned when no AI provider is configured.
var ErrNarrativeDisabled = stderrors.New("narrative generation is disabled")

// Generator produces text for a rendered prompt.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (string, *GenerateMetadata, error)
}

// Narrator turns a reading into a short playful paragraph.
type Narrator struct {
	generator Generator
	template  *PromptTemplate
	logger    *zap.Logger
}

// NewNarrator returns a narrator that reports ErrNarrativeDisabled when
// generator is nil.
func NewNarrator(generator Generator, logger *zap.Logger) (*Narrator, error) {
	tmpl, err := NarrativeTemplate()
	if err != nil {
		return nil, err
	}
	return &Narrator{
		generator: generator,
		template:  tmpl,
		logger:    util.OrNop(logger),
	}, nil
}

func (n *Narrator) Enabled() bool {
	return n != nil && n.generator != nil
}

func (n *Narrator) Narrate(ctx context.Context, r *domain.Reading) (string, error) {
	if !n.Enabled() {
		return "", ErrNarrativeDisabled
	}

	prompt, err := n.template.Render(r)
	if err != nil {
		return "", err
	}

	text, metadata, err := n.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("narrate %q: %w", r.Normalized, err)
	}

	n.logger.Debug("Narrative generated",
		zap.String("normalized", r.Normalized),
		zap.String("provider", metadata.Provider),
		zap.Bool("fallback", metadata.UsedFallback),
	)
	return util.TruncateString(text, constants.Limits.MaxNarrative), nil
}
