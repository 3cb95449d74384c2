package wizard

import (
	"context"

	"github.com/qfg-dev/qfg/pkg/models"
)

// Prompt answers the questions the project generator asks while adding
// artifacts.
type Prompt struct {
	asker Asker
}

// NewPrompt returns a Prompt backed by asker.
func NewPrompt(asker Asker) *Prompt {
	return &Prompt{asker: asker}
}

// ChooseDriver asks which families an artifact targets.
func (p *Prompt) ChooseDriver(ctx context.Context, question string) (models.DriverType, error) {
	vals, err := p.asker.Ask(ctx, TargetDriverQuestion(question))
	if err != nil || len(vals) == 0 {
		return "", err
	}
	return models.DriverType(normalize(vals[0])), nil
}

// ConfirmOverwrite asks whether relPath may be replaced by the change diff
// describes.
func (p *Prompt) ConfirmOverwrite(ctx context.Context, relPath, diff string) (bool, error) {
	vals, err := p.asker.Ask(ctx, OverwriteQuestion(relPath, diff))
	if err != nil || len(vals) == 0 {
		return false, err
	}
	return vals[0] == "true", nil
}

// Ask asks a single question and returns its first value, or fallback when
// the answer is empty.
func Ask(ctx context.Context, asker Asker, q Question, fallback string) (string, error) {
	vals, err := asker.Ask(ctx, q)
	if err != nil {
		return "", err
	}
	if len(vals) == 0 || vals[0] == "" {
		return fallback, nil
	}
	return vals[0], nil
}
