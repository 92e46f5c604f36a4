package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmercier/orchestrator/internal/domain"
)

// resolveFeature resolves user input to a feature: exact name match
// (case-insensitive) first, then exact ID, then unique ID prefix.
func resolveFeature(ctx context.Context, app *App, input string) (*domain.Feature, error) {
	if input == "" {
		return nil, fmt.Errorf("feature name or ID is required")
	}

	features, err := app.Features.List(ctx, domain.SystemGlobal)
	if err != nil {
		return nil, err
	}

	for _, f := range features {
		if strings.EqualFold(f.Name, input) {
			return f, nil
		}
	}
	for _, f := range features {
		if f.ID == input {
			return f, nil
		}
	}

	var matches []*domain.Feature
	for _, f := range features {
		if strings.HasPrefix(f.ID, input) {
			matches = append(matches, f)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("feature not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("feature ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveSprint resolves user input to a sprint using the same rules
// as resolveFeature.
func resolveSprint(ctx context.Context, app *App, input string) (*domain.Sprint, error) {
	if input == "" {
		return nil, fmt.Errorf("sprint name or ID is required")
	}

	sprints, err := app.Sprints.List(ctx, domain.SystemGlobal)
	if err != nil {
		return nil, err
	}

	for _, s := range sprints {
		if strings.EqualFold(s.Name, input) {
			return s, nil
		}
	}
	for _, s := range sprints {
		if s.ID == input {
			return s, nil
		}
	}

	var matches []*domain.Sprint
	for _, s := range sprints {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("sprint not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("sprint ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
