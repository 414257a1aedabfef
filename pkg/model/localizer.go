package model

import (
	"context"
	"fmt"
)

type Localizer interface {
	LocalizedName(context.Context) (string, error)
}

func localizedNames[T Localizer](ctx context.Context, items []T) ([]string, error) {
	names := make([]string, len(items))
	for i, item := range items {
		name, err := item.LocalizedName(ctx)
		if err != nil {
			return nil, fmt.Errorf("error while localizing name: %w", err)
		}
		names[i] = name
	}

	return names, nil
}
