package model

import (
	"context"
	"fmt"

	"github.com/notjagan/pogodex/pkg/dex"
)

// Dex loads every default form into memory. The model language must be set.
func (m *Model) Dex(ctx context.Context) (*dex.Dex, error) {
	if m.Language == nil {
		return nil, ErrUnsetLanguage
	}

	ids, err := m.PokemonIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("error while building dex: %w", err)
	}

	pokemon := make([]dex.Pokemon, len(ids))
	for i, id := range ids {
		p, err := m.dexEntry(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("error while building dex entry %d: %w", id, err)
		}
		pokemon[i] = *p
	}

	return dex.New(pokemon)
}

func (m *Model) dexEntry(ctx context.Context, id int) (*dex.Pokemon, error) {
	pokemon, err := m.PokemonByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name, err := pokemon.LocalizedName(ctx)
	if err != nil {
		return nil, fmt.Errorf("error while getting localized name for pokemon: %w", err)
	}

	types, err := pokemon.LocalizedTypeNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error while getting types for pokemon %q: %w", pokemon.Name, err)
	}

	base, err := pokemon.BaseStats(ctx)
	if err != nil {
		return nil, err
	}

	sprites, err := pokemon.Sprites(ctx)
	if err != nil {
		return nil, err
	}
	var spritePath string
	if sprites != nil {
		spritePath = string(sprites.Preferred())
	}

	return &dex.Pokemon{
		ID:     pokemon.ID,
		Name:   name,
		Types:  types,
		Base:   base,
		Sprite: spritePath,
	}, nil
}
