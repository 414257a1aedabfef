package model

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/notjagan/pogodex/pkg/model/sprite"
	"github.com/notjagan/pogodex/pkg/pogo"
)

type Pokemon struct {
	model *Model

	ID        int    `db:"id"`
	Name      string `db:"name"`
	SpeciesID int    `db:"pokemon_species_id"`

	sprites *sprite.PokemonSprites
	types   []Type
	stats   *pogo.BaseStats
}

func (pokemon *Pokemon) LocalizedName(ctx context.Context) (string, error) {
	return pokemon.model.localizedPokemonName(ctx, pokemon)
}

func (pokemon *Pokemon) Types(ctx context.Context) ([]Type, error) {
	if pokemon.types == nil {
		types, err := pokemon.model.pokemonTypes(ctx, pokemon)
		if err != nil {
			return nil, fmt.Errorf("error while getting types for pokemon: %w", err)
		}
		pokemon.types = types
	}

	return pokemon.types, nil
}

func (pokemon *Pokemon) LocalizedTypeNames(ctx context.Context) ([]string, error) {
	types, err := pokemon.Types(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get types for pokemon: %w", err)
	}

	ptrs := make([]*Type, len(types))
	for i := range types {
		ptrs[i] = &types[i]
	}

	return localizedNames(ctx, ptrs)
}

func (pokemon *Pokemon) BaseStats(ctx context.Context) (pogo.BaseStats, error) {
	if pokemon.stats == nil {
		rows, err := pokemon.model.pokemonStats(ctx, pokemon)
		if err != nil {
			return pogo.BaseStats{}, fmt.Errorf("could not get stats for pokemon: %w", err)
		}

		stats, err := baseStats(rows)
		if err != nil {
			var missing *pogo.MissingFieldError
			if errors.As(err, &missing) {
				missing.Record = pokemon.Name
			}
			return pogo.BaseStats{}, fmt.Errorf("incomplete stats for pokemon %q: %w", pokemon.Name, err)
		}
		pokemon.stats = &stats
	}

	return *pokemon.stats, nil
}

// Sprites returns nil without error when the database has no sprite row for
// the pokemon.
func (pokemon *Pokemon) Sprites(ctx context.Context) (*sprite.PokemonSprites, error) {
	if pokemon.sprites == nil {
		raw, err := pokemon.model.pokemonSprites(ctx, pokemon)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else if err != nil {
			return nil, fmt.Errorf("error while getting sprites for pokemon: %w", err)
		}

		var sprites sprite.PokemonSprites
		err = json.Unmarshal([]byte(raw), &sprites)
		if err != nil {
			return nil, fmt.Errorf("error while decoding sprites for pokemon %q: %w", pokemon.Name, err)
		}
		pokemon.sprites = &sprites
	}

	return pokemon.sprites, nil
}
