package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type Model struct {
	db *sqlx.DB

	Language *Language
}

func New(ctx context.Context, dbPath string) (*Model, error) {
	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to read from database: %w", err)
	}
	return &Model{db: db}, nil
}

func (m *Model) Close() error {
	return m.db.Close()
}

var ErrUnsetLanguage = errors.New("model language is nil")

func (m *Model) languageByLocalizationCode(ctx context.Context, code LocalizationCode) (*Language, error) {
	lang := Language{model: m}
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT id, iso639
		FROM pokemon_v2_language
		WHERE iso639 = ?
	`, code).StructScan(&lang)
	if err != nil {
		return nil, fmt.Errorf("localization code %q not found: %w", code, err)
	}
	return &lang, nil
}

func (m *Model) SetLanguageByLocalizationCode(ctx context.Context, code LocalizationCode) error {
	lang, err := m.languageByLocalizationCode(ctx, code)
	if err != nil {
		return fmt.Errorf("error while getting language: %w", err)
	}
	m.Language = lang

	return nil
}

func (m *Model) PokemonIDs(ctx context.Context) ([]int, error) {
	var ids []int
	err := m.db.SelectContext(ctx, &ids,
		/* sql */ `
		SELECT id
		FROM pokemon_v2_pokemon
		WHERE is_default = 1
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("error while getting pokemon ids: %w", err)
	}

	return ids, nil
}

func (m *Model) PokemonByID(ctx context.Context, id int) (*Pokemon, error) {
	pokemon := Pokemon{model: m}
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT id, name, pokemon_species_id
		FROM pokemon_v2_pokemon
		WHERE id = ?
	`, id).StructScan(&pokemon)
	if err != nil {
		return nil, fmt.Errorf("no matching pokemon found: %w", err)
	}

	return &pokemon, nil
}

func (m *Model) localizedPokemonName(ctx context.Context, pokemon *Pokemon) (string, error) {
	if m.Language == nil {
		return "", ErrUnsetLanguage
	}

	var name string
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT name
		FROM pokemon_v2_pokemonspeciesname
		WHERE pokemon_species_id = ? AND language_id = ?
	`, pokemon.SpeciesID, m.Language.ID).Scan(&name)
	if err != nil {
		return "", fmt.Errorf(
			"could not find localized name for pokemon %q for language with code %q: %w",
			pokemon.Name,
			m.Language.ISO639,
			err,
		)
	}

	return name, nil
}

func (m *Model) pokemonTypes(ctx context.Context, pokemon *Pokemon) ([]Type, error) {
	var types []Type
	err := m.db.SelectContext(ctx, &types,
		/* sql */ `
		SELECT t.id, t.generation_id, t.name
		FROM pokemon_v2_pokemontype pt
		JOIN pokemon_v2_type t
			ON pt.type_id = t.id
		WHERE pt.pokemon_id = ?
		ORDER BY pt.slot
	`, pokemon.ID)
	if err != nil {
		return nil, fmt.Errorf("error while getting types for pokemon %q: %w", pokemon.Name, err)
	}

	for i := range types {
		types[i].model = m
	}

	return types, nil
}

func (m *Model) AllTypes(ctx context.Context) ([]Type, error) {
	var types []Type
	err := m.db.SelectContext(ctx, &types,
		/* sql */ `
		SELECT id, generation_id, name
		FROM pokemon_v2_type
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("error while getting all types: %w", err)
	}

	for i := range types {
		types[i].model = m
	}

	return types, nil
}

func (m *Model) localizedTypeName(ctx context.Context, typ *Type) (string, error) {
	if m.Language == nil {
		return "", ErrUnsetLanguage
	}

	var name string
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT name
		FROM pokemon_v2_typename
		WHERE type_id = ? AND language_id = ?
	`, typ.ID, m.Language.ID).Scan(&name)
	if err != nil {
		return "", fmt.Errorf(
			"could not find localized name for type %q for language with code %q: %w",
			typ.Name,
			m.Language.ISO639,
			err,
		)
	}

	return name, nil
}

func (m *Model) pokemonStats(ctx context.Context, pokemon *Pokemon) ([]PokemonStat, error) {
	var stats []PokemonStat
	err := m.db.SelectContext(ctx, &stats,
		/* sql */ `
		SELECT s.id, s.name, ps.base_stat
		FROM pokemon_v2_pokemonstat ps
		JOIN pokemon_v2_stat s
			ON ps.stat_id = s.id
		WHERE ps.pokemon_id = ?
		ORDER BY s.id
	`, pokemon.ID)
	if err != nil {
		return nil, fmt.Errorf("error while getting stats for pokemon %q: %w", pokemon.Name, err)
	}

	return stats, nil
}

func (m *Model) pokemonSprites(ctx context.Context, pokemon *Pokemon) (string, error) {
	var sprites string
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT sprites
		FROM pokemon_v2_pokemonsprites
		WHERE pokemon_id = ?
	`, pokemon.ID).Scan(&sprites)
	if err != nil {
		return "", fmt.Errorf("could not find sprites for pokemon %q: %w", pokemon.Name, err)
	}

	return sprites, nil
}

func (m *Model) typeEfficacies(ctx context.Context) ([]TypeEfficacy, error) {
	var effs []TypeEfficacy
	err := m.db.SelectContext(ctx, &effs,
		/* sql */ `
		SELECT damage_type_id, target_type_id, damage_factor
		FROM pokemon_v2_typeefficacy
		ORDER BY target_type_id, damage_type_id
	`)
	if err != nil {
		return nil, fmt.Errorf("error while getting type efficacies: %w", err)
	}

	return effs, nil
}
