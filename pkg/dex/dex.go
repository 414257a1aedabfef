package dex

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"

	"github.com/notjagan/pogodex/pkg/pogo"
)

type Pokemon struct {
	ID    int
	Name  string
	Types []string
	Base  pogo.BaseStats

	// Sprite is a path to the front sprite, empty when the source has none.
	Sprite string
}

// Dex is an immutable index of Pokemon by their national dex number.
type Dex struct {
	pokemon map[int]Pokemon
	ids     []int
}

var (
	ErrEmptyDex    = errors.New("dex has no pokemon")
	ErrDuplicateID = errors.New("duplicate pokemon id")
	ErrInvalidID   = errors.New("pokemon id must be positive")
	ErrNoPokemon   = errors.New("no matching pokemon")
)

func New(pokemon []Pokemon) (*Dex, error) {
	dex := &Dex{
		pokemon: make(map[int]Pokemon, len(pokemon)),
		ids:     make([]int, 0, len(pokemon)),
	}

	for _, p := range pokemon {
		if p.ID <= 0 {
			return nil, fmt.Errorf("could not add pokemon %q with id %d: %w", p.Name, p.ID, ErrInvalidID)
		}
		if _, ok := dex.pokemon[p.ID]; ok {
			return nil, fmt.Errorf("could not add pokemon %q with id %d: %w", p.Name, p.ID, ErrDuplicateID)
		}

		p.Types = append([]string(nil), p.Types...)
		dex.pokemon[p.ID] = p
		dex.ids = append(dex.ids, p.ID)
	}
	sort.Ints(dex.ids)

	return dex, nil
}

func (dex *Dex) Len() int {
	return len(dex.ids)
}

func (dex *Dex) IDs() []int {
	return append([]int(nil), dex.ids...)
}

func (dex *Dex) ByID(id int) (Pokemon, error) {
	p, ok := dex.pokemon[id]
	if !ok {
		return Pokemon{}, fmt.Errorf("pokemon with id %d not found: %w", id, ErrNoPokemon)
	}

	return p, nil
}

// Choose picks an id uniformly at random. The same seed over the same dex
// always yields the same pick.
func (dex *Dex) Choose(rng *rand.Rand) (Pokemon, error) {
	if len(dex.ids) == 0 {
		return Pokemon{}, ErrEmptyDex
	}

	return dex.pokemon[dex.ids[rng.Intn(len(dex.ids))]], nil
}

type entry struct {
	ID   int `json:"id"`
	Name struct {
		English string `json:"english"`
	} `json:"name"`
	Type []string        `json:"type"`
	Base json.RawMessage `json:"base"`
}

func LoadFile(path string) (*Dex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dex file: %w", err)
	}
	defer f.Close()

	dex, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("error while reading dex file %q: %w", path, err)
	}

	return dex, nil
}

func Decode(r io.Reader) (*Dex, error) {
	var entries []entry
	err := json.NewDecoder(r).Decode(&entries)
	if err != nil {
		return nil, fmt.Errorf("error while decoding dex: %w", err)
	}

	pokemon := make([]Pokemon, len(entries))
	for i, e := range entries {
		if e.Base == nil {
			return nil, fmt.Errorf("pokemon %q has no base stats: %w", e.Name.English, &pogo.MissingFieldError{
				Field:  "base",
				Record: e.Name.English,
			})
		}

		var base pogo.BaseStats
		err := json.Unmarshal(e.Base, &base)
		if err != nil {
			var missing *pogo.MissingFieldError
			if errors.As(err, &missing) {
				missing.Record = e.Name.English
			}
			return nil, fmt.Errorf("error while decoding base stats for pokemon %d: %w", e.ID, err)
		}

		pokemon[i] = Pokemon{
			ID:    e.ID,
			Name:  e.Name.English,
			Types: e.Type,
			Base:  base,
		}
	}

	return New(pokemon)
}
