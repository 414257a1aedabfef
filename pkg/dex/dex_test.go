package dex

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/notjagan/pogodex/pkg/pogo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDexJSON = `[
  {
    "id": 25,
    "name": {"english": "Pikachu", "japanese": "ピカチュウ"},
    "type": ["Electric"],
    "base": {"HP": 35, "Attack": 55, "Defense": 40, "Sp. Attack": 50, "Sp. Defense": 50, "Speed": 90}
  },
  {
    "id": 1,
    "name": {"english": "Bulbasaur"},
    "type": ["Grass", "Poison"],
    "base": {"HP": 45, "Attack": 49, "Defense": 49, "Sp. Attack": 65, "Sp. Defense": 65, "Speed": 45}
  },
  {
    "id": 150,
    "name": {"english": "Mewtwo"},
    "type": ["Psychic"],
    "base": {"HP": 106, "Attack": 110, "Defense": 90, "Sp. Attack": 154, "Sp. Defense": 90, "Speed": 130}
  }
]`

func TestDecode(t *testing.T) {
	dex, err := Decode(strings.NewReader(testDexJSON))
	require.NoError(t, err)

	assert.Equal(t, 3, dex.Len())
	assert.Equal(t, []int{1, 25, 150}, dex.IDs())

	pikachu, err := dex.ByID(25)
	require.NoError(t, err)
	assert.Equal(t, Pokemon{
		ID:    25,
		Name:  "Pikachu",
		Types: []string{"Electric"},
		Base:  pogo.BaseStats{HP: 35, Attack: 55, Defense: 40, SpecialAttack: 50, SpecialDefense: 50, Speed: 90},
	}, pikachu)

	_, err = dex.ByID(2)
	assert.ErrorIs(t, err, ErrNoPokemon)
}

func TestDecode_MissingField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{
			name:  "missing speed",
			input: `[{"id": 1, "name": {"english": "Bulbasaur"}, "type": ["Grass"], "base": {"HP": 45, "Attack": 49, "Defense": 49, "Sp. Attack": 65, "Sp. Defense": 65}}]`,
			field: pogo.FieldSpeed,
		},
		{
			name:  "missing base",
			input: `[{"id": 1, "name": {"english": "Bulbasaur"}, "type": ["Grass"]}]`,
			field: "base",
		},
		{
			name:  "null base",
			input: `[{"id": 1, "name": {"english": "Bulbasaur"}, "type": ["Grass"], "base": null}]`,
			field: pogo.FieldHP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)

			var missing *pogo.MissingFieldError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.field, missing.Field)
			assert.Equal(t, "Bulbasaur", missing.Record)
		})
	}
}

func TestNew_Rejects(t *testing.T) {
	_, err := New([]Pokemon{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}})
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = New([]Pokemon{{ID: 0, Name: "a"}})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestChoose(t *testing.T) {
	dex, err := Decode(strings.NewReader(testDexJSON))
	require.NoError(t, err)

	a, err := dex.Choose(rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := dex.Choose(rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	rng := rand.New(rand.NewSource(7))
	seen := make(map[int]bool)
	for i := 0; i < 300; i++ {
		p, err := dex.Choose(rng)
		require.NoError(t, err)
		seen[p.ID] = true
	}
	assert.Equal(t, map[int]bool{1: true, 25: true, 150: true}, seen)
}

func TestChoose_Empty(t *testing.T) {
	dex, err := New(nil)
	require.NoError(t, err)

	_, err = dex.Choose(rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrEmptyDex)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokedex.json")
	require.NoError(t, os.WriteFile(path, []byte(testDexJSON), 0o644))

	dex, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, dex.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
