package pogo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTableJSON = `{
  "super effective": {
    "Water": ["Electric", "Grass"],
    "Flying": ["Electric", "Rock", "Ice"],
    "Ground": ["Water", "Grass", "Ice"]
  },
  "not very effective": {
    "Grass": ["Electric", "Water", "Grass"],
    "Electric": ["Electric"],
    "Dragon": ["Electric", "Water"]
  },
  "no effect": {
    "Ground": ["Electric"]
  }
}`

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := DecodeTable(strings.NewReader(testTableJSON))
	require.NoError(t, err)
	return table
}

func TestScoreEffectiveness_SingleType(t *testing.T) {
	got := ScoreEffectiveness([]string{"Electric"}, testTable(t))

	assert.Equal(t, []Score{
		{Type: "Water", Value: 1},
		{Type: "Flying", Value: 1},
		{Type: "Grass", Value: -1},
		{Type: "Electric", Value: -1},
		{Type: "Dragon", Value: -1},
		{Type: "Ground", Value: -2},
	}, got)
}

func TestScoreEffectiveness_DualType(t *testing.T) {
	got := ScoreEffectiveness([]string{"Water", "Grass"}, testTable(t))

	assert.Equal(t, []Score{
		{Type: "Ground", Value: 2},
		{Type: "Water", Value: 1},
		{Type: "Dragon", Value: -1},
		{Type: "Grass", Value: -2},
	}, got)
}

func TestScoreEffectiveness_Empty(t *testing.T) {
	got := ScoreEffectiveness(nil, testTable(t))
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = ScoreEffectiveness([]string{"Fairy"}, testTable(t))
	assert.Empty(t, got)
}

func TestScoreEffectiveness_NilTable(t *testing.T) {
	var table *Table

	assert.Nil(t, table.Chart(SuperEffective))
	got := ScoreEffectiveness([]string{"Electric"}, table)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestScoreEffectiveness_StableTies(t *testing.T) {
	table := NewTable(map[Tier]Chart{
		SuperEffective: {
			{Type: "Zeta", Types: []string{"Fire"}},
			{Type: "Alpha", Types: []string{"Fire"}},
			{Type: "Mid", Types: []string{"Fire"}},
		},
		NotVeryEffective: {
			{Type: "Beta", Types: []string{"Fire"}},
			{Type: "Alpha", Types: []string{"Fire"}},
		},
	})

	got := ScoreEffectiveness([]string{"Fire"}, table)
	assert.Equal(t, []Score{
		{Type: "Zeta", Value: 1},
		{Type: "Mid", Value: 1},
		{Type: "Alpha", Value: 0},
		{Type: "Beta", Value: -1},
	}, got)
}

func TestNewTable_Copies(t *testing.T) {
	types := []string{"Fire"}
	charts := map[Tier]Chart{
		SuperEffective: {{Type: "Grass", Types: types}},
	}
	table := NewTable(charts)

	types[0] = "Water"
	charts[NoEffect] = Chart{{Type: "Ghost", Types: []string{"Fire"}}}

	assert.Equal(t, []Score{{Type: "Grass", Value: 1}}, ScoreEffectiveness([]string{"Fire"}, table))
}

func TestDecodeTable_YAML(t *testing.T) {
	table, err := DecodeTable(strings.NewReader(`
no effect:
  Ghost: [Normal]
super effective:
  Fighting: [Psychic]
  Ghost: [Ghost]
`))
	require.NoError(t, err)

	assert.Equal(t, Chart{
		{Type: "Fighting", Types: []string{"Psychic"}},
		{Type: "Ghost", Types: []string{"Ghost"}},
	}, table.Chart(SuperEffective))
	assert.Empty(t, table.Chart(NotVeryEffective))
	assert.Equal(t, []Score{{Type: "Ghost", Value: -2}}, ScoreEffectiveness([]string{"Normal"}, table))
}

func TestDecodeTable_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "list root", input: `[1, 2]`},
		{name: "unknown tier", input: `{"very effective": {}}`},
		{name: "chart not a mapping", input: `{"no effect": ["Ghost"]}`},
		{name: "types not a list", input: `{"no effect": {"Ghost": {"a": 1}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTable(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "effectiveness.json")
	require.NoError(t, os.WriteFile(path, []byte(testTableJSON), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Len(t, table.Chart(SuperEffective), 3)

	_, err = LoadTable(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestTier(t *testing.T) {
	assert.Equal(t, "super effective", SuperEffective.String())
	assert.Equal(t, 1, SuperEffective.Weight())
	assert.Equal(t, -1, NotVeryEffective.Weight())
	assert.Equal(t, -2, NoEffect.Weight())

	tier, err := TierString("No Effect")
	require.NoError(t, err)
	assert.Equal(t, NoEffect, tier)
}
