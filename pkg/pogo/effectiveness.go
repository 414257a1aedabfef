package pogo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Relation lists the types that, for a given tier, point at Type. A
// super effective relation {Water, [Electric Grass]} reads "Electric and
// Grass are super effective against Water".
type Relation struct {
	Type  string
	Types []string
}

func (rel Relation) Has(typ string) bool {
	for _, t := range rel.Types {
		if t == typ {
			return true
		}
	}
	return false
}

type Chart []Relation

// Table is read-only once built.
type Table struct {
	charts map[Tier]Chart
}

func NewTable(charts map[Tier]Chart) *Table {
	table := &Table{charts: make(map[Tier]Chart, len(charts))}
	for tier, chart := range charts {
		c := make(Chart, len(chart))
		for i, rel := range chart {
			c[i] = Relation{
				Type:  rel.Type,
				Types: append([]string(nil), rel.Types...),
			}
		}
		table.charts[tier] = c
	}

	return table
}

func (table *Table) Chart(tier Tier) Chart {
	if table == nil {
		return nil
	}
	return table.charts[tier]
}

type Score struct {
	Type  string
	Value int
}

// ScoreEffectiveness sums the tier weights of every relation naming one of
// types. Entries come back highest first; ties keep the order in which the
// type was first reached.
func ScoreEffectiveness(types []string, table *Table) []Score {
	scores := make([]Score, 0)
	index := make(map[string]int)

	for _, typ := range types {
		for _, tier := range TierValues() {
			for _, rel := range table.Chart(tier) {
				if !rel.Has(typ) {
					continue
				}

				i, ok := index[rel.Type]
				if !ok {
					i = len(scores)
					index[rel.Type] = i
					scores = append(scores, Score{Type: rel.Type})
				}
				scores[i].Value += tier.Weight()
			}
		}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Value > scores[j].Value
	})

	return scores
}

var ErrTableFormat = errors.New("malformed effectiveness table")

func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open effectiveness table: %w", err)
	}
	defer f.Close()

	table, err := DecodeTable(f)
	if err != nil {
		return nil, fmt.Errorf("error while reading effectiveness table %q: %w", path, err)
	}

	return table, nil
}

// DecodeTable reads a JSON or YAML document of the form
// {"super effective": {"Water": ["Electric", ...], ...}, ...}. Mapping order
// is kept, which is what decides tie order when scoring.
func DecodeTable(r io.Reader) (*Table, error) {
	var root yaml.Node
	err := yaml.NewDecoder(r).Decode(&root)
	if err != nil {
		return nil, fmt.Errorf("error while decoding effectiveness table: %w", err)
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping of tiers at line %d: %w", doc.Line, ErrTableFormat)
	}

	table := &Table{charts: make(map[Tier]Chart, len(TierValues()))}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		tier, err := TierString(key.Value)
		if err != nil {
			return nil, fmt.Errorf("unknown tier %q at line %d: %w", key.Value, key.Line, ErrTableFormat)
		}

		chart, err := decodeChart(value)
		if err != nil {
			return nil, fmt.Errorf("error while decoding %q chart: %w", tier, err)
		}
		table.charts[tier] = chart
	}

	return table, nil
}

func decodeChart(node *yaml.Node) (Chart, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping of types at line %d: %w", node.Line, ErrTableFormat)
	}

	chart := make(Chart, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var types []string
		err := value.Decode(&types)
		if err != nil {
			return nil, fmt.Errorf("expected a list of types for %q at line %d: %w", key.Value, value.Line, ErrTableFormat)
		}
		chart = append(chart, Relation{Type: key.Value, Types: types})
	}

	return chart, nil
}
