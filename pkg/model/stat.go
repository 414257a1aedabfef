package model

import (
	"github.com/notjagan/pogodex/pkg/pogo"
)

type PokemonStat struct {
	ID       int    `db:"id"`
	Name     string `db:"name"`
	BaseStat int    `db:"base_stat"`
}

var statFields = map[string]string{
	"hp":              pogo.FieldHP,
	"attack":          pogo.FieldAttack,
	"defense":         pogo.FieldDefense,
	"special-attack":  pogo.FieldSpecialAttack,
	"special-defense": pogo.FieldSpecialDefense,
	"speed":           pogo.FieldSpeed,
}

// baseStats ignores stats outside the six main series ones (accuracy,
// evasion).
func baseStats(rows []PokemonStat) (pogo.BaseStats, error) {
	m := make(map[string]int, len(rows))
	for _, row := range rows {
		field, ok := statFields[row.Name]
		if !ok {
			continue
		}
		m[field] = row.BaseStat
	}

	return pogo.BaseStatsFromMap(m)
}
