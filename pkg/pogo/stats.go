package pogo

import (
	"encoding/json"
	"fmt"
	"math"
)

const (
	FieldHP             = "HP"
	FieldAttack         = "Attack"
	FieldDefense        = "Defense"
	FieldSpecialAttack  = "Sp. Attack"
	FieldSpecialDefense = "Sp. Defense"
	FieldSpeed          = "Speed"
)

var BaseStatFields = []string{
	FieldHP,
	FieldAttack,
	FieldDefense,
	FieldSpecialAttack,
	FieldSpecialDefense,
	FieldSpeed,
}

type BaseStats struct {
	HP             int `json:"HP"`
	Attack         int `json:"Attack"`
	Defense        int `json:"Defense"`
	SpecialAttack  int `json:"Sp. Attack"`
	SpecialDefense int `json:"Sp. Defense"`
	Speed          int `json:"Speed"`
}

// BaseStatsFromMap builds a record from field name to value, failing on the
// first field that is absent.
func BaseStatsFromMap(m map[string]int) (BaseStats, error) {
	var base BaseStats
	for _, field := range BaseStatFields {
		v, ok := m[field]
		if !ok {
			return BaseStats{}, &MissingFieldError{Field: field}
		}
		*base.field(field) = v
	}

	return base, nil
}

func (base *BaseStats) field(name string) *int {
	switch name {
	case FieldHP:
		return &base.HP
	case FieldAttack:
		return &base.Attack
	case FieldDefense:
		return &base.Defense
	case FieldSpecialAttack:
		return &base.SpecialAttack
	case FieldSpecialDefense:
		return &base.SpecialDefense
	case FieldSpeed:
		return &base.Speed
	}
	return nil
}

func (base *BaseStats) UnmarshalJSON(data []byte) error {
	var m map[string]int
	err := json.Unmarshal(data, &m)
	if err != nil {
		return fmt.Errorf("error while decoding base stats: %w", err)
	}

	b, err := BaseStatsFromMap(m)
	if err != nil {
		return err
	}
	*base = b

	return nil
}

type StatConfig struct {
	MaxIV      int     `toml:"max_iv"`
	CPModifier float64 `toml:"cp_modifier"`
	CPCeiling  int     `toml:"cp_ceiling"`
	CPNerf     float64 `toml:"cp_nerf"`
}

func DefaultStatConfig() StatConfig {
	return StatConfig{
		MaxIV:      15,
		CPModifier: 0.7903001,
		CPCeiling:  4000,
		CPNerf:     0.91,
	}
}

func (cfg StatConfig) Validate() error {
	switch {
	case cfg.MaxIV < 0:
		return &InvalidConfigError{Field: "max_iv", Value: cfg.MaxIV}
	case cfg.CPModifier <= 0 || math.IsNaN(cfg.CPModifier):
		return &InvalidConfigError{Field: "cp_modifier", Value: cfg.CPModifier}
	case cfg.CPCeiling <= 0:
		return &InvalidConfigError{Field: "cp_ceiling", Value: cfg.CPCeiling}
	case cfg.CPNerf <= 0 || math.IsNaN(cfg.CPNerf):
		return &InvalidConfigError{Field: "cp_nerf", Value: cfg.CPNerf}
	}

	return nil
}

type DerivedStats struct {
	Attack  int
	Defense int
	Stamina int
	CP      int
}

const minCP = 10

// DeriveStats converts main series base stats into Pokemon Go base attack,
// defense and stamina, and the CP of a max IV instance at the CP modifier.
// Every round step is its own operation; folding them changes results at .5
// boundaries.
func DeriveStats(base BaseStats, cfg StatConfig) (DerivedStats, error) {
	err := cfg.Validate()
	if err != nil {
		return DerivedStats{}, err
	}

	speed := 1 + float64(base.Speed-75)/500
	attack := scaledStat(base.Attack, base.SpecialAttack, 7, 1, speed)
	defense := scaledStat(base.Defense, base.SpecialDefense, 5, 3, speed)
	stamina := int(math.Floor(float64(base.HP)*1.75 + 50))

	cp := combatPower(attack+cfg.MaxIV, defense+cfg.MaxIV, stamina+cfg.MaxIV, cfg.CPModifier)
	if cp >= cfg.CPCeiling {
		cp = int(math.RoundToEven(float64(cp) * cfg.CPNerf))
	}

	return DerivedStats{
		Attack:  attack,
		Defense: defense,
		Stamina: stamina,
		CP:      cp,
	}, nil
}

// scaledStat weighs the higher of the pair by hiWeight/8 and the lower by
// loWeight/8.
func scaledStat(a, b int, hiWeight, loWeight int, speed float64) int {
	hi, lo := max(a, b), min(a, b)
	raw := math.RoundToEven(2 * (float64(hiWeight*hi)/8 + float64(loWeight*lo)/8))
	return int(math.RoundToEven(raw * speed))
}

func combatPower(attack, defense, stamina int, modifier float64) int {
	cp := float64(attack) * math.Sqrt(float64(defense)) * math.Sqrt(float64(stamina)) * (modifier * modifier) / 10
	return int(math.Floor(math.Max(minCP, cp)))
}
