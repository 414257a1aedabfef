package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/notjagan/pogodex/pkg/pogo"
)

type EfficacyLevel int

const (
	SuperEffective   EfficacyLevel = 200
	NormalEffective  EfficacyLevel = 100
	NotVeryEffective EfficacyLevel = 50
	Immune           EfficacyLevel = 0
)

type TypeEfficacy struct {
	DamageTypeID int `db:"damage_type_id"`
	TargetTypeID int `db:"target_type_id"`
	DamageFactor int `db:"damage_factor"`
}

func (te *TypeEfficacy) EfficacyLevel() EfficacyLevel {
	return EfficacyLevel(te.DamageFactor)
}

var ErrUnexpectedEfficacy = errors.New("unexpected type efficacy level")

func (level EfficacyLevel) tier() (pogo.Tier, bool, error) {
	switch level {
	case SuperEffective:
		return pogo.SuperEffective, true, nil
	case NotVeryEffective:
		return pogo.NotVeryEffective, true, nil
	case Immune:
		return pogo.NoEffect, true, nil
	case NormalEffective:
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("damage factor %d: %w", level, ErrUnexpectedEfficacy)
	}
}

// EffectivenessTable builds the scoring table from the type efficacy rows,
// keyed by target type with the attacking types as values, using the
// model's language for type names.
func (m *Model) EffectivenessTable(ctx context.Context) (*pogo.Table, error) {
	types, err := m.AllTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error while getting types for effectiveness table: %w", err)
	}

	names := make(map[int]string, len(types))
	for i := range types {
		name, err := types[i].LocalizedName(ctx)
		if err != nil {
			return nil, fmt.Errorf("error while getting type names for effectiveness table: %w", err)
		}
		names[types[i].ID] = name
	}

	effs, err := m.typeEfficacies(ctx)
	if err != nil {
		return nil, fmt.Errorf("error while building effectiveness table: %w", err)
	}

	charts := make(map[pogo.Tier]pogo.Chart)
	index := make(map[pogo.Tier]map[int]int)
	for _, te := range effs {
		tier, ok, err := te.EfficacyLevel().tier()
		if err != nil {
			return nil, fmt.Errorf("could not classify efficacy of type %d against %d: %w", te.DamageTypeID, te.TargetTypeID, err)
		} else if !ok {
			continue
		}

		if index[tier] == nil {
			index[tier] = make(map[int]int)
		}
		i, ok := index[tier][te.TargetTypeID]
		if !ok {
			i = len(charts[tier])
			index[tier][te.TargetTypeID] = i
			charts[tier] = append(charts[tier], pogo.Relation{Type: names[te.TargetTypeID]})
		}
		charts[tier][i].Types = append(charts[tier][i].Types, names[te.DamageTypeID])
	}

	return pogo.NewTable(charts), nil
}
