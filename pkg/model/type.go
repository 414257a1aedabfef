package model

import "context"

type Type struct {
	model *Model

	ID           int    `db:"id"`
	GenerationID int    `db:"generation_id"`
	Name         string `db:"name"`
}

func (typ *Type) LocalizedName(ctx context.Context) (string, error) {
	return typ.model.localizedTypeName(ctx, typ)
}
