package entity

import "snake-classic/game/types"

// Food is a single edible cell. It only moves when the food manager places it.
type Food struct {
	position types.Point
	color    types.Color
}

func NewFood(color types.Color) *Food {
	return &Food{color: color}
}

func (f *Food) Position() types.Point {
	return f.position
}

func (f *Food) Color() types.Color {
	return f.color
}

func (f *Food) Place(p types.Point) {
	f.position = p
}
