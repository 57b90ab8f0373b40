package entity

import "time"

// Region nivel superior de la jerarquía territorial (Region → District → Branch).
type Region struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
