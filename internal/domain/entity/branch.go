package entity

import "time"

// Branch representa una sucursal donde se maneja stock propio (multi-sucursal).
type Branch struct {
	ID         string
	DistrictID string
	Name       string
	Address    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
