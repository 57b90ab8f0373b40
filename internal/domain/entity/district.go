package entity

import "time"

// District agrupa sucursales dentro de una región.
type District struct {
	ID        string
	RegionID  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
