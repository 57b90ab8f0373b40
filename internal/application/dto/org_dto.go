package dto

import "time"

// CreateRegionRequest body para POST /api/regions.
type CreateRegionRequest struct {
	Name string `json:"name"`
}

// UpdateRegionRequest body para PUT /api/regions/{id}. Campos opcionales.
type UpdateRegionRequest struct {
	Name *string `json:"name,omitempty"`
}

// RegionResponse representación de una región.
type RegionResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateDistrictRequest body para POST /api/districts.
type CreateDistrictRequest struct {
	RegionID string `json:"region_id"`
	Name     string `json:"name"`
}

// UpdateDistrictRequest body para PUT /api/districts/{id}.
type UpdateDistrictRequest struct {
	Name     *string `json:"name,omitempty"`
	RegionID *string `json:"region_id,omitempty"`
}

// DistrictResponse representación de un distrito.
type DistrictResponse struct {
	ID        string    `json:"id"`
	RegionID  string    `json:"region_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateBranchRequest body para POST /api/branches.
type CreateBranchRequest struct {
	DistrictID string `json:"district_id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
}

// UpdateBranchRequest body para PUT /api/branches/{id}.
type UpdateBranchRequest struct {
	Name       *string `json:"name,omitempty"`
	Address    *string `json:"address,omitempty"`
	DistrictID *string `json:"district_id,omitempty"`
}

// BranchResponse representación de una sucursal.
type BranchResponse struct {
	ID         string    `json:"id"`
	DistrictID string    `json:"district_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RegionListResponse, DistrictListResponse y BranchListResponse listados paginados.
type RegionListResponse struct {
	Items []RegionResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

type DistrictListResponse struct {
	Items []DistrictResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

type BranchListResponse struct {
	Items []BranchResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
