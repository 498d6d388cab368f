package dto

import "time"

type CapabilityResponseDTO struct {
	CanCreate       bool `json:"can_create" example:"true"`
	HasPremium      bool `json:"has_premium" example:"true"`
	HasStandardOnly bool `json:"has_standard_only" example:"false"`
	HasOnlyPremium  bool `json:"has_only_premium" example:"false"`
	HasMixed        bool `json:"has_mixed" example:"true"`
	TotalRemaining  int  `json:"total_remaining" example:"4"`
}

type UserPackResponseDTO struct {
	ID                   int       `json:"id" example:"1"`
	PackID               int       `json:"pack_id" example:"2"`
	SubmissionsRemaining int       `json:"submissions_remaining" example:"2"`
	IsPremium            bool      `json:"is_premium" example:"false"`
	CreatedAt            time.Time `json:"created_at" example:"2025-03-09T16:09:57+03:00"`
}

type CreditsResponseDTO struct {
	UserPacks      []UserPackResponseDTO `json:"user_packs"`
	TotalRemaining int                   `json:"total_remaining" example:"4"`
}
