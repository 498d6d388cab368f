package dto

type PackResponseDTO struct {
	ID                 int     `json:"id" example:"1"`
	Name               string  `json:"name" example:"Starter"`
	Price              float64 `json:"price" example:"39.90"`
	SubmissionsGranted int     `json:"submissions_granted" example:"3"`
	IsPremium          bool    `json:"is_premium" example:"false"`
	IsActive           bool    `json:"is_active" example:"true"`
}
