package dto

import (
	"encoding/json"
	"time"
)

type CreateSubmissionRequestDTO struct {
	Title        string `json:"title" example:"Crypto 2024"`
	FiscalNumber string `json:"fiscal_number" example:"123456789"`
	Year         int    `json:"year" example:"2024"`
	Tier         string `json:"tier" example:"STANDARD"`
}

type UpdateSubmissionRequestDTO struct {
	Title string `json:"title" example:"Crypto 2024 (final)"`
}

type SubmissionResponseDTO struct {
	ID           int       `json:"id" example:"1"`
	UserPackID   int       `json:"user_pack_id" example:"1"`
	Title        string    `json:"title" example:"Crypto 2024"`
	FiscalNumber string    `json:"fiscal_number" example:"123456789"`
	Year         int       `json:"year" example:"2024"`
	Tier         string    `json:"tier" example:"STANDARD"`
	Status       string    `json:"status" example:"CREATED"`
	CreatedAt    time.Time `json:"created_at" example:"2025-03-09T16:09:57+03:00"`
}

type SubmissionResultsResponseDTO struct {
	ID      int             `json:"id" example:"1"`
	Results json.RawMessage `json:"results"`
}

type SubmissionFileResponseDTO struct {
	ID         string    `json:"id" example:"0f8a9c1e-7b1f-4f27-9c3b-1f1d2b3c4d5e"`
	FileName   string    `json:"file_name" example:"broker_export.csv"`
	UploadedAt time.Time `json:"uploaded_at" example:"2025-03-09T16:09:57+03:00"`
}
