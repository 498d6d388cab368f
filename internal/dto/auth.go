package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"user"`
	Password string `json:"password" example:"password"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"User successfully registered"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"user"`
	Password string `json:"password" example:"password"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"Authentication successful"`
}
