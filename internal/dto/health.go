package dto

type HealthResponseDTO struct {
	Status  string `json:"status" example:"OK"`
	Message string `json:"message" example:"Server is running"`
}
