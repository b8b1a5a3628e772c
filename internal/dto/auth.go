package dto

type RegisterRequestDTO struct {
	Email    string  `json:"email" validate:"required,email,max=255" example:"investor@example.com"`
	Password string  `json:"password" validate:"required,min=6" example:"secret123"`
	FullName string  `json:"fullName" validate:"required,max=255" example:"Ivan Petrenko"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=50" example:"+380501234567"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  int64  `json:"userId"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"investor@example.com"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

type LoginResponseDTO struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	UserID  int64       `json:"userId"`
	User    UserSummary `json:"user"`
}
