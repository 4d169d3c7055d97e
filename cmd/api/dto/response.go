package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"invalid input: text is empty"`
}

// HealthResponseDTO는 /health 응답이다.
type HealthResponseDTO struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message" example:"MultiLanguage AI Text Summarizer is running!"`
	Mongo   string `json:"mongo,omitempty" example:"up"`
}
