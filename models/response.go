package models

// APIResponse adalah amplop respons kanonik untuk endpoint marketplace.
// Frontend tidak perlu menebak bentuk respons: selalu {success, message?, data?}.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func OK(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

func OKWithMessage(message string, data interface{}) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

func Fail(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}

// Response models untuk dokumentasi swagger.

type LoginSuccessResponse struct {
	Message      string `json:"message" example:"Login berhasil"`
	Token        string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	UserID       string `json:"user_id" example:"507f1f77bcf86cd799439011"`
	Role         string `json:"role" example:"karyawan"`
	IsFirstLogin bool   `json:"is_first_login" example:"true"`
}

type RegisterSuccessResponse struct {
	Message string `json:"message" example:"User berhasil didaftarkan"`
	UserID  string `json:"user_id" example:"507f1f77bcf86cd799439011"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

type ValidationErrorResponse struct {
	Error  string `json:"error" example:"Validation failed"`
	Errors string `json:"errors" example:"email: email tidak valid, password: password terlalu pendek"`
}

type UnauthorizedErrorResponse struct {
	Error string `json:"error" example:"Token tidak valid atau tidak ada"`
}

type ForbiddenErrorResponse struct {
	Error string `json:"error" example:"Akses ditolak. Role Anda tidak memiliki izin untuk operasi ini"`
}

type NotFoundErrorResponse struct {
	Error string `json:"error" example:"User tidak ditemukan"`
}
