package dto

// Request DTOs

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
	Role     string `json:"role" validate:"required,oneof=admin doctor patient customer"`
}

type UpdateUserRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	FullName string `json:"full_name" validate:"omitempty,min=2"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
	Role     string `json:"role" validate:"omitempty,oneof=admin doctor patient customer"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	TotalUsers int            `json:"total_users"`
}
