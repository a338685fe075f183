package dto

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=150"`
	Password string `json:"password" binding:"required,min=8"`
	Gender   string `json:"gender" binding:"omitempty,oneof=male female other"`
	RoleID   int    `json:"roleId" binding:"required,oneof=1 2 3"`
}

type UpdateRoleRequest struct {
	RoleID int `json:"roleId" binding:"required,oneof=1 2 3"`
}

type UserListQuery struct {
	RoleID int    `form:"role" binding:"omitempty,oneof=1 2 3"`
	Search string `form:"search"`
	PageQuery
}
