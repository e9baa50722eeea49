package admin

type CreateUserRequest struct {
	Username      string   `json:"username" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Password      string   `json:"password" binding:"required,min=8"`
	Name          string   `json:"name" binding:"required"`
	Phone         string   `json:"phone"`
	Roles         []string `json:"roles" binding:"required,min=1"`
	DepartmentIDs []int64  `json:"department_ids"`
	ClientID      *int64   `json:"client_id"`
}

type UpdateUserRequest struct {
	Email         *string  `json:"email"`
	Password      *string  `json:"password"`
	Name          *string  `json:"name"`
	Phone         *string  `json:"phone"`
	Roles         []string `json:"roles"`
	DepartmentIDs []int64  `json:"department_ids"`
	ClientID      *int64   `json:"client_id"`
	IsActive      *bool    `json:"is_active"`
}

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

type BlockIPRequest struct {
	IP     string `json:"ip" binding:"required"`
	Reason string `json:"reason"`
}
