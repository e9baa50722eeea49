package clients

type CreateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	DepartmentID *int64 `json:"department_id"`
}

type UpdateClientRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	DepartmentID *int64  `json:"department_id"`
	IsActive     *bool   `json:"is_active"`
}
