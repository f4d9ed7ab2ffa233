package handler

type createRoleRequest struct {
	Name string `json:"name" validate:"required,min=2,max=25"`
}

// updateRoleRequest is a partial update: absent fields are left unchanged.
type updateRoleRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=25"`
}
