package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createUserRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=6"`
	Phone    int64  `json:"phone"     validate:"omitempty,gte=0"`
	RoleID   int64  `json:"role"      validate:"required,gt=0"`
}

// updateUserRequest is a partial update: absent fields are left unchanged.
type updateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty"`
	Email    *string `json:"email"     validate:"omitempty,email"`
	Password *string `json:"password"  validate:"omitempty,min=6"`
	Phone    *int64  `json:"phone"     validate:"omitempty,gte=0"`
	RoleID   *int64  `json:"role"      validate:"omitempty,gt=0"`
}
