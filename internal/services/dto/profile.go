package dto

type CreateProfileRequest struct {
	Role        string   `json:"role" validate:"omitempty,oneof=worker hiring"`
	Categories  []string `json:"categories" binding:"required" validate:"required,min=1,dive,required"`
	DateOfBirth string   `json:"dateOfBirth" binding:"required" validate:"required,datetime=2006-01-02"`
	Mobile      string   `json:"mobile" binding:"required" validate:"required,mobile"`

	ProfilePhoto string   `json:"profilePhoto"`
	Bio          string   `json:"bio" validate:"omitempty,max=1000"`
	Skills       []string `json:"skills"`
	Experience   int      `json:"experience" validate:"omitempty,min=0,max=80"`
}

// UpdateProfileRequest is a partial merge: nil means "leave unchanged".
type UpdateProfileRequest struct {
	Categories   []string `json:"categories" validate:"omitempty,min=1,dive,required"`
	DateOfBirth  *string  `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Age          *int     `json:"age" validate:"omitempty,min=0,max=150"`
	Mobile       *string  `json:"mobile" validate:"omitempty,mobile"`
	ProfilePhoto *string  `json:"profilePhoto"`
	Bio          *string  `json:"bio" validate:"omitempty,max=1000"`
	Skills       []string `json:"skills"`
	Experience   *int     `json:"experience" validate:"omitempty,min=0,max=80"`
}

type SwitchRoleRequest struct {
	TargetRole string `json:"targetRole" binding:"required" validate:"required,oneof=worker hiring"`
}
