package request_models

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	DisplayName string `form:"display_name" json:"display_name" binding:"required,min=3,max=50"`
	Email       string `form:"email" json:"email" binding:"required,email"`
	Password    string `form:"password" json:"password" binding:"required,min=6"`
}
