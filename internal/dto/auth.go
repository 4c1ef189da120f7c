package dto

// LoginFormRequest carries the login form credentials.
type LoginFormRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
