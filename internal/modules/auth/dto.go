package auth

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginView backs the login template: the username survives a failed attempt,
// Error carries the inline message.
type LoginView struct {
	Username string
	Error    string
}
