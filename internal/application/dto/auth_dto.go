package dto

// LoginRequest credenciales de la cuenta de servicio.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token JWT emitido para consumir la API.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // siempre "Bearer"
	ExpiresIn   int    `json:"expires_in"` // segundos
	Role        string `json:"role"`
}
