package auth

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/application/dto"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/internal/domain"
	"github.com/NadiyatulJenni/Cleaning-Data-and-FIFO/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credentials cuenta de servicio contra la que se valida el login. El hash
// es bcrypt; si está vacío el login queda deshabilitado.
type Credentials struct {
	Username     string
	PasswordHash string
	Role         string
}

// AuthUseCase emite tokens JWT para la cuenta de servicio configurada.
type AuthUseCase struct {
	creds  Credentials
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(creds Credentials, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{creds: creds, jwtCfg: jwtCfg}
}

// Enabled indica si hay credenciales configuradas.
func (uc *AuthUseCase) Enabled() bool {
	return uc.creds.PasswordHash != ""
}

// Login verifica username/password contra la cuenta de servicio y genera un
// JWT. Devuelve ErrUnauthorized si las credenciales no coinciden.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.Enabled() || in.Username != uc.creds.Username {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.creds.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uuid.New().String(), uc.creds.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   uc.jwtCfg.ExpMinutes * 60,
		Role:        uc.creds.Role,
	}, nil
}
