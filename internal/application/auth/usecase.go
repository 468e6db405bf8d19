// Package auth implementa el inicio de sesión con el esquema de credenciales
// demo: la contraseña aceptada de un usuario es la parte local de su email
// más un sufijo fijo configurado. No es autenticación real; emula el mock de
// la aplicación original. El hash bcrypt se guarda igual para que el dominio
// nunca vea contraseñas en plano.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellanos/terralote-api/internal/application/dto"
	"github.com/jcastellanos/terralote-api/internal/domain"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
	"github.com/jcastellanos/terralote-api/internal/domain/repository"
	"github.com/jcastellanos/terralote-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	jwtCfg     JWTConfig
	loginDelay time.Duration // latencia simulada del login demo
}

// NewAuthUseCase construye el caso de uso. loginDelayMS emula la latencia de
// red del mock original (0 = sin pausa).
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, loginDelayMS int) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		jwtCfg:     jwtCfg,
		loginDelay: time.Duration(loginDelayMS) * time.Millisecond,
	}
}

// DerivedPassword contraseña esperada bajo el esquema demo:
// parte local del email + sufijo fijo.
func DerivedPassword(email, suffix string) string {
	local := strings.SplitN(email, "@", 2)[0]
	return local + suffix
}

// Login verifica email/password contra el hash almacenado, genera el JWT y
// retorna token + usuario. La pausa simulada respeta la cancelación del contexto.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.loginDelay > 0 {
		timer := time.NewTimer(uc.loginDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("login cancelado: %w", ctx.Err())
		case <-timer.C:
		}
	}

	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  ToUserResponse(user),
	}, nil
}

// ToUserResponse proyección pública del usuario (sin hash).
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		Name:               u.Name,
		Role:               u.Role,
		Phone:              u.Phone,
		AssignedProjectIDs: u.AssignedProjectIDs,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
