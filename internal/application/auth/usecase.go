package auth

import (
	"context"
	"time"

	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/application/session"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/rbac"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
	"github.com/vetpharm/vetpharm-pro/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login demo, logout y sesión.
//
// El login compara email y password en texto plano contra la tabla fija de
// cuentas de demostración. Sin hashing, sin rate limiting, sin lockout:
// aplicación demo, el contrato lo excluye a propósito.
type AuthUseCase struct {
	demoRepo repository.DemoAccountRepository
	store    *session.Store
	jwtCfg   JWTConfig
	delay    time.Duration // latencia artificial de login; 0 la desactiva
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(demoRepo repository.DemoAccountRepository, store *session.Store, jwtCfg JWTConfig, delay time.Duration) *AuthUseCase {
	return &AuthUseCase{demoRepo: demoRepo, store: store, jwtCfg: jwtCfg, delay: delay}
}

// Login verifica (email, password) por igualdad exacta contra la tabla demo.
// En match: la sesión se reemplaza, la navegación vuelve a dashboard y se
// genera el JWT. En fallo: ningún estado cambia.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.delay > 0 {
		select {
		case <-time.After(uc.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	account, err := uc.demoRepo.FindByEmail(in.Email)
	if err != nil || account == nil {
		return nil, domain.ErrUnauthorized
	}
	if account.Password != in.Password {
		return nil, domain.ErrUnauthorized
	}

	user := account.User
	uc.store.SetUser(&user)

	token, err := jwt.Generate(
		uc.jwtCfg.Secret,
		user.ID, user.Email, user.Name, string(user.Role),
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:      token,
		User:       *toUserResponse(&user),
		Navigation: string(rbac.DefaultModule),
	}, nil
}

// Logout limpia la sesión; el store reinicia la navegación a dashboard.
func (uc *AuthUseCase) Logout() {
	uc.store.Logout()
}

// DemoAccounts lista las cuentas demo para el pre-llenado del formulario de
// login. Operación de solo lectura: nunca autentica.
func (uc *AuthUseCase) DemoAccounts() []dto.DemoAccountResponse {
	accounts := uc.demoRepo.List()
	out := make([]dto.DemoAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.DemoAccountResponse{
			Email:    a.Email,
			Password: a.Password,
			Name:     a.User.Name,
			Role:     string(a.User.Role),
		})
	}
	return out
}

// Session devuelve el estado actual: usuario (o nil), módulo activo y los
// módulos visibles para el rol en orden de sidebar.
func (uc *AuthUseCase) Session() *dto.SessionResponse {
	user := uc.store.User()
	resp := &dto.SessionResponse{
		Navigation: string(uc.store.Current()),
		Modules:    []string{},
	}
	if user == nil {
		return resp
	}
	resp.User = toUserResponse(user)
	for _, m := range rbac.ModulesFor(user.Role) {
		resp.Modules = append(resp.Modules, string(m))
	}
	return resp
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Avatar:    u.Avatar,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
