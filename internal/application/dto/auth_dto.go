package dto

// LoginRequest entrada para login contra la tabla de cuentas demo.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT, usuario y módulo activo tras login.
type LoginResponse struct {
	Token      string       `json:"token"`
	User       UserResponse `json:"user"`
	Navigation string       `json:"navigation"` // siempre "dashboard" tras login
}

// DemoAccountResponse entrada de la tabla demo para el pre-llenado del
// formulario de login. Expone la contraseña a propósito: son cuentas de
// demostración y la pantalla de login las ofrece como accesos de un clic.
type DemoAccountResponse struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// SessionResponse estado actual de la sesión y la navegación.
type SessionResponse struct {
	User       *UserResponse `json:"user"`
	Navigation string        `json:"navigation"`
	Modules    []string      `json:"modules"` // módulos visibles para el rol, orden de sidebar
}
