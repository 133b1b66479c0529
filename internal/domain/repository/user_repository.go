package repository

import "github.com/vetpharm/vetpharm-pro/internal/domain/entity"

// UserRepository define el puerto de acceso a usuarios gestionados (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.User, error)
	CountByRole(role entity.Role) (int, error)
}

// DemoAccountRepository expone la tabla fija de cuentas de demostración.
// Doble uso controlado: el login la consulta para autenticar y la UI la lista
// para pre-llenar el formulario; listar nunca autentica.
type DemoAccountRepository interface {
	List() []entity.DemoAccount
	FindByEmail(email string) (*entity.DemoAccount, error)
}
