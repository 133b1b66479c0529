package memory

import "github.com/vetpharm/vetpharm-pro/internal/domain/entity"

// DemoAccountRepository tabla fija de cuentas de demostración.
// Inmutable tras la construcción; no necesita lock.
type DemoAccountRepository struct {
	accounts []entity.DemoAccount
}

// NewDemoAccountRepository crea el repositorio con la tabla dada.
func NewDemoAccountRepository(accounts []entity.DemoAccount) *DemoAccountRepository {
	return &DemoAccountRepository{accounts: accounts}
}

// List devuelve una copia de la tabla completa.
func (r *DemoAccountRepository) List() []entity.DemoAccount {
	out := make([]entity.DemoAccount, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// FindByEmail devuelve la cuenta con ese email exacto, o nil.
func (r *DemoAccountRepository) FindByEmail(email string) (*entity.DemoAccount, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			cp := a
			return &cp, nil
		}
	}
	return nil, nil
}
