package repository

import (
	"time"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
)

// GRNFilter filtros de listado para notas de entrada.
type GRNFilter struct {
	Status   string
	Supplier string
	From     time.Time
	To       time.Time
}

// GRNRepository define el puerto de acceso a notas de entrada.
type GRNRepository interface {
	Create(grn *entity.GRN) error
	GetByID(id string) (*entity.GRN, error)
	Update(grn *entity.GRN) error
	List(filter GRNFilter, limit, offset int) ([]*entity.GRN, error)
	Count() (int, error)
}
