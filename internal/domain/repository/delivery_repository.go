package repository

import (
	"time"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
)

// DeliveryFilter filtros de listado para notas de entrega.
type DeliveryFilter struct {
	Status   string
	Customer string
	From     time.Time
	To       time.Time
}

// DeliveryRepository define el puerto de acceso a notas de entrega.
type DeliveryRepository interface {
	Create(note *entity.DeliveryNote) error
	GetByID(id string) (*entity.DeliveryNote, error)
	Update(note *entity.DeliveryNote) error
	List(filter DeliveryFilter, limit, offset int) ([]*entity.DeliveryNote, error)
	Count() (int, error)
}
