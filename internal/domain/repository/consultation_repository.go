package repository

import (
	"time"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
)

// ConsultationFilter filtros de listado para consultas veterinarias.
type ConsultationFilter struct {
	Status string
	Vet    string
	From   time.Time
	To     time.Time
}

// ConsultationRepository define el puerto de acceso a consultas.
type ConsultationRepository interface {
	Create(consultation *entity.Consultation) error
	GetByID(id string) (*entity.Consultation, error)
	Update(consultation *entity.Consultation) error
	List(filter ConsultationFilter, limit, offset int) ([]*entity.Consultation, error)
	Count() (int, error)
}
