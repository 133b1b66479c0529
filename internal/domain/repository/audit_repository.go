package repository

import (
	"time"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
)

// AuditFilter filtros de consulta sobre el registro de auditoría.
type AuditFilter struct {
	User     string
	Role     entity.Role
	Action   string
	Module   string
	Severity string
	From     time.Time
	To       time.Time
}

// AuditRepository define el puerto del registro de auditoría (append-only).
type AuditRepository interface {
	Append(log *entity.AuditLog) error
	List(filter AuditFilter, limit, offset int) ([]*entity.AuditLog, error)
	Count(filter AuditFilter) (int, error)
}
