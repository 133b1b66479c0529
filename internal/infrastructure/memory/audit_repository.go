package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// AuditRepository registro de auditoría en memoria, append-only.
type AuditRepository struct {
	mu   sync.RWMutex
	logs []entity.AuditLog
}

// NewAuditRepository crea el repositorio, opcionalmente con entradas seed.
func NewAuditRepository(seed ...entity.AuditLog) *AuditRepository {
	return &AuditRepository{logs: append([]entity.AuditLog(nil), seed...)}
}

// Append agrega una entrada. Las entradas nunca se modifican ni se borran.
func (r *AuditRepository) Append(log *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

// List devuelve las entradas filtradas, más recientes primero. limit 0 = sin límite.
func (r *AuditRepository) List(filter repository.AuditFilter, limit, offset int) ([]*entity.AuditLog, error) {
	all := r.filtered(filter)
	return paginate(all, limit, offset), nil
}

// Count devuelve el total de entradas que pasan el filtro.
func (r *AuditRepository) Count(filter repository.AuditFilter) (int, error) {
	return len(r.filtered(filter)), nil
}

func (r *AuditRepository) filtered(filter repository.AuditFilter) []*entity.AuditLog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*entity.AuditLog
	for i := range r.logs {
		l := r.logs[i]
		if filter.User != "" && !strings.Contains(strings.ToLower(l.User), strings.ToLower(filter.User)) {
			continue
		}
		if filter.Role != "" && l.Role != filter.Role {
			continue
		}
		if filter.Action != "" && l.Action != filter.Action {
			continue
		}
		if filter.Module != "" && l.Module != filter.Module {
			continue
		}
		if filter.Severity != "" && l.Severity != filter.Severity {
			continue
		}
		if !filter.From.IsZero() && l.Timestamp.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && l.Timestamp.After(filter.To) {
			continue
		}
		cp := l
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Timestamp.After(all[j].Timestamp) })
	return all
}
