// Package audit registra y consulta la traza de actividad del sistema y
// produce el export CSV que consume el módulo de auditoría.
package audit

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// csvHeader columnas del export, en este orden exacto.
var csvHeader = []string{
	"Timestamp", "User", "Role", "Action", "Module",
	"Resource Type", "Details", "Status", "Severity", "IP Address",
}

// Entry datos de un evento a registrar. Severity y Status caen a
// info/success si vienen vacíos.
type Entry struct {
	User         string
	Role         entity.Role
	Action       string
	Module       string
	ResourceType string
	Details      string
	Status       string
	Severity     string
	IPAddress    string
}

// AuditUseCase registro y consulta del log de auditoría.
type AuditUseCase struct {
	repo repository.AuditRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// Record agrega una entrada al registro. El registro es append-only; un fallo
// al auditar no debe tumbar la operación auditada, por eso devuelve el error
// para que el caller decida (los handlers solo lo loguean).
func (uc *AuditUseCase) Record(e Entry) error {
	if e.Status == "" {
		e.Status = entity.AuditStatusSuccess
	}
	if e.Severity == "" {
		e.Severity = entity.AuditSeverityInfo
	}
	return uc.repo.Append(&entity.AuditLog{
		ID:           uuid.New().String(),
		Timestamp:    time.Now(),
		User:         e.User,
		Role:         e.Role,
		Action:       e.Action,
		Module:       e.Module,
		ResourceType: e.ResourceType,
		Details:      e.Details,
		Status:       e.Status,
		Severity:     e.Severity,
		IPAddress:    e.IPAddress,
	})
}

// List devuelve las entradas filtradas, más recientes primero.
func (uc *AuditUseCase) List(filter repository.AuditFilter, limit, offset int) (*dto.AuditListResponse, error) {
	logs, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, dto.AuditLogResponse{
			ID:           l.ID,
			Timestamp:    l.Timestamp,
			User:         l.User,
			Role:         string(l.Role),
			Action:       l.Action,
			Module:       l.Module,
			ResourceType: l.ResourceType,
			Details:      l.Details,
			Status:       l.Status,
			Severity:     l.Severity,
			IPAddress:    l.IPAddress,
		})
	}
	return &dto.AuditListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// ExportCSV genera el CSV de las entradas filtradas: una línea de cabecera más
// una por entrada. Los valores con comas quedan entre comillas dobles
// (encoding/csv). Devuelve el nombre de descarga audit-log-<start>-to-<end>.csv.
func (uc *AuditUseCase) ExportCSV(filter repository.AuditFilter) (filename string, data []byte, err error) {
	logs, err := uc.repo.List(filter, 0, 0) // 0 = sin límite
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return "", nil, fmt.Errorf("audit: cabecera csv: %w", err)
	}
	for _, l := range logs {
		row := []string{
			l.Timestamp.Format("2006-01-02 15:04:05"),
			l.User,
			string(l.Role),
			l.Action,
			l.Module,
			l.ResourceType,
			l.Details,
			l.Status,
			l.Severity,
			l.IPAddress,
		}
		if err := w.Write(row); err != nil {
			return "", nil, fmt.Errorf("audit: fila csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, err
	}

	start, end := exportRange(filter, logs)
	filename = fmt.Sprintf("audit-log-%s-to-%s.csv",
		start.Format("2006-01-02"), end.Format("2006-01-02"))
	return filename, buf.Bytes(), nil
}

// exportRange resuelve el rango para el nombre del archivo: el del filtro si
// está definido, si no el de las propias entradas, y hoy como último recurso.
func exportRange(filter repository.AuditFilter, logs []*entity.AuditLog) (time.Time, time.Time) {
	start, end := filter.From, filter.To
	if start.IsZero() || end.IsZero() {
		for _, l := range logs {
			if start.IsZero() || l.Timestamp.Before(start) {
				start = l.Timestamp
			}
			if end.IsZero() || l.Timestamp.After(end) {
				end = l.Timestamp
			}
		}
	}
	now := time.Now()
	if start.IsZero() {
		start = now
	}
	if end.IsZero() {
		end = now
	}
	return start, end
}
