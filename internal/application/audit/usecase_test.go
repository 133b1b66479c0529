package audit_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetpharm/vetpharm-pro/internal/application/audit"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
	"github.com/vetpharm/vetpharm-pro/internal/infrastructure/memory"
)

func newAuditUC(seed ...entity.AuditLog) *audit.AuditUseCase {
	return audit.NewAuditUseCase(memory.NewAuditRepository(seed...))
}

func seedLogs(n int) []entity.AuditLog {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	logs := make([]entity.AuditLog, 0, n)
	for i := 0; i < n; i++ {
		logs = append(logs, entity.AuditLog{
			ID:           "log-" + string(rune('a'+i)),
			Timestamp:    base.Add(time.Duration(i) * time.Hour),
			User:         "Alicia Gómez",
			Role:         entity.RoleAdmin,
			Action:       "update",
			Module:       "inventory",
			ResourceType: "inventory_item",
			Details:      "Ajuste de stock",
			Status:       entity.AuditStatusSuccess,
			Severity:     entity.AuditSeverityInfo,
			IPAddress:    "10.0.0.1",
		})
	}
	return logs
}

// Record aplica defaults success/info y persiste la entrada.
func TestRecord_Defaults(t *testing.T) {
	repo := memory.NewAuditRepository()
	uc := audit.NewAuditUseCase(repo)

	err := uc.Record(audit.Entry{
		User:   "Marcos Rivera",
		Role:   entity.RoleStaff,
		Action: "create",
		Module: "grn",
	})
	require.NoError(t, err)

	logs, err := repo.List(repository.AuditFilter{}, 0, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AuditStatusSuccess, logs[0].Status)
	assert.Equal(t, entity.AuditSeverityInfo, logs[0].Severity)
	assert.NotEmpty(t, logs[0].ID)
	assert.False(t, logs[0].Timestamp.IsZero())
}

// List devuelve las entradas más recientes primero.
func TestList_MasRecientesPrimero(t *testing.T) {
	uc := newAuditUC(seedLogs(3)...)

	out, err := uc.List(repository.AuditFilter{}, 10, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	for i := 1; i < len(out.Items); i++ {
		assert.True(t, !out.Items[i-1].Timestamp.Before(out.Items[i].Timestamp),
			"el listado debe ir de más reciente a más antiguo")
	}
	assert.Equal(t, 3, out.Page.Total)
}

// CSV: N entradas producen exactamente N+1 líneas y cada fila tiene el mismo
// número de campos que la cabecera.
func TestExportCSV_LineasYCampos(t *testing.T) {
	const n = 4
	uc := newAuditUC(seedLogs(n)...)

	_, data, err := uc.ExportCSV(repository.AuditFilter{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, n+1, "cabecera + una línea por entrada")

	header := strings.Split(lines[0], ",")
	assert.Equal(t, []string{
		"Timestamp", "User", "Role", "Action", "Module",
		"Resource Type", "Details", "Status", "Severity", "IP Address",
	}, header)
	for i, line := range lines[1:] {
		assert.Len(t, strings.Split(line, ","), len(header),
			"la fila %d debe tener tantos campos como la cabecera", i+1)
	}
}

// Valores con comas quedan entre comillas y no rompen el conteo de campos.
func TestExportCSV_ComasEntreComillas(t *testing.T) {
	uc := newAuditUC(entity.AuditLog{
		ID:        "log-1",
		Timestamp: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		User:      "Gómez, Alicia",
		Role:      entity.RoleAdmin,
		Action:    "update",
		Module:    "settings",
		Details:   "Cambios: nombre, teléfono y email",
		Status:    entity.AuditStatusSuccess,
		Severity:  entity.AuditSeverityInfo,
		IPAddress: "10.0.0.1",
	})

	_, data, err := uc.ExportCSV(repository.AuditFilter{})
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `"Gómez, Alicia"`)
	assert.Contains(t, text, `"Cambios: nombre, teléfono y email"`)
}

// Export sin entradas: solo la cabecera.
func TestExportCSV_SinEntradas(t *testing.T) {
	uc := newAuditUC()

	_, data, err := uc.ExportCSV(repository.AuditFilter{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 1)
}

// El nombre del archivo usa el rango del filtro cuando está definido.
func TestExportCSV_NombreConRangoDelFiltro(t *testing.T) {
	uc := newAuditUC(seedLogs(2)...)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	filename, _, err := uc.ExportCSV(repository.AuditFilter{From: from, To: to})
	require.NoError(t, err)
	assert.Equal(t, "audit-log-2026-03-01-to-2026-03-31.csv", filename)
}

// Sin rango en el filtro, el nombre cae al rango de las propias entradas.
func TestExportCSV_NombreConRangoDeEntradas(t *testing.T) {
	uc := newAuditUC(seedLogs(3)...) // todas el 2026-03-10

	filename, _, err := uc.ExportCSV(repository.AuditFilter{})
	require.NoError(t, err)
	assert.Equal(t, "audit-log-2026-03-10-to-2026-03-10.csv", filename)
}

// Los filtros del listado aplican también al export.
func TestExportCSV_RespetaFiltros(t *testing.T) {
	logs := seedLogs(2)
	logs = append(logs, entity.AuditLog{
		ID:        "log-x",
		Timestamp: time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
		User:      "Tomás Herrera",
		Role:      entity.RoleAuditor,
		Action:    "export",
		Module:    "audit",
		Status:    entity.AuditStatusSuccess,
		Severity:  entity.AuditSeverityInfo,
	})
	uc := newAuditUC(logs...)

	_, data, err := uc.ExportCSV(repository.AuditFilter{Role: entity.RoleAuditor})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 2, "cabecera + solo la entrada del Auditor")
	assert.Contains(t, lines[1], "Tomás Herrera")
}
