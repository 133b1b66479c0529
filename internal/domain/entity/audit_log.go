package entity

import "time"

// Severidades de un evento de auditoría.
const (
	AuditSeverityInfo     = "info"
	AuditSeverityWarning  = "warning"
	AuditSeverityCritical = "critical"
)

// Resultados de un evento de auditoría.
const (
	AuditStatusSuccess = "success"
	AuditStatusFailure = "failure"
	AuditStatusDenied  = "denied"
)

// AuditLog es una entrada inmutable del registro de auditoría.
// El orden de los campos coincide con las columnas del export CSV:
// Timestamp, User, Role, Action, Module, Resource Type, Details, Status, Severity, IP Address.
type AuditLog struct {
	ID           string
	Timestamp    time.Time
	User         string
	Role         Role
	Action       string // login, logout, navigate, create, update, delete, export, access_denied
	Module       string
	ResourceType string
	Details      string
	Status       string
	Severity     string
	IPAddress    string
}
