package dto

import "time"

// AuditLogResponse una entrada del registro de auditoría.
type AuditLogResponse struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	User         string    `json:"user"`
	Role         string    `json:"role"`
	Action       string    `json:"action"`
	Module       string    `json:"module"`
	ResourceType string    `json:"resource_type"`
	Details      string    `json:"details"`
	Status       string    `json:"status"`
	Severity     string    `json:"severity"`
	IPAddress    string    `json:"ip_address"`
}

// AuditListResponse listado paginado de auditoría.
type AuditListResponse struct {
	Items []AuditLogResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
