package entity

import "time"

// Estados de una consulta veterinaria.
const (
	ConsultationStatusScheduled = "scheduled"
	ConsultationStatusCompleted = "completed"
	ConsultationStatusCancelled = "cancelled"
)

// PrescribedItem es un producto recetado durante la consulta.
type PrescribedItem struct {
	ProductName string
	Dosage      string
	Duration    string
}

// Consultation representa una consulta veterinaria.
// Diagnosis, Treatment y Vet son opcionales mientras la consulta está agendada;
// la capa de presentación muestra placeholders ("Not assigned" / "Not specified").
type Consultation struct {
	ID         string
	Number     string // ej. CON-2026-0001
	PatientName string
	Species    string // canine, feline, equine, ...
	OwnerName  string
	Vet        string // opcional hasta asignación
	Date       time.Time
	Diagnosis  string // opcional
	Treatment  string // opcional
	Prescribed []PrescribedItem
	Status     string
	History    []StatusChange
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
