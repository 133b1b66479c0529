package dto

import "time"

// PrescribedItemRequest producto recetado en una consulta.
type PrescribedItemRequest struct {
	ProductName string `json:"product_name" validate:"required,min=1,max=200"`
	Dosage      string `json:"dosage" validate:"omitempty,max=200"`
	Duration    string `json:"duration" validate:"omitempty,max=100"`
}

// CreateConsultationRequest entrada para agendar una consulta.
type CreateConsultationRequest struct {
	PatientName string                  `json:"patient_name" validate:"required,min=1,max=200"`
	Species     string                  `json:"species" validate:"required,max=100"`
	OwnerName   string                  `json:"owner_name" validate:"required,min=1,max=200"`
	Vet         string                  `json:"vet" validate:"omitempty,max=200"`
	Date        time.Time               `json:"date"`
	Prescribed  []PrescribedItemRequest `json:"prescribed" validate:"omitempty,dive"`
}

// UpdateConsultationRequest entrada para completar o cancelar una consulta.
type UpdateConsultationRequest struct {
	Status    string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
	Vet       string `json:"vet" validate:"omitempty,max=200"`
	Diagnosis string `json:"diagnosis" validate:"omitempty,max=2000"`
	Treatment string `json:"treatment" validate:"omitempty,max=2000"`
}

// PrescribedItemResponse producto recetado.
type PrescribedItemResponse struct {
	ProductName string `json:"product_name"`
	Dosage      string `json:"dosage"`   // "Not specified" si falta
	Duration    string `json:"duration"` // "Not specified" si falta
}

// ConsultationResponse salida de una consulta. Los campos opcionales ausentes
// llevan placeholder, nunca string vacío.
type ConsultationResponse struct {
	ID          string                   `json:"id"`
	Number      string                   `json:"number"`
	PatientName string                   `json:"patient_name"`
	Species     string                   `json:"species"`
	OwnerName   string                   `json:"owner_name"`
	Vet         string                   `json:"vet"`       // "Not assigned" si falta
	Diagnosis   string                   `json:"diagnosis"` // "Not specified" si falta
	Treatment   string                   `json:"treatment"` // "Not specified" si falta
	Date        time.Time                `json:"date"`
	Prescribed  []PrescribedItemResponse `json:"prescribed"`
	Status      string                   `json:"status"`
	History     []StatusChangeResponse   `json:"history"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// ConsultationListResponse listado paginado de consultas.
type ConsultationListResponse struct {
	Items []ConsultationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
