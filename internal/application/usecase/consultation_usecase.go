package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// ConsultationUseCase casos de uso de consultas veterinarias.
type ConsultationUseCase struct {
	repo repository.ConsultationRepository
}

// NewConsultationUseCase construye el caso de uso.
func NewConsultationUseCase(repo repository.ConsultationRepository) *ConsultationUseCase {
	return &ConsultationUseCase{repo: repo}
}

// Create agenda una consulta. Vet, diagnóstico y tratamiento pueden faltar
// mientras esté agendada.
func (uc *ConsultationUseCase) Create(in dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	prescribed := make([]entity.PrescribedItem, 0, len(in.Prescribed))
	for _, p := range in.Prescribed {
		prescribed = append(prescribed, entity.PrescribedItem{
			ProductName: p.ProductName,
			Dosage:      p.Dosage,
			Duration:    p.Duration,
		})
	}
	count, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	consultation := &entity.Consultation{
		ID:          uuid.New().String(),
		Number:      fmt.Sprintf("CON-%d-%04d", now.Year(), count+1),
		PatientName: in.PatientName,
		Species:     in.Species,
		OwnerName:   in.OwnerName,
		Vet:         in.Vet,
		Date:        date,
		Prescribed:  prescribed,
		Status:      entity.ConsultationStatusScheduled,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(consultation); err != nil {
		return nil, err
	}
	return toConsultationResponse(consultation), nil
}

// GetByID obtiene una consulta por ID. nil sin error si no existe.
func (uc *ConsultationUseCase) GetByID(id string) (*dto.ConsultationResponse, error) {
	consultation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, nil
	}
	return toConsultationResponse(consultation), nil
}

// List devuelve el listado paginado según el filtro.
func (uc *ConsultationUseCase) List(filter repository.ConsultationFilter, limit, offset int) (*dto.ConsultationListResponse, error) {
	consultations, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConsultationResponse, 0, len(consultations))
	for _, c := range consultations {
		items = append(items, *toConsultationResponse(c))
	}
	return &dto.ConsultationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update completa o cancela una consulta agendada. Una consulta cerrada
// (completed o cancelled) ya no transiciona.
func (uc *ConsultationUseCase) Update(id string, in dto.UpdateConsultationRequest, by string) (*dto.ConsultationResponse, error) {
	consultation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, nil
	}

	if in.Status != consultation.Status {
		// scheduled puede ir a completed o cancelled; nada más se mueve.
		if consultation.Status != entity.ConsultationStatusScheduled {
			return nil, domain.ErrInvalidTransition
		}
		if in.Status != entity.ConsultationStatusCompleted && in.Status != entity.ConsultationStatusCancelled {
			return nil, domain.ErrInvalidTransition
		}
		now := time.Now()
		consultation.History = append(consultation.History, entity.StatusChange{
			From: consultation.Status, To: in.Status, By: by, Timestamp: now,
		})
		consultation.Status = in.Status
	}

	if in.Vet != "" {
		consultation.Vet = in.Vet
	}
	if in.Diagnosis != "" {
		consultation.Diagnosis = in.Diagnosis
	}
	if in.Treatment != "" {
		consultation.Treatment = in.Treatment
	}
	consultation.UpdatedAt = time.Now()
	if err := uc.repo.Update(consultation); err != nil {
		return nil, err
	}
	return toConsultationResponse(consultation), nil
}

func toConsultationResponse(c *entity.Consultation) *dto.ConsultationResponse {
	prescribed := make([]dto.PrescribedItemResponse, 0, len(c.Prescribed))
	for _, p := range c.Prescribed {
		prescribed = append(prescribed, dto.PrescribedItemResponse{
			ProductName: p.ProductName,
			Dosage:      orPlaceholder(p.Dosage, NotSpecified),
			Duration:    orPlaceholder(p.Duration, NotSpecified),
		})
	}
	return &dto.ConsultationResponse{
		ID:          c.ID,
		Number:      c.Number,
		PatientName: c.PatientName,
		Species:     c.Species,
		OwnerName:   c.OwnerName,
		Vet:         orPlaceholder(c.Vet, NotAssigned),
		Diagnosis:   orPlaceholder(c.Diagnosis, NotSpecified),
		Treatment:   orPlaceholder(c.Treatment, NotSpecified),
		Date:        c.Date,
		Prescribed:  prescribed,
		Status:      c.Status,
		History:     toHistoryResponse(c.History),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
