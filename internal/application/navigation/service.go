// Package navigation media las transiciones del módulo activo y deriva el
// título del header. A diferencia de la pantalla original, el router valida el
// destino contra la política antes de mover el estado: la navegación nunca
// queda apuntando a un módulo que el guard tendría que corregir.
package navigation

import (
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/application/session"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/rbac"
)

// Service es el router de módulos: dueño de las transiciones de NavigationState.
type Service struct {
	store *session.Store
}

// NewService construye el servicio de navegación.
func NewService(store *session.Store) *Service {
	return &Service{store: store}
}

// NavigateTo intenta fijar el módulo activo. Idempotente: repetir el mismo
// destino no tiene efectos adicionales.
//
// Errores: ErrUnauthorized sin sesión, ErrNotFound para un id fuera del enum,
// ErrForbidden si la política niega el rol. En los tres casos el estado de
// navegación no cambia.
func (s *Service) NavigateTo(moduleID string) (*dto.NavigationResponse, error) {
	user := s.store.User()
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	m, ok := rbac.ParseModule(moduleID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if rbac.Guard(user, m) != rbac.Allow {
		return nil, domain.ErrForbidden
	}
	s.store.SetCurrent(m)
	return s.Current(), nil
}

// Current devuelve el módulo activo con su título derivado para el header.
func (s *Service) Current() *dto.NavigationResponse {
	m := s.store.Current()
	t := rbac.TitleFor(m)
	return &dto.NavigationResponse{
		Module:   string(m),
		Title:    t.Title,
		Subtitle: t.Subtitle,
	}
}
