// Package session mantiene la única fuente de verdad de "quién está logueado"
// y del módulo activo. Es el único estado mutable compartido entre módulos;
// toda mutación pasa por este contrato.
package session

import (
	"sync"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/rbac"
)

// Store retiene como máximo una identidad autenticada por proceso y el módulo
// de navegación activo. No hay persistencia: un reinicio pierde la sesión.
type Store struct {
	mu      sync.RWMutex
	user    *entity.User
	current rbac.Module
}

// NewStore crea un store vacío con la navegación en el módulo por defecto.
func NewStore() *Store {
	return &Store{current: rbac.DefaultModule}
}

// SetUser reemplaza la identidad retenida y reinicia la navegación al módulo
// por defecto. Exactamente una identidad activa a la vez.
func (s *Store) SetUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
	} else {
		cp := *u
		s.user = &cp
	}
	s.current = rbac.DefaultModule
}

// User devuelve una copia de la identidad actual, o nil si no hay sesión.
func (s *Store) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

// HasRole informa si hay usuario y su rol pertenece al conjunto dado.
// Sin usuario siempre devuelve false.
func (s *Store) HasRole(roles ...entity.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false
	}
	for _, r := range roles {
		if s.user.Role == r {
			return true
		}
	}
	return false
}

// Logout limpia la identidad incondicionalmente y reinicia la navegación al
// módulo por defecto. El store es dueño de ese reset, no el caller.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.current = rbac.DefaultModule
}

// Current devuelve el módulo de navegación activo.
func (s *Store) Current() rbac.Module {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetCurrent fija el módulo activo. El servicio de navegación valida contra la
// política antes de llamar aquí; el store no decide accesos.
func (s *Store) SetCurrent(m rbac.Module) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = m
}
