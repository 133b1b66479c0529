package dto

// NavigateRequest entrada para cambiar el módulo activo.
type NavigateRequest struct {
	Module string `json:"module" validate:"required"`
}

// NavigationResponse estado de navegación con el título derivado para el header.
type NavigationResponse struct {
	Module   string `json:"module"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}
