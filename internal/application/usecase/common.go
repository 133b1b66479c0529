package usecase

// Placeholders para campos opcionales ausentes: la vista nunca muestra un
// string vacío ni falla por un dato faltante.
const (
	NotAssigned  = "Not assigned"
	NotSpecified = "Not specified"
)

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// canTransition tabla de transiciones hacia delante, sin saltos.
// Compartida por GRN (draft→received→verified) y entregas
// (pending→in_transit→delivered).
func canTransition(order []string, from, to string) bool {
	for i, s := range order {
		if s == from {
			return i+1 < len(order) && order[i+1] == to
		}
	}
	return false
}
