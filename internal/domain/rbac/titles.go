package rbac

// ModuleTitle es el par (título, subtítulo) que consume el header.
type ModuleTitle struct {
	Title    string
	Subtitle string
}

// titles tabla estática módulo→título de header.
var titles = map[Module]ModuleTitle{
	ModuleDashboard:     {"Dashboard", "Overview of your pharmacy operations"},
	ModuleGRN:           {"Goods Received Notes", "Track incoming stock from suppliers"},
	ModuleDelivery:      {"Delivery Notes", "Manage outgoing deliveries to clinics"},
	ModuleInventory:     {"Inventory", "Stock levels, batches and expiry dates"},
	ModuleConsultations: {"Consultations", "Veterinary consultations and prescriptions"},
	ModuleUsers:         {"User Management", "Manage accounts and roles"},
	ModuleSettings:      {"Settings", "Pharmacy profile and preferences"},
	ModuleReports:       {"Reports", "Operational and financial reports"},
	ModuleAudit:         {"Audit Logs", "Traceability of system activity"},
}

// TitleFor devuelve el título del módulo. Para cualquier id no mapeado cae al
// par genérico de bienvenida, nunca a un string vacío.
func TitleFor(m Module) ModuleTitle {
	if t, ok := titles[m]; ok {
		return t
	}
	return ModuleTitle{Title: "VetPharm Pro", Subtitle: "Welcome to VetPharm Pro"}
}
