package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
)

// SeedData contiene los datos iniciales de la demo.
type SeedData struct {
	DemoAccounts  []entity.DemoAccount
	Users         []entity.User
	GRNs          []entity.GRN
	Deliveries    []entity.DeliveryNote
	Inventory     []entity.InventoryItem
	Consultations []entity.Consultation
	AuditLogs     []entity.AuditLog
	Settings      entity.Settings
}

// DefaultSeed construye los datos de demostración: las cuatro cuentas demo,
// inventario, documentos y consultas de ejemplo, y la configuración inicial.
func DefaultSeed(now time.Time) SeedData {
	demoUsers := []entity.User{
		{
			ID:        uuid.NewString(),
			Name:      "Alicia Gómez",
			Email:     "admin@vetpharm.com",
			Role:      entity.RoleAdmin,
			Avatar:    "https://i.pravatar.cc/150?u=admin",
			Status:    "active",
			CreatedAt: now.AddDate(-1, 0, 0),
			UpdatedAt: now.AddDate(-1, 0, 0),
		},
		{
			ID:        uuid.NewString(),
			Name:      "Marcos Rivera",
			Email:     "staff@vetpharm.com",
			Role:      entity.RoleStaff,
			Avatar:    "https://i.pravatar.cc/150?u=staff",
			Status:    "active",
			CreatedAt: now.AddDate(0, -8, 0),
			UpdatedAt: now.AddDate(0, -8, 0),
		},
		{
			ID:        uuid.NewString(),
			Name:      "Dra. Elena Vargas",
			Email:     "vet@vetpharm.com",
			Role:      entity.RoleVet,
			Avatar:    "https://i.pravatar.cc/150?u=vet",
			Status:    "active",
			CreatedAt: now.AddDate(0, -6, 0),
			UpdatedAt: now.AddDate(0, -6, 0),
		},
		{
			ID:        uuid.NewString(),
			Name:      "Tomás Herrera",
			Email:     "auditor@vetpharm.com",
			Role:      entity.RoleAuditor,
			Avatar:    "https://i.pravatar.cc/150?u=auditor",
			Status:    "active",
			CreatedAt: now.AddDate(0, -3, 0),
			UpdatedAt: now.AddDate(0, -3, 0),
		},
	}

	accounts := []entity.DemoAccount{
		{Email: "admin@vetpharm.com", Password: "admin123", User: demoUsers[0]},
		{Email: "staff@vetpharm.com", Password: "staff123", User: demoUsers[1]},
		{Email: "vet@vetpharm.com", Password: "vet123", User: demoUsers[2]},
		{Email: "auditor@vetpharm.com", Password: "auditor123", User: demoUsers[3]},
	}

	inventory := []entity.InventoryItem{
		{
			ID:           uuid.NewString(),
			SKU:          "AMX-500",
			Name:         "Amoxicilina 500mg",
			Category:     "antibiotic",
			Batch:        "B-2301",
			ExpiryDate:   now.AddDate(0, 2, 0),
			Stock:        decimal.NewFromInt(40),
			ReorderLevel: decimal.NewFromInt(20),
			UnitPrice:    decimal.NewFromFloat(12.50),
			Supplier:     "FarmaVet S.A.",
			CreatedAt:    now.AddDate(0, -4, 0),
			UpdatedAt:    now.AddDate(0, -1, 0),
		},
		{
			ID:           uuid.NewString(),
			SKU:          "IVM-10",
			Name:         "Ivermectina 1% 10ml",
			Category:     "antiparasitic",
			Batch:        "B-2288",
			ExpiryDate:   now.AddDate(1, 6, 0),
			Stock:        decimal.NewFromInt(8),
			ReorderLevel: decimal.NewFromInt(15),
			UnitPrice:    decimal.NewFromFloat(7.80),
			Supplier:     "AgroSalud Ltda.",
			CreatedAt:    now.AddDate(0, -4, 0),
			UpdatedAt:    now.AddDate(0, 0, -10),
		},
		{
			ID:           uuid.NewString(),
			SKU:          "VAC-RAB",
			Name:         "Vacuna antirrábica",
			Category:     "vaccine",
			Batch:        "VR-0917",
			ExpiryDate:   now.AddDate(0, 1, 15),
			Stock:        decimal.NewFromInt(25),
			ReorderLevel: decimal.NewFromInt(10),
			UnitPrice:    decimal.NewFromFloat(18.00),
			Supplier:     "BioVet Labs",
			CreatedAt:    now.AddDate(0, -2, 0),
			UpdatedAt:    now.AddDate(0, -2, 0),
		},
		{
			ID:           uuid.NewString(),
			SKU:          "OMG-3",
			Name:         "Suplemento Omega 3",
			Category:     "supplement",
			Batch:        "S-1140",
			ExpiryDate:   now.AddDate(2, 0, 0),
			Stock:        decimal.NewFromInt(60),
			ReorderLevel: decimal.NewFromInt(12),
			UnitPrice:    decimal.NewFromFloat(9.90),
			CreatedAt:    now.AddDate(0, -5, 0),
			UpdatedAt:    now.AddDate(0, -5, 0),
		},
	}

	grnQty := decimal.NewFromInt(30)
	grnCost := decimal.NewFromFloat(10.00)
	grnNet := grnQty.Mul(grnCost).Round(2)
	grnTax := grnNet.Mul(decimal.NewFromFloat(0.19)).Round(2)
	grns := []entity.GRN{
		{
			ID:       uuid.NewString(),
			Number:   "GRN-2026-0001",
			Supplier: "FarmaVet S.A.",
			OrderRef: "PO-7741",
			Date:     now.AddDate(0, 0, -12),
			Status:   entity.GRNStatusReceived,
			Lines: []entity.GRNLine{
				{
					ProductName: "Amoxicilina 500mg",
					SKU:         "AMX-500",
					Batch:       "B-2301",
					ExpiryDate:  now.AddDate(0, 2, 0),
					Quantity:    grnQty,
					UnitCost:    grnCost,
					TaxRate:     decimal.NewFromFloat(0.19),
					Subtotal:    grnNet,
				},
			},
			NetTotal:   grnNet,
			TaxTotal:   grnTax,
			GrandTotal: grnNet.Add(grnTax),
			History: []entity.StatusChange{
				{From: entity.GRNStatusDraft, To: entity.GRNStatusReceived, By: "Marcos Rivera", Timestamp: now.AddDate(0, 0, -11)},
			},
			ReceivedBy: "Marcos Rivera",
			CreatedAt:  now.AddDate(0, 0, -12),
			UpdatedAt:  now.AddDate(0, 0, -11),
		},
		{
			ID:       uuid.NewString(),
			Number:   "GRN-2026-0002",
			Supplier: "BioVet Labs",
			Date:     now.AddDate(0, 0, -3),
			Status:   entity.GRNStatusDraft,
			Lines: []entity.GRNLine{
				{
					ProductName: "Vacuna antirrábica",
					SKU:         "VAC-RAB",
					Batch:       "VR-0921",
					ExpiryDate:  now.AddDate(0, 10, 0),
					Quantity:    decimal.NewFromInt(15),
					UnitCost:    decimal.NewFromFloat(14.00),
					TaxRate:     decimal.NewFromFloat(0.05),
					Subtotal:    decimal.NewFromFloat(210.00),
				},
			},
			NetTotal:   decimal.NewFromFloat(210.00),
			TaxTotal:   decimal.NewFromFloat(10.50),
			GrandTotal: decimal.NewFromFloat(220.50),
			CreatedAt:  now.AddDate(0, 0, -3),
			UpdatedAt:  now.AddDate(0, 0, -3),
		},
	}

	dnQty := decimal.NewFromInt(5)
	dnPrice := decimal.NewFromFloat(18.00)
	dnNet := dnQty.Mul(dnPrice).Round(2)
	deliveries := []entity.DeliveryNote{
		{
			ID:       uuid.NewString(),
			Number:   "DN-2026-0001",
			Customer: "Clínica Patitas Felices",
			Address:  "Calle 45 #12-30",
			Date:     now.AddDate(0, 0, -5),
			Status:   entity.DeliveryStatusInTransit,
			Lines: []entity.DeliveryLine{
				{
					ProductName: "Vacuna antirrábica",
					SKU:         "VAC-RAB",
					Batch:       "VR-0917",
					Quantity:    dnQty,
					UnitPrice:   dnPrice,
					Subtotal:    dnNet,
				},
			},
			NetTotal:   dnNet,
			GrandTotal: dnNet,
			History: []entity.StatusChange{
				{From: entity.DeliveryStatusPending, To: entity.DeliveryStatusInTransit, By: "Marcos Rivera", Timestamp: now.AddDate(0, 0, -4)},
			},
			Courier: "Express Vet",
			CreatedAt: now.AddDate(0, 0, -5),
			UpdatedAt: now.AddDate(0, 0, -4),
		},
		{
			ID:       uuid.NewString(),
			Number:   "DN-2026-0002",
			Customer: "Veterinaria El Roble",
			Date:     now.AddDate(0, 0, -1),
			Status:   entity.DeliveryStatusPending,
			Lines: []entity.DeliveryLine{
				{
					ProductName: "Suplemento Omega 3",
					SKU:         "OMG-3",
					Batch:       "S-1140",
					Quantity:    decimal.NewFromInt(10),
					UnitPrice:   decimal.NewFromFloat(9.90),
					Subtotal:    decimal.NewFromFloat(99.00),
				},
			},
			NetTotal:   decimal.NewFromFloat(99.00),
			GrandTotal: decimal.NewFromFloat(99.00),
			CreatedAt:  now.AddDate(0, 0, -1),
			UpdatedAt:  now.AddDate(0, 0, -1),
		},
	}

	consultations := []entity.Consultation{
		{
			ID:          uuid.NewString(),
			Number:      "CON-2026-0001",
			PatientName: "Rocky",
			Species:     "canine",
			OwnerName:   "Julia Mendoza",
			Vet:         "Dra. Elena Vargas",
			Date:        now.AddDate(0, 0, -2),
			Diagnosis:   "Otitis externa",
			Treatment:   "Limpieza y gotas óticas por 7 días",
			Prescribed: []entity.PrescribedItem{
				{ProductName: "Amoxicilina 500mg", Dosage: "1 tableta cada 12h", Duration: "7 días"},
			},
			Status: entity.ConsultationStatusCompleted,
			History: []entity.StatusChange{
				{From: entity.ConsultationStatusScheduled, To: entity.ConsultationStatusCompleted, By: "Dra. Elena Vargas", Timestamp: now.AddDate(0, 0, -2)},
			},
			CreatedAt: now.AddDate(0, 0, -4),
			UpdatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID:          uuid.NewString(),
			Number:      "CON-2026-0002",
			PatientName: "Misha",
			Species:     "feline",
			OwnerName:   "Carlos Pinto",
			Date:        now.AddDate(0, 0, 2),
			Status:      entity.ConsultationStatusScheduled,
			CreatedAt:   now.AddDate(0, 0, -1),
			UpdatedAt:   now.AddDate(0, 0, -1),
		},
	}

	audits := []entity.AuditLog{
		{
			ID:        uuid.NewString(),
			Timestamp: now.AddDate(0, 0, -2),
			User:      "Dra. Elena Vargas",
			Role:      entity.RoleVet,
			Action:    "update",
			Module:    "consultations",
			ResourceType: "consultation",
			Details:   "Consulta CON-2026-0001 completada",
			Status:    entity.AuditStatusSuccess,
			Severity:  entity.AuditSeverityInfo,
			IPAddress: "192.168.1.24",
		},
		{
			ID:        uuid.NewString(),
			Timestamp: now.AddDate(0, 0, -1),
			User:      "Marcos Rivera",
			Role:      entity.RoleStaff,
			Action:    "create",
			Module:    "delivery",
			ResourceType: "delivery_note",
			Details:   "Nota de entrega DN-2026-0002 creada",
			Status:    entity.AuditStatusSuccess,
			Severity:  entity.AuditSeverityInfo,
			IPAddress: "192.168.1.31",
		},
		{
			ID:        uuid.NewString(),
			Timestamp: now.Add(-6 * time.Hour),
			User:      "Marcos Rivera",
			Role:      entity.RoleStaff,
			Action:    "access_denied",
			Module:    "users",
			ResourceType: "module",
			Details:   "Acceso denegado al módulo users",
			Status:    entity.AuditStatusDenied,
			Severity:  entity.AuditSeverityWarning,
			IPAddress: "192.168.1.31",
		},
	}

	settings := entity.Settings{
		PharmacyName:    "VetPharm Pro",
		Address:         "Av. Central 120, Local 4",
		Phone:           "+57 601 555 0142",
		Email:           "contacto@vetpharm.com",
		TaxID:           "901.456.789-1",
		AutoRefreshSecs: 60,
		QuietHoursFrom:  "22:00",
		QuietHoursTo:    "07:00",
		LowStockAlerts:  true,
		ExpiryAlerts:    true,
		UpdatedAt:       now.AddDate(0, -1, 0),
		UpdatedBy:       "Alicia Gómez",
	}

	return SeedData{
		DemoAccounts:  accounts,
		Users:         demoUsers,
		GRNs:          grns,
		Deliveries:    deliveries,
		Inventory:     inventory,
		Consultations: consultations,
		AuditLogs:     audits,
		Settings:      settings,
	}
}
