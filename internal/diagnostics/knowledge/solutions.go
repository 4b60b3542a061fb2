package knowledge

// Solution identifiers. Declaration order in solutionCatalog is the tie-break order.
const (
	SolutionRestaurant           = "restaurant-system"
	SolutionTechnicalService     = "technical-service-system"
	SolutionWorkshop             = "workshop-system"
	SolutionFactory              = "factory-system"
	SolutionRetail               = "retail-system"
	SolutionProfessionalServices = "professional-services-system"
	SolutionWebPresence          = "web-presence"
	SolutionOnlineStore          = "online-store"
	SolutionManagementDashboard  = "management-dashboard"
	SolutionInventoryControl     = "inventory-control"
)

func solutionCatalog() []Solution {
	return []Solution{
		{
			ID:          SolutionRestaurant,
			Title:       "Restaurant management system",
			Description: "Orders, kitchen display, tables and reservations in one place.",
			SystemType:  "Restaurant POS and operations",
			Modules:     []string{"orders", "kitchen-display", "reservations", "digital-menu", "delivery"},
		},
		{
			ID:          SolutionTechnicalService,
			Title:       "Service ticket system",
			Description: "Track every repair from intake to delivery with automatic customer updates.",
			SystemType:  "Field and bench service management",
			Modules:     []string{"tickets", "quotes", "customer-notifications", "spare-parts", "warranties"},
		},
		{
			ID:          SolutionWorkshop,
			Title:       "Workshop management system",
			Description: "Work orders, parts, vehicle history and invoicing for repair shops.",
			SystemType:  "Workshop management",
			Modules:     []string{"work-orders", "parts-inventory", "vehicle-history", "scheduling", "invoicing"},
		},
		{
			ID:          SolutionFactory,
			Title:       "Quoting and production system",
			Description: "Fast quotes from real costs, production planning and material control.",
			SystemType:  "Manufacturing quoting and planning",
			Modules:     []string{"quotes", "costing", "production-planning", "raw-materials", "quality"},
		},
		{
			ID:          SolutionRetail,
			Title:       "Retail point of sale",
			Description: "Sales, stock and suppliers connected to one point of sale.",
			SystemType:  "Retail POS and inventory",
			Modules:     []string{"pos", "stock", "suppliers", "loyalty", "sales-reports"},
		},
		{
			ID:          SolutionProfessionalServices,
			Title:       "Practice management system",
			Description: "Clients, meetings, time tracking and billing for professional firms.",
			SystemType:  "Professional services CRM",
			Modules:     []string{"crm", "scheduling", "time-tracking", "billing", "documents"},
		},
		{
			ID:          SolutionWebPresence,
			Title:       "Professional website",
			Description: "A fast website that gets you found and turns visits into contacts.",
			SystemType:  "Website and online presence",
			Modules:     []string{"website", "contact-forms", "seo", "whatsapp-button"},
		},
		{
			ID:          SolutionOnlineStore,
			Title:       "Online store",
			Description: "Sell your products online with payments and order tracking.",
			SystemType:  "E-commerce",
			Modules:     []string{"catalog", "checkout", "payments", "order-tracking"},
		},
		{
			ID:          SolutionManagementDashboard,
			Title:       "Management dashboard",
			Description: "Key numbers of the business in one screen, across locations and staff.",
			SystemType:  "Business intelligence dashboard",
			Modules:     []string{"kpis", "reports", "multi-location", "staff"},
		},
		{
			ID:          SolutionInventoryControl,
			Title:       "Inventory control",
			Description: "Know what you have, what you need and when to reorder.",
			SystemType:  "Inventory management",
			Modules:     []string{"stock", "reorder-points", "suppliers", "movements"},
		},
	}
}
