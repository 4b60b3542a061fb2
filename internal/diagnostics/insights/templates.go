package insights

type template struct {
	title        string
	situation    string
	opportunity  string
	description  string
	improvements []string
	tool         string
	toolDesc     string
	benefits     []string
	image        string
}

// templates are keyed by question id. Questions without an entry use genericTemplate.
var templates = map[string]template{
	// restaurant
	"orderHandling": {
		title:        "Orders get lost between the floor and the kitchen",
		situation:    "Orders are handled with: %s. Every hand-off is a chance to forget or misread a dish.",
		opportunity:  "Digital order taking",
		description:  "Send every order straight from the table to the kitchen screen.",
		improvements: []string{"No lost or misread orders", "Faster table turnover", "Sales recorded automatically"},
		tool:         "Restaurant POS with kitchen display",
		toolDesc:     "Waiters take orders on a tablet and the kitchen sees them instantly.",
		benefits:     []string{"Fewer mistakes", "Shorter waiting times", "Daily sales report"},
		image:        "busy restaurant kitchen receiving orders on a screen",
	},
	"menuFormat": {
		title:        "Your menu is hard to update",
		situation:    "Your menu is shown as: %s. Every price change means reprinting.",
		opportunity:  "Digital menu",
		description:  "Publish a menu you can change in seconds from your phone.",
		improvements: []string{"Instant price updates", "No printing costs", "Photos that sell"},
		tool:         "QR digital menu",
		toolDesc:     "An interactive menu linked to your POS.",
		benefits:     []string{"Always up to date", "Highlights specials"},
		image:        "customer scanning a QR code menu at a table",
	},
	"reservations": {
		title:        "Reservations depend on someone answering the phone",
		situation:    "Reservations are taken through: %s. Double bookings and no-shows go unnoticed.",
		opportunity:  "Online reservations",
		description:  "Let customers book a table themselves at any hour.",
		improvements: []string{"Bookings while you are closed", "Automatic reminders", "Fewer no-shows"},
		tool:         "Reservation module",
		toolDesc:     "Online booking with table plan and reminders.",
		benefits:     []string{"Full tables", "Less time on the phone"},
		image:        "restaurant host checking a tablet with the reservation plan",
	},
	"deliveryChannels": {
		title:        "Delivery eats into your margin",
		situation:    "Delivery runs through: %s.",
		opportunity:  "Own delivery channel",
		description:  "Take delivery orders on your own channel and keep the commission.",
		improvements: []string{"No third-party commission", "Orders go straight to the kitchen", "Customer data stays yours"},
		tool:         "Online ordering",
		toolDesc:     "Your own ordering page connected to the kitchen.",
		benefits:     []string{"Better margins", "Repeat customers"},
		image:        "delivery courier picking up a bag at a restaurant counter",
	},
	"inventoryTracking": {
		title:        "Ingredients run out in the middle of service",
		situation:    "Ingredients are tracked with: %s.",
		opportunity:  "Ingredient stock control",
		description:  "Know what you have and reorder before it runs out.",
		improvements: []string{"No surprise shortages", "Less waste", "Purchase lists generated from sales"},
		tool:         "Inventory linked to recipes",
		toolDesc:     "Every sale discounts the ingredients it uses.",
		benefits:     []string{"Lower food cost", "Fewer stock-outs"},
		image:        "chef checking shelves of ingredients in a pantry",
	},

	// technical service
	"serviceTracking": {
		title:        "Repairs slip through the cracks",
		situation:    "Service requests are tracked with: %s. Jobs get forgotten or delayed.",
		opportunity:  "Ticket tracking for every repair",
		description:  "Register every job with its status, technician and deadline.",
		improvements: []string{"No lost jobs", "Clear workload per technician", "History of every customer"},
		tool:         "Service ticket system",
		toolDesc:     "Tickets from intake to delivery with status changes.",
		benefits:     []string{"On-time deliveries", "Fewer complaints"},
		image:        "technician bench with devices tagged with ticket labels",
	},
	"quoteTurnaround": {
		title:        "Slow quotes lose customers",
		situation:    "Sending a quote takes: %s. Customers go elsewhere while they wait.",
		opportunity:  "Same-day quotes",
		description:  "Build quotes from price lists and templates in minutes.",
		improvements: []string{"Quotes in minutes", "Consistent prices", "Approval by link"},
		tool:         "Quote builder",
		toolDesc:     "Templates and parts prices to quote on the spot.",
		benefits:     []string{"Higher acceptance rate", "Less admin time"},
		image:        "technician sending a quote from a tablet",
	},
	"customerUpdates": {
		title:        "Customers keep calling to ask about their repair",
		situation:    "Customers learn about their repair through: %s.",
		opportunity:  "Automatic customer updates",
		description:  "Notify customers automatically at every status change.",
		improvements: []string{"Fewer calls", "Happier customers", "Faster pickups"},
		tool:         "Customer notifications",
		toolDesc:     "Messages sent when a repair changes status.",
		benefits:     []string{"Less phone time", "Better reviews"},
		image:        "customer receiving a repair status message on a phone",
	},
	"sparePartsControl": {
		title:        "Spare parts are never where you expect",
		situation:    "Spare parts are controlled by: %s.",
		opportunity:  "Parts inventory control",
		description:  "Track parts per job and reorder on time.",
		improvements: []string{"Parts reserved per job", "Reorder alerts", "Real parts cost per repair"},
		tool:         "Parts inventory",
		toolDesc:     "Stock of spare parts linked to tickets.",
		benefits:     []string{"Fewer delays", "Less capital tied up"},
		image:        "organized shelves of labeled spare parts",
	},
	"warrantyTracking": {
		title:        "Warranty claims are hard to verify",
		situation:    "Warranties are tracked with: %s.",
		opportunity:  "Warranty records",
		description:  "Keep every warranty linked to the job that created it.",
		improvements: []string{"Instant warranty checks", "No free rework by mistake"},
		tool:         "Warranty module",
		toolDesc:     "Warranty dates stored with each completed repair.",
		benefits:     []string{"Fewer disputes", "Less rework"},
		image:        "technician checking a warranty record on screen",
	},

	// workshop
	"workOrders": {
		title:        "Work orders live in people's heads",
		situation:    "Work orders are handled: %s. Jobs are forgotten and hours go unrecorded.",
		opportunity:  "Digital work orders",
		description:  "Create, assign and close work orders from any device.",
		improvements: []string{"Every job assigned", "Labor hours recorded", "Status visible to the front desk"},
		tool:         "Workshop management system",
		toolDesc:     "Work orders, mechanics and bays in one board.",
		benefits:     []string{"More jobs per day", "Accurate invoices"},
		image:        "mechanic reading a work order on a tablet next to a car",
	},
	"partsInventory": {
		title:        "Parts shortages stop jobs halfway",
		situation:    "The parts inventory is managed with: %s.",
		opportunity:  "Parts inventory control",
		description:  "Know which parts you hold and which jobs need them.",
		improvements: []string{"Reorder alerts", "Parts cost per job", "Less dead stock"},
		tool:         "Parts inventory",
		toolDesc:     "Stock of parts linked to work orders.",
		benefits:     []string{"Fewer stalled jobs", "Lower inventory cost"},
		image:        "workshop parts shelves with barcode labels",
	},
	"vehicleHistory": {
		title:        "No history of past jobs",
		situation:    "Vehicle or machine history is kept as: %s.",
		opportunity:  "Service history per vehicle",
		description:  "Keep every past job, part and note per vehicle.",
		improvements: []string{"Faster diagnosis", "Maintenance reminders", "Trust from returning customers"},
		tool:         "Vehicle history",
		toolDesc:     "Complete service record searchable by plate or serial.",
		benefits:     []string{"Repeat business", "Fewer repeated checks"},
		image:        "mechanic reviewing a vehicle service history",
	},
	"workshopScheduling": {
		title:        "Booking a slot takes too many calls",
		situation:    "Customers book through: %s.",
		opportunity:  "Online appointment booking",
		description:  "Let customers pick a free slot online.",
		improvements: []string{"Bays used evenly", "Automatic reminders"},
		tool:         "Online scheduling",
		toolDesc:     "Booking page connected to workshop capacity.",
		benefits:     []string{"Fewer idle hours", "Less phone time"},
		image:        "customer booking a workshop appointment on a phone",
	},
	"workshopInvoicing": {
		title:        "Invoicing takes hours and misses items",
		situation:    "Jobs are invoiced with: %s.",
		opportunity:  "Invoices from work orders",
		description:  "Turn a closed work order into an invoice with one click.",
		improvements: []string{"No forgotten parts or hours", "Invoices sent the same day"},
		tool:         "Invoicing module",
		toolDesc:     "Invoices generated from labor and parts.",
		benefits:     []string{"Faster payment", "Complete billing"},
		image:        "invoice printed at a workshop front desk",
	},

	// factory
	"quoting": {
		title:        "Quotes are built from scratch every time",
		situation:    "Quotes are prepared: %s. Each one takes hours and depends on one person.",
		opportunity:  "Automate quotes and costing",
		description:  "Generate quotes from real material and labor costs.",
		improvements: []string{"Quotes in minutes", "Consistent margins", "Less dependence on one person"},
		tool:         "Quoting system",
		toolDesc:     "Quotes calculated from bills of materials and routings.",
		benefits:     []string{"More quotes sent", "Higher win rate"},
		image:        "factory office preparing a quote with product drawings",
	},
	"costCalculation": {
		title:        "You do not know the real cost of each product",
		situation:    "Production costs are calculated with: %s.",
		opportunity:  "Automate quotes and costing",
		description:  "Calculate real costs per product from materials, labor and overhead.",
		improvements: []string{"Real margins per product", "Prices based on data"},
		tool:         "Costing module",
		toolDesc:     "Cost per product updated with every purchase.",
		benefits:     []string{"No loss-making orders", "Better pricing"},
		image:        "production manager reviewing cost breakdown charts",
	},
	"productionPlanning": {
		title:        "Production is always running late",
		situation:    "Production is planned with: %s.",
		opportunity:  "Production planning",
		description:  "Plan orders against machine and staff capacity.",
		improvements: []string{"Realistic delivery dates", "Fewer rush jobs", "Visible bottlenecks"},
		tool:         "Planning board",
		toolDesc:     "Visual schedule of orders per machine.",
		benefits:     []string{"On-time deliveries", "Less overtime"},
		image:        "factory floor with a digital production schedule on a screen",
	},
	"rawMaterials": {
		title:        "Raw materials run out or pile up",
		situation:    "Raw materials are controlled with: %s.",
		opportunity:  "Raw material control",
		description:  "Track materials per order and buy what production needs.",
		improvements: []string{"No stoppages for missing material", "Less excess stock"},
		tool:         "Materials inventory",
		toolDesc:     "Material stock consumed by production orders.",
		benefits:     []string{"Lower inventory cost", "Continuous production"},
		image:        "warehouse of raw materials with labeled racks",
	},
	"qualityControl": {
		title:        "Quality problems are found too late",
		situation:    "Quality checks are recorded as: %s.",
		opportunity:  "Digital quality records",
		description:  "Record checks at each step and trace defects to their cause.",
		improvements: []string{"Traceability", "Fewer returns"},
		tool:         "Quality checklists",
		toolDesc:     "Digital checklists per production step.",
		benefits:     []string{"Less scrap", "Happier customers"},
		image:        "quality inspector using a tablet checklist",
	},

	// retail
	"salesRecording": {
		title:        "You cannot see what is selling",
		situation:    "Sales are recorded with: %s.",
		opportunity:  "Connect sales and stock",
		description:  "Record every sale and see best sellers in real time.",
		improvements: []string{"Daily sales report", "Best sellers at a glance", "Faster checkout"},
		tool:         "Retail POS",
		toolDesc:     "Point of sale with products, prices and reports.",
		benefits:     []string{"Better buying decisions", "Shorter lines"},
		image:        "shop counter with a modern point of sale",
	},
	"stockControl": {
		title:        "Best sellers run out without warning",
		situation:    "Stock is controlled with: %s.",
		opportunity:  "Connect sales and stock",
		description:  "Let every sale update stock and alert you before it runs out.",
		improvements: []string{"Reorder alerts", "Less dead stock"},
		tool:         "Stock control",
		toolDesc:     "Inventory updated by every sale.",
		benefits:     []string{"Fewer lost sales", "Lower stock cost"},
		image:        "store shelves with a stock level chart",
	},
	"onlineSales": {
		title:        "Customers cannot buy from you online",
		situation:    "Online sales today: %s.",
		opportunity:  "Sell online",
		description:  "Open an online store connected to your shop stock.",
		improvements: []string{"Sales outside opening hours", "New customers beyond your area"},
		tool:         "Online store",
		toolDesc:     "E-commerce with payments linked to your POS.",
		benefits:     []string{"New revenue", "Wider reach"},
		image:        "online store on a laptop next to shopping bags",
	},
	"supplierOrders": {
		title:        "Supplier orders are made in a rush",
		situation:    "Supplier orders are placed: %s.",
		opportunity:  "Planned purchasing",
		description:  "Generate purchase orders from reorder points.",
		improvements: []string{"Better supplier terms", "Fewer urgent orders"},
		tool:         "Purchasing module",
		toolDesc:     "Purchase suggestions from sales and stock.",
		benefits:     []string{"Lower purchase cost", "Less time ordering"},
		image:        "store owner reviewing a purchase order",
	},
	"customerLoyalty": {
		title:        "Customers do not come back often enough",
		situation:    "Loyalty today: %s.",
		opportunity:  "Digital loyalty program",
		description:  "Reward repeat customers automatically at checkout.",
		improvements: []string{"Repeat purchases", "Customer contact data"},
		tool:         "Loyalty program",
		toolDesc:     "Points and rewards linked to the POS.",
		benefits:     []string{"Higher ticket", "More visits"},
		image:        "customer collecting loyalty points on a phone at checkout",
	},

	// professional services
	"clientManagement": {
		title:        "Follow-ups depend on memory",
		situation:    "Clients are tracked with: %s. Follow-ups are missed and opportunities go cold.",
		opportunity:  "Client management and follow-up",
		description:  "Keep every client, matter and next step in one place.",
		improvements: []string{"Reminders for every follow-up", "Full client history", "Pipeline visibility"},
		tool:         "Practice CRM",
		toolDesc:     "Clients, matters and tasks in one system.",
		benefits:     []string{"More closed engagements", "No forgotten clients"},
		image:        "consultant reviewing a client dashboard",
	},
	"meetingScheduling": {
		title:        "Scheduling meetings takes endless back-and-forth",
		situation:    "Meetings are booked through: %s.",
		opportunity:  "Online meeting booking",
		description:  "Share a booking page with your real availability.",
		improvements: []string{"No scheduling emails", "Automatic reminders"},
		tool:         "Booking page",
		toolDesc:     "Clients pick a slot that syncs with your calendar.",
		benefits:     []string{"More billable time", "Fewer no-shows"},
		image:        "calendar with client meetings booked online",
	},
	"billing": {
		title:        "Billing is slow and payments arrive late",
		situation:    "Clients are billed with: %s.",
		opportunity:  "Billing from tracked time",
		description:  "Issue invoices from recorded work in a few clicks.",
		improvements: []string{"Invoices the same day", "Payment reminders"},
		tool:         "Billing system",
		toolDesc:     "Invoices generated from matters and hours.",
		benefits:     []string{"Faster collection", "Less admin"},
		image:        "professional sending an invoice from a laptop",
	},
	"timeTracking": {
		title:        "Billable hours go unbilled",
		situation:    "Billable hours are tracked with: %s.",
		opportunity:  "Billing from tracked time",
		description:  "Record time per client and matter as you work.",
		improvements: []string{"Every hour billed", "Profitability per client"},
		tool:         "Time tracking",
		toolDesc:     "Timers and timesheets linked to billing.",
		benefits:     []string{"Higher revenue", "Accurate quotes"},
		image:        "timer running on a desk next to client files",
	},
	"documentManagement": {
		title:        "Client documents are hard to find",
		situation:    "Client documents are kept in: %s.",
		opportunity:  "Organized document storage",
		description:  "Store documents per client with search and permissions.",
		improvements: []string{"Find any file in seconds", "Secure sharing with clients"},
		tool:         "Document management",
		toolDesc:     "Cloud folders per client and matter.",
		benefits:     []string{"Less searching", "Fewer lost files"},
		image:        "organized digital folders on a screen",
	},

	// transversal
	"webPresence": {
		title:        "Customers cannot find you online",
		situation:    "Your online presence today: %s.",
		opportunity:  "Professional online presence",
		description:  "A website that shows what you do and captures contacts.",
		improvements: []string{"Found on search engines", "Contact forms and WhatsApp button", "Credibility with new customers"},
		tool:         "Professional website",
		toolDesc:     "Fast website with contact capture.",
		benefits:     []string{"More leads", "Better first impression"},
		image:        "small business website shown on a phone and laptop",
	},
}

var genericTemplate = template{
	title:        "A manual process is costing you time",
	situation:    "You answered: %s. This step is still done by hand.",
	opportunity:  "Digitize a manual process",
	description:  "Replace a manual step with a simple digital tool.",
	improvements: []string{"Less repetitive work", "Fewer errors"},
	tool:         "Process automation",
	toolDesc:     "A small tool tailored to this step of your business.",
	benefits:     []string{"Time back every week"},
	image:        "small business owner working on a laptop",
}

func templateFor(questionID string) template {
	if t, ok := templates[questionID]; ok {
		return t
	}
	return genericTemplate
}
