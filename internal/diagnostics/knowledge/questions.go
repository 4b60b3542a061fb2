package knowledge

// Transversal question identifiers read by the scoring, urgency and narrative layers.
const (
	QuestionDigitalTools    = "digitalTools"
	QuestionWebPresence     = "webPresence"
	QuestionMainPainPoint   = "mainPainPoint"
	QuestionObjectives      = "objectives"
	QuestionAdditionalNeeds = "additionalNeeds"
	QuestionCompanySize     = "companySize"
	QuestionEmployeeCount   = "employeeCount"
	QuestionContactName     = "contactName"
	QuestionCompanyName     = "companyName"
	QuestionComments        = "comments"
)

func restaurantQuestions() []Question {
	return []Question{
		{
			ID:     "orderHandling",
			Prompt: "How do you take and pass customer orders to the kitchen?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "paper", Label: "Paper notepads and verbal orders", Cost: cost(10, 400, 15), Maturity: MaturityNone, Pain: PainLosingOrders},
				{Value: "cash-register", Label: "Cash register, orders shouted to the kitchen", Cost: cost(5, 200, 8), Maturity: MaturityBasic, Pain: PainSlowService},
				{Value: "pos-basic", Label: "POS without kitchen integration", Cost: cost(3, 120, 5), Maturity: MaturityPartial},
				{Value: "pos-integrated", Label: "POS integrated with a kitchen display", Maturity: MaturityAdvanced},
			},
		},
		{
			ID:     "menuFormat",
			Prompt: "How do customers see your menu?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "printed-only", Label: "Printed menu only", Cost: cost(2, 80, 0)},
				{Value: "pdf-qr", Label: "PDF behind a QR code", Cost: cost(1, 30, 0)},
				{Value: "digital-menu", Label: "Interactive digital menu"},
			},
		},
		{
			ID:     "reservations",
			Prompt: "How do you manage reservations?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "phone-notebook", Label: "Phone calls written in a notebook", Cost: cost(4, 150, 10), Pain: PainLosingOrders},
				{Value: "whatsapp", Label: "WhatsApp messages", Cost: cost(3, 100, 6)},
				{Value: "online-platform", Label: "Online booking platform"},
				{Value: "no-reservations", Label: "We do not take reservations"},
			},
		},
		{
			ID:     "deliveryChannels",
			Prompt: "How do you handle delivery orders?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "phone-delivery", Label: "Phone orders with our own courier", Cost: cost(5, 250, 10), Pain: PainLosingOrders},
				{Value: "third-party-apps", Label: "Third-party delivery apps only", Cost: cost(2, 600, 3)},
				{Value: "own-online", Label: "Own online ordering channel"},
				{Value: "no-delivery", Label: "No delivery"},
			},
		},
		{
			ID:     "inventoryTracking",
			Prompt: "How do you keep track of ingredients and supplies?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "none", Label: "We check the pantry by eye", Cost: cost(6, 500, 20), Pain: PainStockOuts},
				{Value: "spreadsheet", Label: "Spreadsheet updated by hand", Cost: cost(3, 200, 8)},
				{Value: "system", Label: "Inventory system linked to sales"},
			},
		},
	}
}

func technicalServiceQuestions() []Question {
	return []Question{
		{
			ID:     "serviceTracking",
			Prompt: "How do you track service requests and repairs?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "paper", Label: "Paper tickets or a notebook", Cost: cost(8, 300, 20), Maturity: MaturityNone, Pain: PainLostTickets},
				{Value: "spreadsheet", Label: "Shared spreadsheet", Cost: cost(5, 180, 10), Maturity: MaturityBasic},
				{Value: "generic-app", Label: "Generic task app", Cost: cost(2, 80, 5), Maturity: MaturityPartial},
				{Value: "dedicated-system", Label: "Dedicated service management system", Maturity: MaturityAdvanced},
			},
		},
		{
			ID:     "quoteTurnaround",
			Prompt: "How long does it take to send a repair quote?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "same-day", Label: "Same day"},
				{Value: "two-three-days", Label: "Two or three days", Cost: cost(4, 200, 5), Pain: PainSlowQuotes},
				{Value: "over-week", Label: "More than a week", Cost: cost(8, 450, 10), Pain: PainSlowQuotes},
			},
		},
		{
			ID:     "customerUpdates",
			Prompt: "How do customers learn about the status of their repair?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "phone-calls", Label: "They call us", Cost: cost(5, 150, 5), Pain: PainNoFollowUp},
				{Value: "whatsapp-manual", Label: "We message them by hand", Cost: cost(3, 80, 3)},
				{Value: "automatic", Label: "Automatic notifications"},
			},
		},
		{
			ID:     "sparePartsControl",
			Prompt: "How do you control spare parts?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "memory", Label: "From memory", Cost: cost(4, 350, 15), Pain: PainStockOuts},
				{Value: "spreadsheet", Label: "Spreadsheet", Cost: cost(2, 150, 6)},
				{Value: "system", Label: "Parts system"},
			},
		},
		{
			ID:     "warrantyTracking",
			Prompt: "How do you track warranties on completed work?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "none", Label: "We do not track them", Cost: cost(2, 200, 10)},
				{Value: "paper-records", Label: "Paper records", Cost: cost(1, 80, 5)},
				{Value: "system", Label: "In our system"},
			},
		},
	}
}

func workshopQuestions() []Question {
	return []Question{
		{
			ID:     "workOrders",
			Prompt: "How are work orders created and assigned?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "verbal", Label: "Verbally", Cost: cost(9, 350, 18), Maturity: MaturityNone, Pain: PainLostTickets},
				{Value: "paper-forms", Label: "Paper forms", Cost: cost(6, 220, 12), Maturity: MaturityBasic},
				{Value: "spreadsheet", Label: "Spreadsheet", Cost: cost(4, 150, 8), Maturity: MaturityPartial},
				{Value: "system", Label: "Workshop management system", Maturity: MaturityAdvanced},
			},
		},
		{
			ID:     "partsInventory",
			Prompt: "How do you manage the parts inventory?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "none", Label: "No control", Cost: cost(5, 450, 20), Pain: PainStockOuts},
				{Value: "spreadsheet", Label: "Spreadsheet", Cost: cost(3, 200, 8)},
				{Value: "system", Label: "Inventory system"},
			},
		},
		{
			ID:     "vehicleHistory",
			Prompt: "Do you keep a history of each vehicle or machine serviced?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "none", Label: "No history", Cost: cost(3, 120, 10)},
				{Value: "paper-files", Label: "Paper files", Cost: cost(2, 60, 5)},
				{Value: "digital", Label: "Digital history"},
			},
		},
		{
			ID:     "workshopScheduling",
			Prompt: "How do customers book a slot?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "phone-notebook", Label: "Phone and notebook", Cost: cost(4, 150, 8)},
				{Value: "whatsapp", Label: "WhatsApp", Cost: cost(2, 60, 4)},
				{Value: "online", Label: "Online booking"},
			},
		},
		{
			ID:     "workshopInvoicing",
			Prompt: "How do you invoice finished jobs?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "manual", Label: "Handwritten invoices", Cost: cost(5, 200, 10), Pain: PainSlowBilling},
				{Value: "spreadsheet", Label: "Spreadsheet template", Cost: cost(3, 100, 5)},
				{Value: "system", Label: "Invoicing system"},
			},
		},
	}
}

func factoryQuestions() []Question {
	return []Question{
		{
			ID:     "quoting",
			Prompt: "How do you prepare quotes for customers?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "manual", Label: "By hand, case by case", Cost: cost(12, 600, 0), Maturity: MaturityNone, Pain: PainSlowQuotes},
				{Value: "spreadsheet", Label: "Spreadsheet templates", Cost: cost(6, 300, 8), Maturity: MaturityBasic},
				{Value: "erp-module", Label: "Generic ERP module", Cost: cost(2, 100, 3), Maturity: MaturityPartial},
				{Value: "dedicated", Label: "Dedicated quoting system", Maturity: MaturityAdvanced},
			},
		},
		{
			ID:     "costCalculation",
			Prompt: "How do you calculate production costs?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "estimate", Label: "Rough estimate from experience", Cost: cost(6, 800, 20), Pain: PainNoCostVisibility},
				{Value: "spreadsheet", Label: "Spreadsheet", Cost: cost(3, 350, 10)},
				{Value: "system", Label: "Costing system"},
			},
		},
		{
			ID:     "productionPlanning",
			Prompt: "How is production planned?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "whiteboard", Label: "Whiteboard or verbal", Cost: cost(8, 500, 15), Pain: PainProductionDelays},
				{Value: "spreadsheet", Label: "Spreadsheet", Cost: cost(4, 250, 8)},
				{Value: "mrp", Label: "Planning system"},
			},
		},
		{
			ID:     "rawMaterials",
			Prompt: "How do you control raw materials?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "none", Label: "No formal control", Cost: cost(5, 700, 18), Pain: PainStockOuts},
				{Value: "spreadsheet", Label: "Spreadsheet", Cost: cost(3, 300, 8)},
				{Value: "system", Label: "Inventory system"},
			},
		},
		{
			ID:     "qualityControl",
			Prompt: "How do you record quality checks?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "none", Label: "We do not record them", Cost: cost(4, 400, 12)},
				{Value: "paper", Label: "Paper checklists", Cost: cost(2, 150, 6)},
				{Value: "digital", Label: "Digital records"},
			},
		},
	}
}

func retailQuestions() []Question {
	return []Question{
		{
			ID:     "salesRecording",
			Prompt: "How do you record sales?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "notebook", Label: "Notebook", Cost: cost(7, 250, 15), Maturity: MaturityNone, Pain: PainNoSalesVisibility},
				{Value: "cash-register", Label: "Simple cash register", Cost: cost(4, 150, 8), Maturity: MaturityBasic},
				{Value: "pos-basic", Label: "POS without inventory", Cost: cost(2, 80, 4), Maturity: MaturityPartial},
				{Value: "pos-integrated", Label: "POS integrated with inventory", Maturity: MaturityAdvanced},
			},
		},
		{
			ID:     "stockControl",
			Prompt: "How do you control stock?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "none", Label: "Visual checks", Cost: cost(6, 500, 20), Pain: PainStockOuts},
				{Value: "spreadsheet", Label: "Spreadsheet", Cost: cost(3, 220, 8)},
				{Value: "system", Label: "Stock system"},
			},
		},
		{
			ID:     "onlineSales",
			Prompt: "Do you sell online?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "none", Label: "No", Cost: cost(0, 400, 0), Pain: PainNoWebPresence},
				{Value: "social-media", Label: "Through social media messages", Cost: cost(3, 150, 5)},
				{Value: "marketplace", Label: "Marketplaces only", Cost: cost(2, 300, 3)},
				{Value: "own-store", Label: "Own online store"},
			},
		},
		{
			ID:     "supplierOrders",
			Prompt: "How do you place orders with suppliers?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "phone", Label: "By phone when something runs out", Cost: cost(4, 150, 10)},
				{Value: "spreadsheet", Label: "From a spreadsheet", Cost: cost(2, 80, 5)},
				{Value: "system", Label: "Automatic reorder points"},
			},
		},
		{
			ID:     "customerLoyalty",
			Prompt: "Do you run a loyalty program?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "none", Label: "No", Cost: cost(1, 200, 0)},
				{Value: "paper-cards", Label: "Paper stamp cards", Cost: cost(1, 60, 5)},
				{Value: "digital", Label: "Digital loyalty program"},
			},
		},
	}
}

func professionalServicesQuestions() []Question {
	return []Question{
		{
			ID:     "clientManagement",
			Prompt: "How do you keep track of clients and follow-ups?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "memory-email", Label: "Memory and email inbox", Cost: cost(6, 200, 12), Maturity: MaturityNone, Pain: PainNoFollowUp},
				{Value: "spreadsheet", Label: "Spreadsheet", Cost: cost(4, 120, 6), Maturity: MaturityBasic},
				{Value: "generic-crm", Label: "Generic CRM", Cost: cost(1, 60, 3), Maturity: MaturityPartial},
				{Value: "dedicated", Label: "CRM tailored to our practice", Maturity: MaturityAdvanced},
			},
		},
		{
			ID:     "meetingScheduling",
			Prompt: "How do clients book meetings?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "phone-email", Label: "Phone and email back-and-forth", Cost: cost(4, 100, 8)},
				{Value: "shared-calendar", Label: "Shared calendar", Cost: cost(2, 40, 3)},
				{Value: "online-booking", Label: "Online booking page"},
			},
		},
		{
			ID:     "billing",
			Prompt: "How do you bill clients?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "manual-invoices", Label: "Invoices written by hand", Cost: cost(5, 250, 10), Pain: PainSlowBilling},
				{Value: "spreadsheet", Label: "Spreadsheet", Cost: cost(3, 120, 5)},
				{Value: "system", Label: "Billing system"},
			},
		},
		{
			ID:     "timeTracking",
			Prompt: "Do you track billable hours?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "none", Label: "No", Cost: cost(3, 600, 0), Pain: PainUnbilledHours},
				{Value: "spreadsheet", Label: "Spreadsheet", Cost: cost(2, 250, 5)},
				{Value: "tool", Label: "Time tracking tool"},
			},
		},
		{
			ID:     "documentManagement",
			Prompt: "Where do you keep client documents?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "paper", Label: "Paper folders", Cost: cost(4, 150, 10)},
				{Value: "email-folders", Label: "Email attachments", Cost: cost(3, 80, 6)},
				{Value: "cloud", Label: "Organized cloud storage"},
			},
		},
	}
}

func transversalQuestions() []Question {
	return []Question{
		{
			ID:     QuestionDigitalTools,
			Prompt: "Which digital tools do you use to run the business today?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "none", Label: "None, everything is on paper or memory", Maturity: MaturityNone},
				{Value: "basic", Label: "Basic tools such as spreadsheets or messaging", Maturity: MaturityBasic},
				{Value: "partial", Label: "Some systems that do not talk to each other", Maturity: MaturityPartial},
				{Value: "advanced", Label: "Integrated systems", Maturity: MaturityAdvanced},
			},
		},
		{
			ID:     QuestionWebPresence,
			Prompt: "What is your online presence today?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "none", Label: "No website or social media", Cost: cost(0, 300, 0), Pain: PainNoWebPresence},
				{Value: "social-only", Label: "Social media only", Cost: cost(2, 100, 0)},
				{Value: "basic-site", Label: "A basic website", Cost: cost(1, 50, 0)},
				{Value: "full-site", Label: "A complete website"},
			},
		},
		{
			ID:     QuestionMainPainPoint,
			Prompt: "What is the problem that hurts the business the most?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: string(PainLosingOrders), Label: "We lose orders", Pain: PainLosingOrders},
				{Value: string(PainSlowService), Label: "Service is slow at peak times", Pain: PainSlowService},
				{Value: string(PainLostTickets), Label: "Jobs get lost or forgotten", Pain: PainLostTickets},
				{Value: string(PainSlowQuotes), Label: "Quotes take too long", Pain: PainSlowQuotes},
				{Value: string(PainNoSalesVisibility), Label: "We do not know what we sell", Pain: PainNoSalesVisibility},
				{Value: string(PainNoWebPresence), Label: "Customers cannot find us online", Pain: PainNoWebPresence},
				{Value: string(PainStockOuts), Label: "We run out of stock", Pain: PainStockOuts},
				{Value: string(PainNoFollowUp), Label: "We forget to follow up with customers", Pain: PainNoFollowUp},
				{Value: string(PainSlowBilling), Label: "Billing is slow", Pain: PainSlowBilling},
				{Value: string(PainNoCostVisibility), Label: "We do not know our real costs", Pain: PainNoCostVisibility},
				{Value: string(PainProductionDelays), Label: "Production is always late", Pain: PainProductionDelays},
				{Value: string(PainUnbilledHours), Label: "Hours go unbilled", Pain: PainUnbilledHours},
				{Value: string(PainOther), Label: "Something else", Pain: PainOther},
			},
		},
		{
			ID:     QuestionObjectives,
			Prompt: "What do you want to achieve in the next year?",
			Kind:   KindMulti,
			Options: []Option{
				{Value: "sales", Label: "Increase sales"},
				{Value: "presence", Label: "Be found online"},
				{Value: "efficiency", Label: "Save time on operations"},
				{Value: "control", Label: "Have control and reports"},
				{Value: "customers", Label: "Serve customers better"},
				{Value: "costs", Label: "Reduce costs"},
			},
		},
		{
			ID:     QuestionAdditionalNeeds,
			Prompt: "Do you also need any of these?",
			Kind:   KindMulti,
			Options: []Option{
				{Value: "stock-control", Label: "Stock control"},
				{Value: "multi-location", Label: "More than one location"},
				{Value: "staff-management", Label: "Staff management"},
				{Value: "online-catalog", Label: "Online catalog"},
			},
		},
		{
			ID:     QuestionCompanySize,
			Prompt: "How many people work in the business?",
			Kind:   KindSingle,
			Options: []Option{
				{Value: "micro", Label: "1 to 5"},
				{Value: "small", Label: "6 to 20"},
				{Value: "medium", Label: "21 to 50"},
				{Value: "large", Label: "More than 50"},
			},
		},
		{ID: QuestionEmployeeCount, Prompt: "Exact number of employees (optional)", Kind: KindNumeric},
		{ID: QuestionContactName, Prompt: "Your name", Kind: KindText},
		{ID: QuestionCompanyName, Prompt: "Business name", Kind: KindText},
		{ID: QuestionComments, Prompt: "Anything else we should know?", Kind: KindText},
	}
}
