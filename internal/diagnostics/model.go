package diagnostics

import (
	"time"

	"diagnostic-backend/internal/diagnostics/engine"
	"diagnostic-backend/internal/diagnostics/knowledge"
	"diagnostic-backend/internal/diagnostics/urgency"
)

// Record is a persisted diagnostic run.
type Record struct {
	ID           string
	Sector       knowledge.Sector
	Urgency      urgency.Level
	ContactEmail string
	ContactName  string
	CompanyName  string
	Answers      map[string]any
	Result       engine.Result
	CreatedAt    time.Time
}

// ListFilter narrows the admin listing. A blank Urgency matches every level.
type ListFilter struct {
	Limit   int
	Offset  int
	Urgency urgency.Level
}

// Request is the submit/preview body. Sector may instead be given as answers.businessType.
type Request struct {
	Sector       string
	Answers      map[string]any
	ContactEmail string
}
