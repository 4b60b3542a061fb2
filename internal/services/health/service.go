package health

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 2 * time.Second

// Service reports liveness and whether the diagnostics store is reachable.
type Service struct {
	DB *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{DB: db}
}

// Status is the /health payload. Storage is "memory" when no database is configured.
type Status struct {
	OK      bool   `json:"ok"`
	Storage string `json:"storage"`
}

func (s *Service) Status(ctx context.Context) Status {
	if s == nil || s.DB == nil {
		return Status{OK: true, Storage: "memory"}
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		return Status{OK: false, Storage: "unavailable"}
	}
	return Status{OK: true, Storage: "database"}
}
