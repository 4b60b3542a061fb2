package diagnostics

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"diagnostic-backend/internal/diagnostics/urgency"
)

func ids(records []Record) string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return strings.Join(out, ",")
}

func TestMemoryRepoListNewestFirstWithFilter(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Date(2026, time.June, 1, 8, 0, 0, 0, time.UTC)
	for i, level := range []urgency.Level{urgency.Low, urgency.High, urgency.High, urgency.Medium} {
		rec := Record{ID: string(rune('a' + i)), Urgency: level, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	cases := []struct {
		filter ListFilter
		want   string
	}{
		{ListFilter{}, "d,c,b,a"},
		{ListFilter{Limit: 2}, "d,c"},
		{ListFilter{Limit: 2, Offset: 3}, "a"},
		{ListFilter{Offset: 10}, ""},
		{ListFilter{Urgency: urgency.High}, "c,b"},
		{ListFilter{Offset: -4, Urgency: urgency.Medium}, "d"},
	}
	for _, tc := range cases {
		got, err := repo.List(ctx, tc.filter)
		if err != nil {
			t.Fatalf("List(%+v): %v", tc.filter, err)
		}
		if ids(got) != tc.want {
			t.Fatalf("List(%+v) = %q, want %q", tc.filter, ids(got), tc.want)
		}
	}
}

func TestMemoryRepoContextAndNotFound(t *testing.T) {
	repo := NewMemoryRepo()
	if _, err := repo.GetByID(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := repo.Create(ctx, Record{ID: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
