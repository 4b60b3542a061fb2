package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "DATABASE_URL", "ADMIN_EMAILS", "RATE_LIMIT_SUBMIT_PER_MIN", "DIAG_TIME_SAVINGS_RATIO", "DIAG_MONEY_SAVINGS_RATIO", "DIAG_ERROR_REDUCTION_RATIO", "DIAG_SYSTEM_MONTHLY_COST", "DIAG_CURRENCY_SYMBOL", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Env != "dev" || cfg.Port != "8080" || cfg.SubmitPerMinute != 30 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if !cfg.IsDevLike() || cfg.IsProduction() {
		t.Fatalf("expected dev-like config")
	}
	if cfg.Engine != (EngineConfig{}) {
		t.Fatalf("expected zero engine overrides, got %+v", cfg.Engine)
	}
	if !reflect.DeepEqual(cfg.CORSAllowOrigin, []string{"http://localhost:5173"}) {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("ADMIN_EMAILS", "a@example.com, b@example.com,")
	t.Setenv("RATE_LIMIT_SUBMIT_PER_MIN", "5")
	t.Setenv("DIAG_SYSTEM_MONTHLY_COST", "450")
	t.Setenv("DIAG_TIME_SAVINGS_RATIO", "0.7")
	t.Setenv("DIAG_MONEY_SAVINGS_RATIO", "1.5")
	t.Setenv("DIAG_ERROR_REDUCTION_RATIO", "abc")
	t.Setenv("DIAG_CURRENCY_SYMBOL", "€")

	cfg := Load()
	if !cfg.IsProduction() {
		t.Fatalf("expected production, got %q", cfg.Env)
	}
	if !reflect.DeepEqual(cfg.AdminEmails, []string{"a@example.com", "b@example.com"}) {
		t.Fatalf("unexpected admin emails %v", cfg.AdminEmails)
	}
	want := EngineConfig{SystemMonthlyCost: 450, TimeSavingsRatio: 0.7, CurrencySymbol: "€"}
	if cfg.Engine != want {
		t.Fatalf("expected %+v, got %+v", want, cfg.Engine)
	}
	if cfg.SubmitPerMinute != 5 {
		t.Fatalf("expected 5, got %d", cfg.SubmitPerMinute)
	}
}

func TestLoadEnvFilesKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\nexport DIAG_TEST_A=\"quoted\"\nDIAG_TEST_B='single'\nDIAG_TEST_C=file\nbroken\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv("DIAG_TEST_C", "env")
	t.Setenv("DIAG_TEST_A", "")
	os.Unsetenv("DIAG_TEST_A")
	os.Unsetenv("DIAG_TEST_B")
	t.Cleanup(func() {
		os.Unsetenv("DIAG_TEST_A")
		os.Unsetenv("DIAG_TEST_B")
	})

	loadEnvFiles(path)

	if got := os.Getenv("DIAG_TEST_A"); got != "quoted" {
		t.Fatalf("expected quoted, got %q", got)
	}
	if got := os.Getenv("DIAG_TEST_B"); got != "single" {
		t.Fatalf("expected single, got %q", got)
	}
	if got := os.Getenv("DIAG_TEST_C"); got != "env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
}
