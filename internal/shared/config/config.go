package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port               string
	Env                string
	DatabaseURL        string
	CORSAllowOrigin    []string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	UIRedirectURL      string
	AdminEmails        []string
	JWTSecret          string
	SubmitPerMinute    int
	Engine             EngineConfig
}

// EngineConfig overrides diagnostic assumptions. Zero values keep the engine defaults.
type EngineConfig struct {
	SystemMonthlyCost   float64
	TimeSavingsRatio    float64
	MoneySavingsRatio   float64
	ErrorReductionRatio float64
	CurrencySymbol      string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:               getEnv("PORT", "8080"),
		Env:                env,
		DatabaseURL:        dbURL,
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		UIRedirectURL:      getEnv("UI_REDIRECT_URL", ""),
		AdminEmails:        splitAndTrim(getEnv("ADMIN_EMAILS", "")),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		SubmitPerMinute:    getInt("RATE_LIMIT_SUBMIT_PER_MIN", 30),
		Engine: EngineConfig{
			SystemMonthlyCost:   getRatio("DIAG_SYSTEM_MONTHLY_COST", 0, false),
			TimeSavingsRatio:    getRatio("DIAG_TIME_SAVINGS_RATIO", 0, true),
			MoneySavingsRatio:   getRatio("DIAG_MONEY_SAVINGS_RATIO", 0, true),
			ErrorReductionRatio: getRatio("DIAG_ERROR_REDUCTION_RATIO", 0, true),
			CurrencySymbol:      getEnv("DIAG_CURRENCY_SYMBOL", ""),
		},
	}
}

// IsProduction reports whether secrets and a database are mandatory.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// IsDevLike reports whether in-memory fallbacks are acceptable.
func (c Config) IsDevLike() bool {
	return c.Env == "dev" || c.Env == "local"
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: %s invalid int %q, using %d", key, raw, def)
		return def
	}
	return v
}

// getRatio parses a non-negative float; ratios must also stay within [0,1].
func getRatio(key string, def float64, ratio bool) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || (ratio && v > 1) {
		log.Printf("config: %s out of range %q, using default", key, raw)
		return def
	}
	return v
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
