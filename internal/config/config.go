package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strings" // strings normalizes boolean flags
	"time"    // time parses cache TTL durations
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Database settings are required; the pilot
// identity and credential settings carry defaults so a bare deployment
// still answers the protocol.
type Config struct {
	Env    string // application environment (e.g. "dev", "prod")
	Port   string // HTTP port to listen on
	DBUser string // database username
	DBPass string // database password (optional)
	DBHost string // database host address
	DBPort string // database port number
	DBName string // database name

	// Pilot identity presented in login replies. The gateway serves a
	// single pilot, so these are deployment constants rather than rows.
	AirlineICAO string // airline code in the user-info record
	FirstName   string // pilot first name
	LastName    string // pilot last name
	RankLevel   string // rank level token (also appended to aircraft records)
	RankString  string // human-readable rank

	UserID     string // login user id checked by manuallogin
	Password   string // login password checked by manuallogin
	EnableChat bool   // whether verifysession (chat feature) is enabled

	CacheTTL time.Duration // lifetime of cached catalog payloads
}

// Load reads configuration values from environment variables and returns a
// Config. Database variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:    getenv("APP_ENV", "dev"),
		Port:   getenv("APP_PORT", "8080"),
		DBUser: must("DB_USER"),
		DBPass: os.Getenv("DB_PASS"), // empty allowed
		DBHost: must("DB_HOST"),
		DBPort: must("DB_PORT"),
		DBName: must("DB_NAME"),

		AirlineICAO: getenv("AIRLINE_ICAO", "AAA"),
		FirstName:   getenv("FIRST_NAME", "Airline"),
		LastName:    getenv("LAST_NAME", "Pilot"),
		RankLevel:   getenv("RANK_LEVEL", "captain"),
		RankString:  getenv("RANK_STRING", "Captain"),

		UserID:     getenv("ACARS_USERID", "userid"),
		Password:   getenv("ACARS_PASSWORD", "password"),
		EnableChat: parseBool(getenv("ENABLE_CHAT", "false")),

		CacheTTL: parseDur(getenv("CACHE_TTL", "5m")),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the variable's value or the given default when unset.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBool(s string) bool {
	return strings.EqualFold(s, "true") || s == "1"
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}
