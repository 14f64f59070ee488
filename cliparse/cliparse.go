package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/danielhkuo/paid-vote/db"
	"github.com/danielhkuo/paid-vote/models"
	"github.com/danielhkuo/paid-vote/phone"
)

const (
	defaultPort                = 10000
	defaultSQLiteURL           = "file:paid-vote.db"
	defaultMaxVotesPerRequest  = 10
	defaultMaxCreditPerPayment = 100
	defaultSMSCredit           = 1
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	AdminPassword string

	// Browser origins allowed by CORS; empty allows any origin
	AllowedOrigins []string

	// Deployment policies
	PhonePolicy    phone.Policy
	AnonymousVotes bool
	Candidates     []string

	// Upper bounds on a single request
	MaxVotesPerRequest  int
	MaxCreditPerPayment int
	SMSCredit           int
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var policy, candidates, origins string

	fs := flag.NewFlagSet("paid-vote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Admin password (prefer env)")

	fs.StringVar(&origins, "cors-origins", "", "Comma-separated origins allowed by CORS")

	// Policies
	fs.StringVar(&policy, "phone-policy", "", "Phone extraction policy (positional or pattern)")
	fs.BoolVar(&cfg.AnonymousVotes, "anonymous-votes", false, "Store votes without the voter's phone")
	fs.StringVar(&candidates, "candidates", "", "Comma-separated candidate list")
	fs.IntVar(&cfg.MaxVotesPerRequest, "max-votes", 0, "Maximum votes redeemed per request")
	fs.IntVar(&cfg.MaxCreditPerPayment, "max-credit", 0, "Maximum credits granted per payment")
	fs.IntVar(&cfg.SMSCredit, "sms-credit", 0, "Credits granted per SMS notification")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	// Fall back to environment variables
	var err error
	if cfg.Port == 0 {
		if cfg.Port, err = intFromEnv("PORT", defaultPort); err != nil {
			return Config{}, err
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = db.TypeSQLite
		}
	}
	if cfg.DatabaseType != db.TypeSQLite && cfg.DatabaseType != db.TypePostgres {
		return Config{}, fmt.Errorf("invalid database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != db.TypeSQLite {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = defaultSQLiteURL
	}

	// Secrets - MUST be provided
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD required")
	}

	if origins == "" {
		origins = os.Getenv("CORS_ORIGINS")
	}
	cfg.AllowedOrigins = splitList(origins)

	if policy == "" {
		policy = os.Getenv("PHONE_POLICY")
	}
	if policy == "" {
		policy = string(phone.PolicyPositional)
	}
	if cfg.PhonePolicy, err = phone.ParsePolicy(policy); err != nil {
		return Config{}, fmt.Errorf("invalid phone policy %q: %w", policy, err)
	}

	if !explicit["anonymous-votes"] {
		if v := os.Getenv("ANONYMOUS_VOTES"); v != "" {
			if cfg.AnonymousVotes, err = strconv.ParseBool(v); err != nil {
				return Config{}, errors.New("invalid ANONYMOUS_VOTES env variable")
			}
		}
	}

	if candidates == "" {
		candidates = os.Getenv("CANDIDATES")
	}
	cfg.Candidates = parseCandidates(candidates)

	if cfg.MaxVotesPerRequest == 0 {
		if cfg.MaxVotesPerRequest, err = intFromEnv("MAX_VOTES_PER_REQUEST", defaultMaxVotesPerRequest); err != nil {
			return Config{}, err
		}
	}
	if cfg.MaxCreditPerPayment == 0 {
		if cfg.MaxCreditPerPayment, err = intFromEnv("MAX_CREDIT_PER_PAYMENT", defaultMaxCreditPerPayment); err != nil {
			return Config{}, err
		}
	}
	if cfg.SMSCredit == 0 {
		if cfg.SMSCredit, err = intFromEnv("SMS_CREDIT", defaultSMSCredit); err != nil {
			return Config{}, err
		}
	}
	if cfg.MaxVotesPerRequest < 1 || cfg.MaxCreditPerPayment < 1 || cfg.SMSCredit < 1 {
		return Config{}, errors.New("vote and credit limits must be positive")
	}
	if cfg.SMSCredit > cfg.MaxCreditPerPayment {
		return Config{}, errors.New("SMS credit cannot exceed the per-payment maximum")
	}

	return cfg, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

func parseCandidates(s string) []string {
	out := splitList(s)
	if len(out) == 0 {
		return append([]string(nil), models.DefaultCandidates...)
	}
	return out
}

// splitList splits a comma-separated value, dropping blanks and duplicates
func splitList(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
