package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address           string        `env:"RUN_ADDRESS"         envDefault:"localhost:5000"`
	Database          string        `env:"DATABASE_URL"`
	SQLitePath        string        `env:"SQLITE_PATH"         envDefault:"investment.db"`
	DBSchema          string        `env:"DB_SCHEMA"           envDefault:"investment"`
	LogLvl            string        `env:"LOG_LVL"             envDefault:"info"`
	JWTSecret         string        `env:"JWT_SECRET"          envDefault:"goinvest-dev-secret"`
	TokenTTL          time.Duration `env:"TOKEN_TTL"           envDefault:"168h"`
	StripePaymentLink string        `env:"STRIPE_PAYMENT_LINK"`
	UploadsBaseURL    string        `env:"UPLOADS_BASE_URL"    envDefault:"/uploads"`
	AdminEmail        string        `env:"ADMIN_EMAIL"`
	SeedCatalog       bool          `env:"SEED_CATALOG"        envDefault:"false"`
	MaturityInterval  time.Duration `env:"MATURITY_INTERVAL"   envDefault:"1m"`
	MaturityBatch     int           `env:"MATURITY_BATCH"      envDefault:"100"`
	MaturityWorkers   int           `env:"MATURITY_WORKERS"    envDefault:"4"`
	CORSOrigins       []string      `env:"CORS_ORIGINS"        envDefault:"*" envSeparator:","`
}

// New reads an optional .env file, then the environment, then the command line flags.
// Each later source overrides the earlier one.
func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database URL, empty selects the SQLite file")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	return cfg
}
