package api

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	// registers the "pgx" database/sql driver goose migrates through
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/racefuel/racefuel-api/internal/auth"
	"github.com/racefuel/racefuel-api/internal/database"
	"github.com/racefuel/racefuel-api/internal/schema"
)

// envConfig is populated from the process environment (after .env is loaded).
type envConfig struct {
	Platform        string        `env:"PLATFORM,default=production"`
	Port            string        `env:"PORT,default=8080"`
	DBURL           string        `env:"DB_URL"`
	DBUser          string        `env:"DB_USER,default=postgres"`
	DBPassword      string        `env:"DB_PASSWORD,default=postgres"`
	DBHost          string        `env:"DB_HOST,default=localhost"`
	DBPort          string        `env:"DB_PORT,default=5432"`
	DBName          string        `env:"DB_NAME,default=racefuel"`
	IDPSecret       string        `env:"IDP_SECRET"`
	IDPIssuer       string        `env:"IDP_ISSUER"`
	IDPAudience     string        `env:"IDP_AUDIENCE"`
	CORSOrigins     string        `env:"CORS_ORIGINS,default=*"`
	SlogLevel       string        `env:"SLOG_LEVEL,default=INFO"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

type APIConfig struct {
	Pool      *pgxpool.Pool
	db        *database.Queries
	validator *schema.Validator
	env       envConfig
	dbURL     string
	platform  string
	idp       auth.IdentityProvider
	logger    *slog.Logger
}

// Init loads configuration from envPath (if present) and the environment.
// altDBUrl, when set, takes precedence over every DB_* variable.
func (cfg *APIConfig) Init(envPath string, altDBUrl string) error {
	if len(envPath) != 0 {
		_ = godotenv.Load(envPath)
	}

	if err := envdecode.Decode(&cfg.env); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return fmt.Errorf("could not decode environment: %w", err)
	}

	cfg.platform = cfg.env.Platform
	cfg.idp = auth.IdentityProvider{
		Secret:   cfg.env.IDPSecret,
		Issuer:   cfg.env.IDPIssuer,
		Audience: cfg.env.IDPAudience,
	}

	switch {
	case len(altDBUrl) != 0:
		cfg.dbURL = altDBUrl
	case len(cfg.env.DBURL) != 0:
		cfg.dbURL = cfg.env.DBURL
	default:
		cfg.GenerateDBConnectionString()
	}

	switch strings.ToUpper(cfg.env.SlogLevel) {
	case "DEBUG":
		cfg.NewLogger(slog.LevelDebug)
	case "WARN":
		cfg.NewLogger(slog.LevelWarn)
	case "ERROR":
		cfg.NewLogger(slog.LevelError)
	default:
		cfg.NewLogger(slog.LevelInfo)
	}

	if cfg.idp.Secret == "" {
		slog.Warn("IDP_SECRET is not set; every authenticated request will be rejected")
	}

	validator, err := schema.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("could not load request schemas: %w", err)
	}
	cfg.validator = validator
	return nil
}

func (cfg *APIConfig) NewLogger(level slog.Level) {
	cfg.logger = slog.New(slog.NewJSONHandler(os.Stdout,
		&slog.HandlerOptions{Level: level}))
	slog.SetDefault(cfg.logger)
}

func (cfg *APIConfig) GenerateDBConnectionString() *string {
	cfg.dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.env.DBUser,
		cfg.env.DBPassword,
		cfg.env.DBHost,
		cfg.env.DBPort,
		cfg.env.DBName,
	)
	return &cfg.dbURL
}

// ConnectToDB applies migrations and opens the connection pool.
func (cfg *APIConfig) ConnectToDB(ctx context.Context, fs embed.FS, migrationsDir string) error {
	db, err := sql.Open("pgx", cfg.dbURL)
	if err != nil {
		return fmt.Errorf("could not open database for migrations: %w", err)
	}
	defer db.Close()

	// Default to relative directory so tests know where to find migrations
	// Otherwise, use embedded directory in a compiled binary context
	if len(migrationsDir) == 0 {
		migrationsDir = "../../sql/schema"
		goose.SetBaseFS(nil)
	} else {
		goose.SetBaseFS(fs)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		slog.Error("could not apply database migrations with goose; " + err.Error())
		return err
	}

	pool, err := pgxpool.New(ctx, cfg.dbURL)
	if err != nil {
		return fmt.Errorf("could not create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("could not reach database: %w", err)
	}

	cfg.Pool = pool
	cfg.db = database.New(pool)
	return nil
}

func (cfg *APIConfig) Close() {
	if cfg.Pool != nil {
		cfg.Pool.Close()
	}
}

func (cfg *APIConfig) Port() string {
	return cfg.env.Port
}

func (cfg *APIConfig) ShutdownTimeout() time.Duration {
	return cfg.env.ShutdownTimeout
}

func (cfg *APIConfig) allowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(cfg.env.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
