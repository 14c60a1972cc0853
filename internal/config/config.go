package config

import (
	"crypto"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/golang-jwt/jwt/v4"
)

const jwtSigningAlgorithmEd25519 = "EdDSA"

// PostgresCfg is postgres connection config
type PostgresCfg struct {
	User        string `env:"POSTGRES_USER"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Host        string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	Database    string `env:"POSTGRES_DB"`
	SslMode     string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

// ConnString builds pgx connection string
func (c PostgresCfg) ConnString() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%d dbname=%s sslmode=%s pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SslMode, c.PoolMaxConn,
	)
}

// RedisCfg is redis connection config
type RedisCfg struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// JwtCfg is access token config, keys are read from PEM files
type JwtCfg struct {
	Issuer        string        `env:"AUTH_JWT_ISSUER" envDefault:"visits-api"`
	TimeToLive    time.Duration `env:"AUTH_JWT_TIME_TO_LIVE" envDefault:"168h"`
	SigningMethod jwt.SigningMethod
	PrivateKey    crypto.PrivateKey
	PublicKey     crypto.PublicKey
}

// LoginLimitCfg is login throttling config
type LoginLimitCfg struct {
	MaxAttempts int           `env:"AUTH_LOGIN_MAX_ATTEMPTS" envDefault:"5"`
	Window      time.Duration `env:"AUTH_LOGIN_WINDOW" envDefault:"15m"`
}

// UploadsCfg is file uploads config
type UploadsCfg struct {
	Dir      string `env:"UPLOADS_DIR" envDefault:"./uploads"`
	MaxFiles int    `env:"UPLOADS_MAX_FILES" envDefault:"10"`
}

// MigrationsCfg is sql migrations config, empty dir disables the runner
type MigrationsCfg struct {
	Dir string `env:"MIGRATIONS_DIR" envDefault:"./migrations"`
}

// BootstrapAdminCfg is the initial admin account created on startup
// when no user with the given email exists, empty email disables it
type BootstrapAdminCfg struct {
	Email    string `env:"BOOTSTRAP_ADMIN_EMAIL" envDefault:""`
	Password string `env:"BOOTSTRAP_ADMIN_PASSWORD" envDefault:""`
	FullName string `env:"BOOTSTRAP_ADMIN_NAME" envDefault:"Admin User"`
}

// Config is whole application config
type Config struct {
	Port              int `env:"PORT" envDefault:"3000"`
	PostgresCfg       PostgresCfg
	RedisCfg          RedisCfg
	JwtCfg            JwtCfg
	LoginLimitCfg     LoginLimitCfg
	UploadsCfg        UploadsCfg
	MigrationsCfg     MigrationsCfg
	BootstrapAdminCfg BootstrapAdminCfg
}

// Build parses environment variables to Config
func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	cfg.JwtCfg.SigningMethod = jwt.GetSigningMethod(jwtSigningAlgorithmEd25519)

	jwtPrivateKeyFile := os.Getenv("AUTH_JWT_PRIVATE_KEY_FILE")
	jwtPrivateKeyBytes, err := os.ReadFile(jwtPrivateKeyFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to read private key file for jwt - %w", err)
	}

	jwtPrivateKey, err := jwt.ParseEdPrivateKeyFromPEM(jwtPrivateKeyBytes)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse private key for jwt - %w", err)
	}
	cfg.JwtCfg.PrivateKey = jwtPrivateKey

	jwtPublicKeyFile := os.Getenv("AUTH_JWT_PUBLIC_KEY_FILE")
	jwtPublicKeyBytes, err := os.ReadFile(jwtPublicKeyFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to read public key file for jwt - %w", err)
	}

	jwtPublicKey, err := jwt.ParseEdPublicKeyFromPEM(jwtPublicKeyBytes)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse public key for jwt - %w", err)
	}
	cfg.JwtCfg.PublicKey = jwtPublicKey

	return cfg, nil
}
