package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// loadEnvFile populates the process environment from a dotenv file without
// overriding variables that are already set.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat env file %q: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %q: %w", path, err)
	}
	return nil
}

type lookupFunc func(string) (string, bool)

func applyEnv(cfg *AppConfig, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		*dst = n
		return nil
	}
	flag := func(key string, dst *bool) error {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		*dst = b
		return nil
	}

	if err := num("LEASING_PORT", &cfg.Port); err != nil {
		return err
	}
	if err := num("PORT", &cfg.Port); err != nil {
		return err
	}
	str("LEASING_ENV", &cfg.Env)
	cfg.Env = normalizeEnv(cfg.Env)

	str("LEASING_DB_DRIVER", &cfg.Database.Driver)
	str("LEASING_DSN", &cfg.Database.DSN)
	str("DATABASE_URL", &cfg.Database.DSN)
	str("LEASING_SQLITE_PATH", &cfg.Database.Path)
	cfg.Database = normalizeDatabaseConfig(cfg.Database)

	str("LEASING_REDIS_URL", &cfg.RedisURL)
	str("LEASING_JWT_SECRET", &cfg.JWTSecret)
	str("LEASING_TIMEZONE", &cfg.Timezone)
	if v, ok := lookup("LEASING_ALLOWED_ORIGINS"); ok && strings.TrimSpace(v) != "" {
		cfg.AllowedOrigins = normalizeOrigins(strings.Split(v, ","))
	}

	str("LEASING_ADMIN_PASSWORD", &cfg.Admin.Password)
	str("ADMIN_PASSWORD", &cfg.Admin.Password)
	if v, ok := lookup("LEASING_ADMIN_SESSION_TTL"); ok && strings.TrimSpace(v) != "" {
		ttl, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid LEASING_ADMIN_SESSION_TTL %q: %w", v, err)
		}
		cfg.Admin.SessionTTL = ttl
	}

	str("SMTP_HOST", &cfg.Mail.SMTP.Host)
	if err := num("SMTP_PORT", &cfg.Mail.SMTP.Port); err != nil {
		return err
	}
	str("SMTP_USER", &cfg.Mail.SMTP.User)
	str("SMTP_PASS", &cfg.Mail.SMTP.Pass)
	str("MAIL_FROM", &cfg.Mail.From)
	str("NOTIFY_EMAIL", &cfg.Mail.NotifyTo)
	str("RESEND_API_KEY", &cfg.Mail.ResendKey)
	if err := flag("MAIL_ENABLE", &cfg.Mail.Enable); err != nil {
		return err
	}
	if err := flag("MAIL_SEND_CONFIRMATION", &cfg.Mail.SendConfirmation); err != nil {
		return err
	}
	if _, set := lookup("MAIL_ENABLE"); !set && (cfg.Mail.SMTP.Host != "" || cfg.Mail.ResendKey != "") {
		cfg.Mail.Enable = true
	}

	s3 := &cfg.Storage.S3
	str("S3_BUCKET", &s3.Bucket)
	str("S3_REGION", &s3.Region)
	str("S3_ENDPOINT", &s3.Endpoint)
	str("S3_ACCESS_KEY_ID", &s3.AccessKeyID)
	str("S3_SECRET_ACCESS_KEY", &s3.SecretAccessKey)
	str("S3_PUBLIC_URL", &s3.PublicURL)
	str("S3_PREFIX", &s3.Prefix)
	cfg.Storage.S3 = normalizeS3Config(cfg.Storage.S3)
	return nil
}
