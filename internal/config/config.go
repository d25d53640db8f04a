package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML config at configPath, then applies environment overrides
// (after loading DefaultEnvFile if it exists). A missing file is only tolerated
// for the default path so env-only deployments work.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decodeInto(&cfg, content); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == DefaultConfigPath:
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	if err := loadEnvFile(DefaultEnvFile); err != nil {
		return nil, err
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Parse decodes YAML content without touching the environment.
func Parse(content []byte) (*AppConfig, error) {
	cfg := defaultAppConfig()
	if err := decodeInto(&cfg, content); err != nil {
		return nil, err
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeInto(cfg *AppConfig, content []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	raw := rawAppConfig{}
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return applyRawAppConfig(cfg, raw)
}

func validate(cfg *AppConfig) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	switch cfg.Database.Driver {
	case DriverMySQL:
		if cfg.Database.Port < 1 || cfg.Database.Port > 65535 {
			return fmt.Errorf("invalid database.port %d, expected 1-65535", cfg.Database.Port)
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported database.driver %q", cfg.Database.Driver)
	}
	if cfg.Admin.SessionTTL <= 0 {
		return fmt.Errorf("invalid admin.session_ttl %s", cfg.Admin.SessionTTL)
	}
	return nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Database: DatabaseRuntimeConfig{
			Driver:    defaultDBDriver,
			Host:      defaultDBHost,
			Port:      defaultDBPort,
			User:      defaultDBUser,
			Password:  defaultDBPassword,
			Name:      defaultDBName,
			Charset:   defaultDBCharset,
			ParseTime: true,
			Loc:       defaultDBLoc,
		},
		Admin: AdminConfig{SessionTTL: defaultSessionTTLh * time.Hour},
		Mail: MailConfig{
			From: defaultMailFrom,
			SMTP: SMTPConfig{Port: defaultSMTPPort},
		},
		Storage: StorageConfig{S3: S3Config{Prefix: defaultS3Prefix}},
	}
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) error {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = normalizeEnv(v)
	}
	cfg.Database = applyRawDatabaseConfig(cfg.Database, raw)
	if v := strings.TrimSpace(raw.RedisURL); v != "" {
		cfg.RedisURL = v
	}

	switch {
	case raw.AllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.AllowedOrigins)
	case raw.CORSAllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.CORSAllowedOrigins)
	}

	if v := strings.TrimSpace(raw.JWTSecret); v != "" {
		cfg.JWTSecret = v
	}
	for _, tz := range []string{raw.Timezone, raw.TZ} {
		if v := strings.TrimSpace(tz); v != "" {
			cfg.Timezone = v
			break
		}
	}

	if v := strings.TrimSpace(raw.AdminPassword); v != "" {
		cfg.Admin.Password = v
	}
	if v := strings.TrimSpace(raw.Admin.Password); v != "" {
		cfg.Admin.Password = v
	}
	if v := strings.TrimSpace(raw.Admin.SessionTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid admin.session_ttl %q: %w", v, err)
		}
		cfg.Admin.SessionTTL = ttl
	}

	cfg.Mail = applyRawMailConfig(cfg.Mail, raw.Mail)
	cfg.Storage.S3 = normalizeS3Config(mergeS3(cfg.Storage.S3, raw.Storage.S3))
	return nil
}

func applyRawDatabaseConfig(current DatabaseRuntimeConfig, raw rawAppConfig) DatabaseRuntimeConfig {
	db := raw.Database
	if v := strings.TrimSpace(db.Driver); v != "" {
		current.Driver = strings.ToLower(v)
	}
	for _, dsn := range []string{raw.DSN, db.DSN, db.URL} {
		if v := strings.TrimSpace(dsn); v != "" {
			current.DSN = v
		}
	}
	if v := strings.TrimSpace(db.Path); v != "" {
		current.Path = v
	}
	if v := strings.TrimSpace(db.Host); v != "" {
		current.Host = v
	}
	if db.Port != 0 {
		current.Port = db.Port
	}
	if v := strings.TrimSpace(db.User); v != "" {
		current.User = v
	} else if v := strings.TrimSpace(db.Username); v != "" {
		current.User = v
	}
	if db.Password != "" {
		current.Password = db.Password
	}
	if v := strings.TrimSpace(db.Name); v != "" {
		current.Name = v
	} else if v := strings.TrimSpace(db.DBName); v != "" {
		current.Name = v
	}
	if v := strings.TrimSpace(db.Charset); v != "" {
		current.Charset = v
	}
	if db.ParseTime != nil {
		current.ParseTime = *db.ParseTime
	}
	if v := strings.TrimSpace(db.Loc); v != "" {
		current.Loc = v
	}
	if db.Params != nil {
		current.Params = copyStringMap(db.Params)
	}
	return normalizeDatabaseConfig(current)
}

func applyRawMailConfig(current MailConfig, raw rawMailConfig) MailConfig {
	if raw.Enable != nil {
		current.Enable = *raw.Enable
	}
	if v := strings.TrimSpace(raw.From); v != "" {
		current.From = v
	}
	if v := strings.TrimSpace(raw.NotifyTo); v != "" {
		current.NotifyTo = v
	}
	if raw.SendConfirmation != nil {
		current.SendConfirmation = *raw.SendConfirmation
	}
	if v := strings.TrimSpace(raw.SMTP.Host); v != "" {
		current.SMTP.Host = v
	}
	if raw.SMTP.Port != 0 {
		current.SMTP.Port = raw.SMTP.Port
	}
	if v := strings.TrimSpace(raw.SMTP.User); v != "" {
		current.SMTP.User = v
	}
	if raw.SMTP.Pass != "" {
		current.SMTP.Pass = raw.SMTP.Pass
	}
	if v := strings.TrimSpace(raw.ResendKey); v != "" {
		current.ResendKey = v
	}
	return current
}

func mergeS3(current, raw S3Config) S3Config {
	if raw.Bucket != "" {
		current.Bucket = raw.Bucket
	}
	if raw.Region != "" {
		current.Region = raw.Region
	}
	if raw.Endpoint != "" {
		current.Endpoint = raw.Endpoint
	}
	if raw.AccessKeyID != "" {
		current.AccessKeyID = raw.AccessKeyID
	}
	if raw.SecretAccessKey != "" {
		current.SecretAccessKey = raw.SecretAccessKey
	}
	if raw.PublicURL != "" {
		current.PublicURL = raw.PublicURL
	}
	if raw.Prefix != "" {
		current.Prefix = raw.Prefix
	}
	if raw.PathStyle {
		current.PathStyle = true
	}
	return current
}

func (c *AppConfig) IsDev() bool {
	return c.Env != "production"
}

// Addr returns the listen address.
func (c *AppConfig) Addr() string { return fmt.Sprintf(":%d", c.Port) }

// AdminConfigured reports whether the admin shared secret is set.
func (c *AppConfig) AdminConfigured() bool {
	return strings.TrimSpace(c.Admin.Password) != ""
}

// S3Enabled reports whether inline uploads should be offloaded to object storage.
func (c *AppConfig) S3Enabled() bool {
	s3 := c.Storage.S3
	return s3.Bucket != "" && s3.Region != "" && s3.AccessKeyID != "" && s3.SecretAccessKey != ""
}
