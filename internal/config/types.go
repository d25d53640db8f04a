package config

import "time"

// AppConfig holds runtime startup configuration loaded from YAML and the environment.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	Env            string                `yaml:"env"` // "development" | "production"
	Database       DatabaseRuntimeConfig `yaml:"database"`
	RedisURL       string                `yaml:"redis_url"` // optional; empty disables cache and rate limit
	AllowedOrigins []string              `yaml:"allowed_origins"`
	JWTSecret      string                `yaml:"jwt_secret"`
	Timezone       string                `yaml:"timezone"`
	Admin          AdminConfig           `yaml:"admin"`
	Mail           MailConfig            `yaml:"mail"`
	Storage        StorageConfig         `yaml:"storage"`
}

type DatabaseRuntimeConfig struct {
	Driver    string            `yaml:"driver"` // "mysql" | "sqlite"
	DSN       string            `yaml:"dsn"`
	Path      string            `yaml:"path"` // sqlite file
	Host      string            `yaml:"host"`
	Port      int               `yaml:"port"`
	User      string            `yaml:"user"`
	Password  string            `yaml:"password"`
	Name      string            `yaml:"name"`
	Charset   string            `yaml:"charset"`
	ParseTime bool              `yaml:"parse_time"`
	Loc       string            `yaml:"loc"`
	Params    map[string]string `yaml:"params"`
}

// AdminConfig configures the shared-secret admin gate.
type AdminConfig struct {
	Password   string        `yaml:"password"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// MailConfig configures the notification transport.
type MailConfig struct {
	Enable           bool       `yaml:"enable"`
	From             string     `yaml:"from"`
	NotifyTo         string     `yaml:"notify_to"`
	SendConfirmation bool       `yaml:"send_confirmation"`
	SMTP             SMTPConfig `yaml:"smtp"`
	ResendKey        string     `yaml:"resend_key"`
}

type SMTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
}

type StorageConfig struct {
	S3 S3Config `yaml:"s3"`
}

// S3Config enables offloading inline uploads to S3-compatible object storage.
type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	PublicURL       string `yaml:"public_url"`
	Prefix          string `yaml:"prefix"`
	PathStyle       bool   `yaml:"path_style"`
}

type rawAppConfig struct {
	Port               int               `yaml:"port"`
	Env                string            `yaml:"env"`
	DSN                string            `yaml:"dsn"`
	Database           rawDatabaseConfig `yaml:"database"`
	RedisURL           string            `yaml:"redis_url"`
	AllowedOrigins     []string          `yaml:"allowed_origins"`
	CORSAllowedOrigins []string          `yaml:"cors_allowed_origins"`
	JWTSecret          string            `yaml:"jwt_secret"`
	Timezone           string            `yaml:"timezone"`
	TZ                 string            `yaml:"tz"`
	Admin              rawAdminConfig    `yaml:"admin"`
	AdminPassword      string            `yaml:"admin_password"`
	Mail               rawMailConfig     `yaml:"mail"`
	Storage            StorageConfig     `yaml:"storage"`
}

type rawDatabaseConfig struct {
	Driver    string            `yaml:"driver"`
	DSN       string            `yaml:"dsn"`
	URL       string            `yaml:"url"`
	Path      string            `yaml:"path"`
	Host      string            `yaml:"host"`
	Port      int               `yaml:"port"`
	User      string            `yaml:"user"`
	Username  string            `yaml:"username"`
	Password  string            `yaml:"password"`
	Name      string            `yaml:"name"`
	DBName    string            `yaml:"db_name"`
	Charset   string            `yaml:"charset"`
	ParseTime *bool             `yaml:"parse_time"`
	Loc       string            `yaml:"loc"`
	Params    map[string]string `yaml:"params"`
}

type rawAdminConfig struct {
	Password   string `yaml:"password"`
	SessionTTL string `yaml:"session_ttl"`
}

type rawMailConfig struct {
	Enable           *bool      `yaml:"enable"`
	From             string     `yaml:"from"`
	NotifyTo         string     `yaml:"notify_to"`
	SendConfirmation *bool      `yaml:"send_confirmation"`
	SMTP             SMTPConfig `yaml:"smtp"`
	ResendKey        string     `yaml:"resend_key"`
}
