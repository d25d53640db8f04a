package config

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	// DefaultEnvFile is loaded (if present) before environment overrides are applied.
	DefaultEnvFile = ".env"

	defaultPort        = 5000
	defaultEnv         = "development"
	defaultDBDriver    = DriverMySQL
	defaultDBHost      = "127.0.0.1"
	defaultDBPort      = 3306
	defaultDBUser      = "root"
	defaultDBPassword  = "password"
	defaultDBName      = "leasing"
	defaultDBCharset   = "utf8mb4"
	defaultDBLoc       = "Local"
	defaultSQLitePath  = "data/leasing.db"
	defaultSMTPPort    = 587
	defaultMailFrom    = "Haven Ridge Apartments <leasing@havenridge.example>"
	defaultSessionTTLh = 12
	defaultS3Prefix    = "uploads"
)

// Supported database drivers.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)
