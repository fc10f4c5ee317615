package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// Driver names registered with database/sql
const (
	DriverPgx    = "pgx"
	DriverSQLite = "sqlite"
)

// Embedded migration directories per dialect
const (
	MigrationsDirPostgres = "migrations/postgres"
	MigrationsDirSQLite   = "migrations/sqlite"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString     = "failed to parse connection string"
	ErrMsgFailedToCreatePool          = "failed to create connection pool"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToRollbackTransaction = "Failed to rollback transaction"
	ErrMsgFailedToOpenDatabase        = "failed to open database"
	ErrMsgFailedToCreateMigrator      = "failed to create migration provider"
	ErrMsgUnsupportedDialect          = "unsupported database dialect"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Applied database migration"
	LogMsgMigrationRolledBack             = "Rolled back database migration"
)
