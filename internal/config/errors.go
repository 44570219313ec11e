package config

import "errors"

var (
	ErrRedisAddrMissing   = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB     = errors.New("REDIS_DB must be a valid integer")
	ErrUnknownStoreDriver = errors.New("STORE_DRIVER must be one of sqlite, redis, postgres")
	ErrSQLitePathMissing  = errors.New("DB_PATH is required for the sqlite store")
	ErrDatabaseURLMissing = errors.New("DATABASE_URL is required for the postgres store")
	ErrTwilioIncomplete   = errors.New("TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, TWILIO_FROM_NUMBER and TWILIO_TO_NUMBER must be set together")
	ErrNoWakeWords        = errors.New("WAKE_WORDS must contain at least one phrase when REQUIRE_WAKE_WORD is true")
	ErrInvalidRateLimit   = errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	ErrNoFrontend         = errors.New("at least one of CONSOLE_ENABLED and HTTP_ENABLED must be true")
)
