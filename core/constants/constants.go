package constants

// Server
const (
	DefaultServerPort     = "7070"
	DefaultRequestTimeout = 30 // seconds
	ShutdownTimeout       = 10 // seconds
)

// Database
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Event codes: 6 characters from an unambiguous alphabet (no I, O, 0, 1),
// matched case-insensitively at lookup time.
const (
	EventCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	EventCodeLength   = 6
)

// Slot enumeration
const (
	DefaultSlotStepMinutes = 60
	DateLayout             = "2006-01-02"
	ClockLayout            = "15:04"
)

// Redis keys
const (
	RedisKeyRecommendation = "schedule:recommendation:%s:%d" // code, updated_at unix
	RecommendationCacheTTL = 15                              // minutes
)
