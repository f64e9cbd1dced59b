package conversation

// Window and retention sizes.
const (
	DefaultWindow = 3
	MaxHistory    = 20
)

// Store defaults.
const (
	DefaultMaxSessions = 10000
	DefaultSessionTTL  = 30 // minutes
)
