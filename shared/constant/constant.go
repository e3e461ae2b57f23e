package constant

type contextKey string

const (
	ContextKeySessionID contextKey = "session_id"
)

const (
	RequestParamID     = "id"
	RequestParamTodoID = "todoID"
)

const (
	StorageBackendSession  = "session"
	StorageBackendDatabase = "database"
)

const (
	MinNameLength = 1
	MaxNameLength = 100
)

const PqErrorCodeUniqueViolation = "23505"

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

// Grace periods are skipped on shutdown in development.
const ServerEnvDevelopment = "development"
