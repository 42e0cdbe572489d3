package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamID     = "id"
	RequestParamSearch = "search"
	RequestParamStatus = "status"
)

const (
	TodoStatusCompleted = "completed"
	TodoStatusPending   = "pending"
)

const (
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	FieldCreatedAt = "created_at"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelStorageScopeName    = "storage"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderContentType  = "Content-Type"
	RequestHeaderRequestID    = "X-Request-ID"
	RequestHeaderUserAgent    = "User-Agent"
	RequestHeaderForwardedFor = "X-Forwarded-For"
	RequestHeaderRealIP       = "X-Real-IP"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeTextPlain         = "text/plain; charset=utf-8"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormFilePhoto                = "photo"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
