package contextkeys

// Custom type avoids collisions with other context values.
type contextKey string

// DBContextKey is the key under which *gorm.DB travels through the request
// context (the connection pool, or a transaction in tests).
const DBContextKey = contextKey("db")
