package repositories

// Exposes the unexported duplicate-key check to the external test package,
// which is needed to avoid a test-only import cycle with internal/database.
var IsDuplicateKey = isDuplicateKey
