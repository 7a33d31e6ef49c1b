// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to interact with databases, managing
// users, chat transcripts, crop prices, weather observations and
// government scheme records. The package includes validation and
// logging for traceability and error handling.
package persistence
