// Package database owns the SQLite store and its schema lifecycle.
//
// Each entity gets its own repository subpackage (admins, properties, buyers,
// marketers, links, stats) holding a thin struct over *gorm.DB. Every query
// that touches tenant-owned data carries an explicit admin_id predicate; the
// repositories never expose an unscoped read or write for those tables.
//
// Errors surface through the small taxonomy in errors.go. Repositories return
// ErrNotFound for rows outside the caller's scope, ErrDuplicateLink and
// ErrDuplicateUsername for unique-constraint conflicts, and wrap everything
// else in a StorageError so handlers can log the failing operation.
package database
