// Package interfaces documents the core abstractions used throughout the application.
//
// It gathers the contract between the HTTP layer and the storage layer in one
// place, so a new database domain can be added by satisfying the matching
// Store interface rather than reading through every controller.
//
// # Interface Categories
//
// The application uses several categories of interfaces:
//
// ## Data Access Interfaces
//
//   - PropertyStore: Property CRUD and search (internal/http/properties.go)
//   - BuyerStore: Buyer CRUD and search (internal/http/buyers.go)
//   - MarketerStore: Marketer CRUD and search (internal/http/marketers.go)
//   - LinkStore: Property association management (internal/http/links.go)
//   - StatsStore: Dashboard aggregates (internal/http/stats.go)
//   - AdminStore: Admin account persistence (internal/auth/service.go)
//
// ## Background Task Interfaces
//
//   - OrphanLinksCleaner: Orphaned link removal (internal/tasks/audit_links.go)
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g., contracts):
//
//  1. Create sub-package: internal/database/contracts/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Implement interface methods, scoping every query by admin_id
//
//  4. Add compile-time check:
//
//     var _ ContractStore = (*Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
