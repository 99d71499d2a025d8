package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/aqardash/aqardash/internal/auth"
	"github.com/aqardash/aqardash/internal/database/admins"
	"github.com/aqardash/aqardash/internal/database/buyers"
	"github.com/aqardash/aqardash/internal/database/links"
	"github.com/aqardash/aqardash/internal/database/marketers"
	"github.com/aqardash/aqardash/internal/database/properties"
	"github.com/aqardash/aqardash/internal/database/stats"
	"github.com/aqardash/aqardash/internal/http"
	"github.com/aqardash/aqardash/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// PropertyStore implementations
var _ http.PropertyStore = (*properties.Repository)(nil)

// BuyerStore implementations
var _ http.BuyerStore = (*buyers.Repository)(nil)

// MarketerStore implementations
var _ http.MarketerStore = (*marketers.Repository)(nil)

// LinkStore implementations
var _ http.LinkStore = (*links.Repository)(nil)

// StatsStore implementations
var _ http.StatsStore = (*stats.Repository)(nil)

// =============================================================================
// Authentication
// =============================================================================

// AdminStore implementations
var _ auth.AdminStore = (*admins.Repository)(nil)

// =============================================================================
// Background Tasks
// =============================================================================

// OrphanLinksCleaner implementations
var _ tasks.OrphanLinksCleaner = (*links.Repository)(nil)
