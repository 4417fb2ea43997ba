// Package app provides the orchestration layer for the showroom application.
//
// # Overview
//
// This package wires together configuration, the product store, change
// watching, and the terminal UI to create the two showroom surfaces. It
// serves as the composition root where all dependencies are initialized
// and connected.
//
// # Architecture
//
// Both entry points follow the same initialization pattern:
//
//  1. Load configuration from ~/.config/showroom/config.toml
//  2. Point file logging at <data_dir>/logs
//  3. Open the shared product store in the configured data directory
//  4. Start the filesystem watcher so saves from the other surface appear live
//  5. Load user preferences (theme, last filter and sort)
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Surfaces
//
//   - RunStorefront: read-only catalog browser with category filtering and
//     sorting. Never writes products.
//   - RunAdmin: login-gated product editor. All mutations flow through the
//     admin pipeline, which validates drafts and saves through the store.
//
// # Change Propagation
//
// The two surfaces share one product list on disk. Each process watches the
// data directory and reloads when the other process saves; a store never
// notifies itself about its own writes. Last writer wins.
//
//	┌────────────┐  Save()   ┌──────────────────────┐  fsnotify  ┌────────────┐
//	│   admin    │──────────>│ furniture-products.  │───────────>│ storefront │
//	│  pipeline  │           │ json  (data_dir)     │            │   reload   │
//	└────────────┘           └──────────────────────┘            └────────────┘
//
// # Error Handling
//
// The app package distinguishes between fatal and recoverable errors:
//
// Fatal errors (returned from RunStorefront/RunAdmin):
//   - Configuration file present but invalid
//   - Filesystem watcher creation failure
//
// Recoverable conditions (logged, startup continues):
//   - Missing configuration file (defaults are used)
//   - Missing or unparsable product file (treated as an empty catalog)
//   - Missing or unparsable preferences file (defaults are used)
//
// # Usage Example
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	opts := app.Options{ConfigPath: "", PrefsPath: ""}
//	if err := app.RunStorefront(ctx, opts); err != nil {
//		log.Fatalf("showroom failed: %v", err)
//	}
//
// # Design Rationale
//
// This package intentionally keeps orchestration logic minimal. Business
// logic lives in domain packages (catalog, store, admin, ui). The app
// package simply connects these pieces with sensible defaults so both
// binaries work out of the box on a fresh machine.
package app
