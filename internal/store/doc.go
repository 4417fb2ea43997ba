// Package store persists the shared product list and propagates changes
// between the storefront and admin surfaces.
//
// # Overview
//
// Both surfaces read and write a single JSON slot file, furniture-products.json,
// inside the configured data directory. The file always holds the complete
// product list; every save replaces it wholesale. The store keeps an in-memory
// copy and tells subscribers when the file changes underneath it.
//
// # Architecture
//
// The package follows a producer-consumer pattern across processes:
//
//	Writer (admin pipeline):          Reader (either surface):
//	┌──────────────────┐             ┌─────────────────────┐
//	│ Save(products)   │             │ Watch(ctx)          │
//	│   marshal        │             │   fsnotify on dir   │
//	│   temp + rename  │────────────→│   debounce 100ms    │
//	│   record checksum│  (the file)  │   reload + notify   │
//	└──────────────────┘             └─────────────────────┘
//
// # Self-Write Suppression
//
// A surface must not react to its own saves. Save records the checksum of the
// bytes it wrote; the watcher compares the file's checksum against the last
// written and last observed sums and drops the event when they match. Only
// genuinely foreign content reaches subscribers.
//
// # Crash Safety
//
// Save writes to a temporary file in the same directory and renames it over
// the slot. A crash mid-save leaves either the old list or the new list on
// disk, never a truncated mix.
//
// # Degraded Reads
//
// A missing slot file is an empty catalog. An unparsable slot file is logged
// and also treated as empty, but the bytes on disk are left untouched until
// the next explicit save, so nothing is destroyed by merely opening a surface
// against a corrupt file.
//
// # Concurrency Model
//
//   - Save(), Load(): write lock
//   - Products(), Count(): read lock with defensive copies
//   - Subscribe(): returns a buffered channel; notification sends never block,
//     a slow subscriber simply coalesces bursts into one wakeup
//
// Concurrent writers are resolved by last-writer-wins at the file level; the
// store does not merge.
package store
