// Package state provides thread-safe storage for the analytics data shown by
// orgmine.
//
// # Overview
//
// The loader fetches each dashboard section on its own goroutine and
// publishes the result here. The UI reads snapshots on every tick. Each
// section carries a tri-state load status so a page can show a spinner, an
// error, or its data.
//
//	Producer (loader):              Consumer (UI):
//	┌─────────────────────┐        ┌──────────────────┐
//	│ MarkLoading(sec)    │        │                  │
//	│ Fetch...()          │        │                  │
//	│ Update(sec, err, f) │───────→│ store.Snapshot() │
//	└─────────────────────┘ (mutex)│ render page      │
//	                               └──────────────────┘
//
// # Load States
//
//   - loading: no attempt has finished since the last MarkLoading
//   - ready: the last attempt succeeded and its data is in the snapshot
//   - error: the last attempt failed; data from an earlier success is kept
//
// ConsecutiveFailures counts failed attempts since the last success and
// drives retry backoff and the offline indicator.
//
// # Concurrency Model
//
// Update and MarkLoading take the write lock; Snapshot takes the read lock
// and returns deep copies, so callers may hold and modify snapshots freely.
// The lock is never held during network I/O or rendering.
package state
