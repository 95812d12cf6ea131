// Package tableview derives the visible rows of a table from an in-memory
// record list.
//
// The engine is a set of pure functions:
//
//   - ApplySearch keeps records whose searchable columns contain the search
//     text, case-insensitively, preserving input order.
//   - ApplySort orders records stably by one column. Text compares with
//     locale collation and numbers compare numerically.
//   - Paginate slices one page and reports the page count, which is never
//     below 1.
//   - ToggleSort computes the next sort state when a column is selected.
//
// Columns expose typed accessors, so a field is always read through a
// function the caller supplied. Table.Derive chains the three steps and
// clamps the current page to the resulting page count on every call.
package tableview
