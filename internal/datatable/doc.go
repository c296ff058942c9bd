// Package datatable is the tabular data engine behind the table viewer and
// the page navigator.
//
// A derivation runs three steps in a fixed order:
//   - Filter keeps records whose searchable columns contain the query
//     (case-insensitive substring), preserving input order.
//   - Sort stably reorders by one column; descending reverses the
//     comparator so ties keep their input order.
//   - Slice clamps the requested page and cuts the visible window.
//
// Window computes the page numbers and ellipsis markers a paginator shows.
// Table keeps the caller-mutable inputs and memoizes the filtered, sorted
// sequence across page changes.
//
// The engine degrades instead of failing: unknown sort columns disable
// sorting, out-of-range pages clamp, and non-positive page sizes become 1.
// Duplicate column ids are the only error, reported by NewColumns.
package datatable
