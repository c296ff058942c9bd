// Package widgets contains dumb render primitives for the table viewer.
//
// Allowed here:
// - stateless drawing/composition helpers (table grid, page navigator, vertical stacking, popup overlay)
//
// Not allowed here:
// - key handling, filtering, sorting or paging decisions; those come from datatable
package widgets
