package rtr

// RouteList represents a registered route for debugging and inspection.
// Router implementations use it to expose their route tables in a
// human-readable form.
//
// Fields:
//   - Pattern: the route pattern (e.g. "/cars/:name")
//   - HandlerRef: string representation of the handler (for debugging)
//
// Primarily used for route-table visualization, debugging registration
// conflicts, and testing.
type RouteList struct {
	Pattern    string
	HandlerRef string
}
