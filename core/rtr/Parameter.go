package rtr

// Parameter represents a path parameter extracted from dynamic route segments.
// The tree returns captured values from patterns like /cars/:name.
//
// Example:
//   Pattern: /cars/:name/parts/:partId
//   Path:    /cars/tesla/parts/42
//   Result:  []Parameter{{Key: "name", Value: "tesla"}, {Key: "partId", Value: "42"}}
//
// An ordered slice is used instead of a map to preserve the parameter
// sequence from the pattern and to avoid map allocation per lookup.
type Parameter struct {
	Key   string
	Value string
}
