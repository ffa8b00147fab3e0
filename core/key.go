// File: key.go
// Role: Canonical unordered-pair keys.
//
// Every table in roadnet that is indexed by a node pair (traffic counts,
// origin–destination demand, candidate pools) uses EdgeKey, and every
// EdgeKey is produced by Key. There is exactly one orientation per pair.
package core

// EdgeKey identifies an unordered vertex pair. U <= V lexicographically.
//
// Construct keys only through Key; a literal EdgeKey{U: "b", V: "a"} is not
// canonical and will miss lookups.
type EdgeKey struct {
	U string `json:"u"`
	V string `json:"v"`
}

// Key returns the canonical key of the unordered pair {a, b}.
// Complexity: O(len(a)+len(b)) for the string comparison.
func Key(a, b string) EdgeKey {
	if b < a {
		a, b = b, a
	}

	return EdgeKey{U: a, V: b}
}

// Has reports whether id is one of the endpoints.
func (k EdgeKey) Has(id string) bool { return k.U == id || k.V == id }

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (k EdgeKey) Other(id string) string {
	switch id {
	case k.U:
		return k.V
	case k.V:
		return k.U
	default:
		return ""
	}
}

// IsLoop reports whether both endpoints are the same vertex.
func (k EdgeKey) IsLoop() bool { return k.U == k.V }

// String renders the key as "U-V".
func (k EdgeKey) String() string { return k.U + "-" + k.V }

// Less orders keys by U, then V. Used for deterministic enumeration.
func (k EdgeKey) Less(o EdgeKey) bool {
	if k.U != o.U {
		return k.U < o.U
	}

	return k.V < o.V
}
