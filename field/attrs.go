package field

import "sort"

// Attributes is the structured metadata bag carried by Fields and copied by
// value onto derived fields. Units gets a dedicated slot because nearly every
// consumer needs it; everything else lives in Extra.
//
// Attributes is a plain value: assignment shares the Extra map, Clone does not.
// Transform code must always propagate metadata via Clone.
type Attributes struct {
	// Units is the physical unit string ("Pa", "K", ...). Empty means unknown;
	// consumers tolerate that silently.
	Units string

	// Extra holds arbitrary key/value metadata (history, long_name, ...).
	// Values are copied as-is by Clone; store value types, not pointers,
	// if you rely on isolation between clones.
	Extra map[string]any
}

// Clone returns a deep copy of the attribute bag: the Extra map is
// re-allocated so mutations on the clone never show through.
// Complexity: O(len(Extra)).
func (a Attributes) Clone() Attributes {
	out := Attributes{Units: a.Units}
	if a.Extra == nil {
		return out
	}
	out.Extra = make(map[string]any, len(a.Extra))
	for k, v := range a.Extra {
		out.Extra[k] = v
	}

	return out
}

// Set stores one key/value pair, allocating Extra on first use.
// Complexity: O(1).
func (a *Attributes) Set(key string, val any) {
	if a.Extra == nil {
		a.Extra = make(map[string]any, 1)
	}
	a.Extra[key] = val
}

// Get looks one key up and reports whether it was present.
// Complexity: O(1).
func (a Attributes) Get(key string) (any, bool) {
	v, ok := a.Extra[key]

	return v, ok
}

// Keys returns every Extra key in sorted order, so listings and tests stay
// deterministic regardless of map iteration order.
// Complexity: O(k log k) for k keys.
func (a Attributes) Keys() []string {
	if len(a.Extra) == 0 {
		return nil
	}
	keys := make([]string, 0, len(a.Extra))
	for k := range a.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
