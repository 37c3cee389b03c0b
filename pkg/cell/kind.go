package cell

// Value is the state carried by a cell. Each kind constrains it to a single
// Go type and rejects anything else at the API boundary.
type Value any

// Kind bundles the state type, regeneration rule and display rules for one
// family of cells. Nets store a kind per cell instead of dispatching on
// concrete cell types, so adding a kind touches no other core logic.
type Kind struct {
	// Name identifies the kind in the registry and on the command line.
	Name string
	// Zero is the state newly created cells start with.
	Zero Value
	// Validate rejects state values of the wrong Go type.
	Validate func(v Value) error
	// Rule computes the next state from the current state and the current
	// neighbor states.
	Rule func(self Value, neighbors []Value) Value
	// Glyph renders the state as a short fixed-width form for grid viewers.
	Glyph func(v Value) string
	// Format renders the state in its literal string form.
	Format func(v Value) string
}
