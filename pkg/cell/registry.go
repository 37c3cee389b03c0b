package cell

var kinds = map[string]*Kind{}

// Register adds a kind under its name.
func Register(k *Kind) {
	if k == nil || k.Name == "" {
		return
	}
	kinds[k.Name] = k
}

// Kinds exposes the registry of available kinds.
func Kinds() map[string]*Kind {
	return kinds
}

// Lookup returns the kind registered under name.
func Lookup(name string) (*Kind, bool) {
	k, ok := kinds[name]
	return k, ok
}
