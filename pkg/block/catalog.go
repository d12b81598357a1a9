package block

// Factory constructs a fresh block of one kind, scoped to the given
// workspace. The block is render-ready: construction assigns whatever
// defaults the kind defines (a getter block, for example, comes up bound
// to the default variable name).
type Factory func(ws *Workspace) Block

// Catalog holds the process-wide set of known block kinds.
// Kinds are registered once at startup, then looked up by name.
type Catalog struct {
	kinds map[string]Factory
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		kinds: make(map[string]Factory),
	}
}

// Register adds a kind to the catalog.
// Returns ErrKindAlreadyExists if the kind name is already taken.
func (c *Catalog) Register(kind string, f Factory) error {
	if _, exists := c.kinds[kind]; exists {
		return ErrKindAlreadyExists
	}
	c.kinds[kind] = f
	return nil
}

// Lookup returns the factory for the given kind name.
func (c *Catalog) Lookup(kind string) (Factory, bool) {
	f, ok := c.kinds[kind]
	return f, ok
}
