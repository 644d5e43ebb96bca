package library

// AuthorRegistry keeps one Author record per name and remembers insertion
// order for listings.
type AuthorRegistry struct {
	byName map[string]*Author
	order  []*Author
}

// NewAuthorRegistry returns an empty registry.
func NewAuthorRegistry() *AuthorRegistry {
	return &AuthorRegistry{byName: make(map[string]*Author)}
}

// Add registers an author. When the name is already present the existing
// record is returned unchanged (the new biography is discarded) and created
// is false, so the caller can decide whether to mention the duplicate.
func (r *AuthorRegistry) Add(name, biography string) (a *Author, created bool) {
	if existing, ok := r.byName[name]; ok {
		return existing, false
	}
	a = &Author{Name: name, Biography: biography}
	r.byName[name] = a
	r.order = append(r.order, a)
	return a, true
}

// Find returns the author with the exact name, or nil when unknown. Callers
// normalize case before lookup.
func (r *AuthorRegistry) Find(name string) *Author {
	return r.byName[name]
}

// All returns the authors in the order they were added.
func (r *AuthorRegistry) All() []*Author {
	return append([]*Author(nil), r.order...)
}

// Len reports the number of registered authors.
func (r *AuthorRegistry) Len() int { return len(r.order) }
