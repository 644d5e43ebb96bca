package library

// UserRegistry keys users by library ID and remembers insertion order for
// listings. IDs are case-normalized upstream.
type UserRegistry struct {
	byID  map[string]*User
	order []*User
}

// NewUserRegistry returns an empty registry.
func NewUserRegistry() *UserRegistry {
	return &UserRegistry{byID: make(map[string]*User)}
}

// AddOrGet registers a user. When the library ID is already taken the
// existing user is returned (the name argument is ignored) and created is
// false, so the caller can adjust its messaging.
func (r *UserRegistry) AddOrGet(name, libraryID string) (u *User, created bool) {
	if existing, ok := r.byID[libraryID]; ok {
		return existing, false
	}
	u = &User{Name: name, LibraryID: libraryID}
	r.byID[libraryID] = u
	r.order = append(r.order, u)
	return u, true
}

// Find returns the user with the given library ID, or nil when unknown.
func (r *UserRegistry) Find(libraryID string) *User {
	return r.byID[libraryID]
}

// All returns the users in the order they were added.
func (r *UserRegistry) All() []*User {
	return append([]*User(nil), r.order...)
}
