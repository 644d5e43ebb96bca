package library

import "fmt"

// GenreRegistry keeps at most one Genre record per kind (Fiction and
// Nonfiction) and remembers insertion order for listings.
type GenreRegistry struct {
	byName map[string]*Genre
	order  []*Genre
}

// NewGenreRegistry returns an empty registry.
func NewGenreRegistry() *GenreRegistry {
	return &GenreRegistry{byName: make(map[string]*Genre)}
}

// Add registers a genre. Kind must be exactly Fiction or Nonfiction;
// anything else yields ErrInvalidGenre and no record. When the kind already
// exists the existing record is returned (the new description is discarded)
// and created is false.
func (r *GenreRegistry) Add(kind, description string) (g *Genre, created bool, err error) {
	if kind != GenreFiction && kind != GenreNonfiction {
		return nil, false, fmt.Errorf("%w: %q is not Fiction or Nonfiction", ErrInvalidGenre, kind)
	}
	if existing, ok := r.byName[kind]; ok {
		return existing, false, nil
	}
	g = &Genre{
		Name:        kind,
		Description: description,
		categories:  make(map[string][]*Book),
	}
	r.byName[kind] = g
	r.order = append(r.order, g)
	return g, true, nil
}

// Find returns the genre record for the kind, or nil when none exists yet.
func (r *GenreRegistry) Find(kind string) *Genre {
	return r.byName[kind]
}

// All returns the genres in the order they were added.
func (r *GenreRegistry) All() []*Genre {
	return append([]*Genre(nil), r.order...)
}
