package library

import (
	"fmt"
	"strings"
)

// BookEntry pairs a book with its ISBN key for ordered listings.
type BookEntry struct {
	ISBN string
	Book *Book
}

// BookRegistry keys books by ISBN and remembers insertion order for
// listings. ISBN format is validated upstream; the registry trusts the
// caller but never overwrites an existing record.
type BookRegistry struct {
	byISBN map[string]*Book
	order  []*Book
}

// NewBookRegistry returns an empty registry.
func NewBookRegistry() *BookRegistry {
	return &BookRegistry{byISBN: make(map[string]*Book)}
}

// Add catalogs a new book, available by default. Adding an ISBN that is
// already cataloged yields ErrDuplicateISBN and leaves the existing record
// untouched.
func (r *BookRegistry) Add(title string, author *Author, isbn string, genre *Genre, category string) (*Book, error) {
	if _, ok := r.byISBN[isbn]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateISBN, isbn)
	}
	b := &Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Genre:     genre,
		Category:  category,
		Available: true,
	}
	r.byISBN[isbn] = b
	r.order = append(r.order, b)
	return b, nil
}

// Find returns the book with the given ISBN, or nil when not cataloged.
func (r *BookRegistry) Find(isbn string) *Book {
	return r.byISBN[isbn]
}

// SearchTitle returns the books whose title contains the query,
// case-insensitively, keyed by ISBN.
func (r *BookRegistry) SearchTitle(query string) map[string]*Book {
	q := strings.ToLower(query)
	results := make(map[string]*Book)
	for isbn, b := range r.byISBN {
		if strings.Contains(strings.ToLower(b.Title), q) {
			results[isbn] = b
		}
	}
	return results
}

// SearchAuthor returns the books whose author name contains the query,
// case-insensitively, keyed by ISBN.
func (r *BookRegistry) SearchAuthor(query string) map[string]*Book {
	q := strings.ToLower(query)
	results := make(map[string]*Book)
	for isbn, b := range r.byISBN {
		if strings.Contains(strings.ToLower(b.Author.Name), q) {
			results[isbn] = b
		}
	}
	return results
}

// All returns the catalog in the order books were added.
func (r *BookRegistry) All() []BookEntry {
	entries := make([]BookEntry, 0, len(r.order))
	for _, b := range r.order {
		entries = append(entries, BookEntry{ISBN: b.ISBN, Book: b})
	}
	return entries
}

// Len reports the number of cataloged books.
func (r *BookRegistry) Len() int { return len(r.order) }
