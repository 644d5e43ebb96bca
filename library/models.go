package library

// Author holds the name and biography of a book author. The registry keeps
// one record per name; books reference the shared record.
type Author struct {
	Name      string
	Biography string
}

// Genre kinds. These are the only two values the genre registry accepts.
const (
	GenreFiction    = "Fiction"
	GenreNonfiction = "Nonfiction"
)

// Genre groups books into named categories ("Scifi" under Fiction, "History"
// under Nonfiction). At most one record exists per kind.
type Genre struct {
	Name        string
	Description string

	categories    map[string][]*Book
	categoryOrder []string
}

// AddCategory ensures the named category exists. Adding an existing category
// is a no-op.
func (g *Genre) AddCategory(name string) {
	if _, ok := g.categories[name]; ok {
		return
	}
	if g.categories == nil {
		g.categories = make(map[string][]*Book)
	}
	g.categories[name] = nil
	g.categoryOrder = append(g.categoryOrder, name)
}

// FileBook records the book under the named category, creating the category
// if needed.
func (g *Genre) FileBook(category string, b *Book) {
	g.AddCategory(category)
	g.categories[category] = append(g.categories[category], b)
}

// Categories returns the category names in the order they were added.
func (g *Genre) Categories() []string {
	return append([]string(nil), g.categoryOrder...)
}

// BooksIn returns the books filed under the named category.
func (g *Genre) BooksIn(category string) []*Book {
	return append([]*Book(nil), g.categories[category]...)
}

// Book is a catalog record. Availability is the only mutable field; it flips
// through Borrow and Return and must always agree with the loan ledger.
type Book struct {
	Title     string
	Author    *Author
	ISBN      string
	Genre     *Genre
	Category  string
	Available bool
}

// Borrow marks the book unavailable. It reports false when the book is
// already checked out, leaving it unchanged.
func (b *Book) Borrow() bool {
	if !b.Available {
		return false
	}
	b.Available = false
	return true
}

// Return marks the book available again. The caller is responsible for
// ensuring the book was actually on loan.
func (b *Book) Return() {
	b.Available = true
}

// User is a registered borrower identified by library ID. The books a user
// currently holds live in the loan ledger; see Library.BorrowedBy.
type User struct {
	Name      string
	LibraryID string
}
