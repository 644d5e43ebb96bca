package library

import (
	"fmt"
	"sort"
)

// Library is a facade over the four registries and the loan ledger. The
// ledger (library ID -> ISBN -> book) is the single source of truth for who
// holds what; a user's borrowed books are a projection of it, and each
// book's availability flag is kept in lockstep by CheckOut and CheckIn.
//
// All state is in process memory and lives for a single run. Access is
// single-threaded; a concurrent front end would need one mutex around the
// whole facade because checkout and check-in mutate ledger and book
// together.
type Library struct {
	authors *AuthorRegistry
	genres  *GenreRegistry
	books   *BookRegistry
	users   *UserRegistry

	loans map[string]map[string]*Book
}

// New returns an empty library.
func New() *Library {
	return &Library{
		authors: NewAuthorRegistry(),
		genres:  NewGenreRegistry(),
		books:   NewBookRegistry(),
		users:   NewUserRegistry(),
		loans:   make(map[string]map[string]*Book),
	}
}

// ------------------ Authors ------------------

// AddAuthor registers an author, returning the existing record when the name
// is already known.
func (l *Library) AddAuthor(name, biography string) (*Author, bool) {
	return l.authors.Add(name, biography)
}

// FindAuthor returns the author with the exact name, or nil.
func (l *Library) FindAuthor(name string) *Author { return l.authors.Find(name) }

// Authors lists all authors in insertion order.
func (l *Library) Authors() []*Author { return l.authors.All() }

// ------------------ Genres ------------------

// AddGenre registers a genre kind, returning the existing record when the
// kind is already known and ErrInvalidGenre for anything other than Fiction
// or Nonfiction.
func (l *Library) AddGenre(kind, description string) (*Genre, bool, error) {
	return l.genres.Add(kind, description)
}

// FindGenre returns the genre record for the kind, or nil.
func (l *Library) FindGenre(kind string) *Genre { return l.genres.Find(kind) }

// Genres lists all genres in insertion order.
func (l *Library) Genres() []*Genre { return l.genres.All() }

// ------------------ Books ------------------

// AddBook catalogs a book and files it under its genre category. The author
// and genre records must already exist (AddAuthor/AddGenre hand them out).
// Adding an ISBN that is already cataloged yields ErrDuplicateISBN and
// changes nothing.
func (l *Library) AddBook(title string, author *Author, isbn string, genre *Genre, category string) (*Book, error) {
	b, err := l.books.Add(title, author, isbn, genre, category)
	if err != nil {
		return nil, err
	}
	genre.FileBook(category, b)
	return b, nil
}

// FindBook returns the book with the given ISBN, or nil.
func (l *Library) FindBook(isbn string) *Book { return l.books.Find(isbn) }

// SearchTitle returns books whose title contains the query, case-insensitively.
func (l *Library) SearchTitle(query string) map[string]*Book { return l.books.SearchTitle(query) }

// SearchAuthor returns books whose author name contains the query,
// case-insensitively.
func (l *Library) SearchAuthor(query string) map[string]*Book { return l.books.SearchAuthor(query) }

// Books lists the whole catalog in insertion order.
func (l *Library) Books() []BookEntry { return l.books.All() }

// ------------------ Users ------------------

// AddUser registers a user, returning the existing record when the library
// ID is already taken.
func (l *Library) AddUser(name, libraryID string) (*User, bool) {
	return l.users.AddOrGet(name, libraryID)
}

// FindUser returns the user with the given library ID, or nil.
func (l *Library) FindUser(libraryID string) *User { return l.users.Find(libraryID) }

// Users lists all users in insertion order.
func (l *Library) Users() []*User { return l.users.All() }

// ------------------ Circulation ------------------

// CheckOut loans the book with the given ISBN to the user. It fails with
// ErrBookNotFound when the ISBN is not cataloged and ErrBookUnavailable when
// the book is already on loan; failures change nothing. On success the book
// is unavailable and the ledger records the loan.
func (l *Library) CheckOut(isbn string, user *User) (*Book, error) {
	b := l.books.Find(isbn)
	if b == nil {
		return nil, fmt.Errorf("%w: no book with ISBN %s", ErrBookNotFound, isbn)
	}
	if !b.Borrow() {
		return nil, fmt.Errorf("%w: %q is already checked out", ErrBookUnavailable, b.Title)
	}
	held := l.loans[user.LibraryID]
	if held == nil {
		held = make(map[string]*Book)
		l.loans[user.LibraryID] = held
	}
	held[isbn] = b
	return b, nil
}

// CheckIn returns a loaned book. It fails with ErrUserNotFound when the
// library ID is unknown and ErrNotOnLoan when the ledger has no outstanding
// loan for the (library ID, ISBN) pair; the wrapped message distinguishes a
// user with no loans at all from one who borrowed other books. On success
// the ledger entry is removed and the book is available again.
func (l *Library) CheckIn(libraryID, isbn string) (*Book, error) {
	user := l.users.Find(libraryID)
	if user == nil {
		return nil, fmt.Errorf("%w: no user with library ID %s", ErrUserNotFound, libraryID)
	}
	held, ok := l.loans[libraryID]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no books checked out", ErrNotOnLoan, libraryID)
	}
	b, ok := held[isbn]
	if !ok {
		return nil, fmt.Errorf("%w: ISBN %s was not borrowed by %s", ErrNotOnLoan, isbn, libraryID)
	}
	delete(held, isbn)
	if len(held) == 0 {
		delete(l.loans, libraryID)
	}
	b.Return()
	return b, nil
}

// BorrowedBy returns the books the user currently holds, ordered by ISBN.
// Unknown IDs and users with nothing outstanding both yield an empty slice.
func (l *Library) BorrowedBy(libraryID string) []*Book {
	held := l.loans[libraryID]
	if len(held) == 0 {
		return nil
	}
	isbns := make([]string, 0, len(held))
	for isbn := range held {
		isbns = append(isbns, isbn)
	}
	sort.Strings(isbns)
	books := make([]*Book, 0, len(isbns))
	for _, isbn := range isbns {
		books = append(books, held[isbn])
	}
	return books
}

// LoanRecord is one user's outstanding loans, for display.
type LoanRecord struct {
	User  *User
	Books []*Book
}

// Loans reports every user with at least one outstanding loan, in user
// registration order. Users who returned everything are omitted.
func (l *Library) Loans() []LoanRecord {
	var records []LoanRecord
	for _, u := range l.users.All() {
		if books := l.BorrowedBy(u.LibraryID); len(books) > 0 {
			records = append(records, LoanRecord{User: u, Books: books})
		}
	}
	return records
}
