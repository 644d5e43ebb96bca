package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/term"

	"library-catalog/library"
)

// Session drives one interactive run against a Library.
type Session struct {
	lib *library.Library
	p   *prompter
}

// NewSession wraps the library in a prompt/response loop reading from r.
func NewSession(lib *library.Library, r io.Reader) *Session {
	interactive := false
	if f, ok := r.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return &Session{
		lib: lib,
		p:   &prompter{sc: bufio.NewScanner(r), interactive: interactive},
	}
}

// Run reads commands until exit or end of input.
func (s *Session) Run() {
	if s.p.interactive {
		printHelp()
	}
	for {
		cmd, ok := s.p.line("\n> ")
		if !ok {
			return
		}
		switch cmd {
		case "add book":
			s.handleAddBook()
		case "add author":
			s.handleAddAuthor()
		case "add genre":
			s.handleAddGenre()
		case "add user":
			s.handleAddUser()
		case "checkout":
			s.handleCheckOut()
		case "checkin":
			s.handleCheckIn()
		case "search title":
			s.handleSearchTitle()
		case "search author":
			s.handleSearchAuthor()
		case "search isbn":
			s.handleSearchISBN()
		case "list books":
			s.handleListBooks()
		case "list loans":
			s.handleListLoans()
		case "list users":
			s.handleListUsers()
		case "list authors":
			s.handleListAuthors()
		case "list genres":
			s.handleListGenres()
		case "my books":
			s.handleMyBooks()
		case "help":
			printHelp()
		case "exit":
			fmt.Println("Goodbye!")
			return
		case "":
			// blank line, re-prompt
		default:
			Errorf("Unknown command %q. Type 'help' for the list of commands.", cmd)
		}
	}
}

func printHelp() {
	fmt.Println("Welcome to the library catalog!")
	fmt.Println("Available commands:")
	fmt.Println("  Catalog:     add book, add author, add genre, list books, list authors, list genres")
	fmt.Println("  Users:       add user, list users, my books")
	fmt.Println("  Circulation: checkout, checkin, list loans")
	fmt.Println("  Search:      search title, search author, search isbn")
	fmt.Println("  System:      help, exit")
}

// ------------------ Catalog ------------------

// handleAddBook collects a full book record, creating the author and genre
// on the fly when they are not registered yet.
func (s *Session) handleAddBook() {
	title, ok := s.p.titled("Book title: ")
	if !ok {
		return
	}
	authorName, ok := s.p.titled("Book author: ")
	if !ok {
		return
	}
	author := s.lib.FindAuthor(authorName)
	if author == nil {
		Infof("This author has not been found in the library.")
		biography, ok := s.p.freeText("Author's biography (no more than 300 characters): ", maxBiographyLen)
		if !ok {
			return
		}
		author, _ = s.lib.AddAuthor(authorName, biography)
	}

	isbn, ok := s.p.isbn("Book ISBN (example: 978-92-95055-02-5): ")
	if !ok {
		return
	}
	if s.lib.FindBook(isbn) != nil {
		Errorf("This book is already in the library!")
		return
	}

	kind, ok := s.p.titled("Genre (Fiction or Nonfiction): ")
	if !ok {
		return
	}
	genre := s.lib.FindGenre(kind)
	if genre == nil {
		description, ok := s.p.freeText("Genre description (no more than 200 characters): ", maxDescriptionLen)
		if !ok {
			return
		}
		var err error
		genre, _, err = s.lib.AddGenre(kind, description)
		if err != nil {
			Errorf("Invalid genre type. Please specify 'Fiction' or 'Nonfiction'.")
			return
		}
	}

	categoryPrompt := "Fiction genre category: "
	if kind == library.GenreNonfiction {
		categoryPrompt = "Nonfiction genre subject: "
	}
	category, ok := s.p.titled(categoryPrompt)
	if !ok {
		return
	}

	book, err := s.lib.AddBook(title, author, isbn, genre, category)
	if err != nil {
		Errorf("Could not add book: %v", err)
		return
	}
	Successf("The book %q by %s has been added to the library.", book.Title, author.Name)
}

func (s *Session) handleAddAuthor() {
	name, ok := s.p.titled("Author's full name: ")
	if !ok {
		return
	}
	biography, ok := s.p.freeText("Author's biography (no more than 300 characters): ", maxBiographyLen)
	if !ok {
		return
	}
	author, created := s.lib.AddAuthor(name, biography)
	if created {
		Successf("%s has been added to the list of authors in the library.", author.Name)
	} else {
		Infof("%s already exists in the library.", author.Name)
	}
}

func (s *Session) handleAddGenre() {
	kind, ok := s.p.titled("Genre type (Fiction or Nonfiction): ")
	if !ok {
		return
	}
	description, ok := s.p.freeText("Genre description (no more than 200 characters): ", maxDescriptionLen)
	if !ok {
		return
	}
	genre, created, err := s.lib.AddGenre(kind, description)
	if err != nil {
		Errorf("Invalid genre type. Please specify 'Fiction' or 'Nonfiction'.")
		return
	}
	if created {
		Successf("Genre %q has been added to the list of genres in the library.", genre.Name)
		return
	}
	// Existing genre: offer to extend its category list instead.
	categoryPrompt := "Fiction genre category to add: "
	if genre.Name == library.GenreNonfiction {
		categoryPrompt = "Nonfiction genre subject to add: "
	}
	category, ok := s.p.titled(categoryPrompt)
	if !ok {
		return
	}
	genre.AddCategory(category)
	Infof("Genre %q already exists; category %q is now registered.", genre.Name, category)
}

// ------------------ Users ------------------

// addOrGetUser prompts for name and library ID and registers the user,
// returning the existing record when the ID is already taken.
func (s *Session) addOrGetUser() *library.User {
	name, ok := s.p.titled("Full name: ")
	if !ok {
		return nil
	}
	libraryID, ok := s.p.libraryID("Library ID (example: AZ12345): ")
	if !ok {
		return nil
	}
	user, created := s.lib.AddUser(name, libraryID)
	if created {
		Successf("%s (Library ID: %s) has been added as a new user to the library.", user.Name, user.LibraryID)
	} else {
		Infof("User with library ID %s already exists.", user.LibraryID)
	}
	return user
}

func (s *Session) handleAddUser() {
	s.addOrGetUser()
}

// ------------------ Circulation ------------------

func (s *Session) handleCheckOut() {
	isbn, ok := s.p.isbn("Book ISBN (example: 978-92-95055-02-5): ")
	if !ok {
		return
	}
	if s.lib.FindBook(isbn) == nil {
		Errorf("There is no book with ISBN %q in the library!", isbn)
		return
	}
	user := s.addOrGetUser()
	if user == nil {
		return
	}
	book, err := s.lib.CheckOut(isbn, user)
	switch {
	case errors.Is(err, library.ErrBookUnavailable):
		Errorf("The book is unavailable!")
	case err != nil:
		Errorf("Could not check out: %v", err)
	default:
		Successf("The book %q by %s, ISBN %s, has been loaned to %s (Library ID: %s).",
			book.Title, book.Author.Name, book.ISBN, user.Name, user.LibraryID)
	}
}

func (s *Session) handleCheckIn() {
	libraryID, ok := s.p.libraryID("Library ID (example: AZ12345): ")
	if !ok {
		return
	}
	isbn, ok := s.p.isbn("Book ISBN (example: 978-92-95055-02-5): ")
	if !ok {
		return
	}
	book, err := s.lib.CheckIn(libraryID, isbn)
	switch {
	case errors.Is(err, library.ErrUserNotFound):
		Errorf("No user with library ID %s has been found in the library!", libraryID)
	case errors.Is(err, library.ErrNotOnLoan):
		Errorf("%v", err)
	case err != nil:
		Errorf("Could not check in: %v", err)
	default:
		Successf("The book %q, ISBN %s, has been returned by library ID %s.", book.Title, book.ISBN, libraryID)
	}
}

func (s *Session) handleListLoans() {
	records := s.lib.Loans()
	if len(records) == 0 {
		Mutedf("No books are currently loaned!")
		return
	}
	for _, rec := range records {
		Heading(fmt.Sprintf("Books loaned to %s (Library ID: %s):", rec.User.Name, rec.User.LibraryID))
		for _, b := range rec.Books {
			printBookLine(b)
		}
	}
}

func (s *Session) handleMyBooks() {
	libraryID, ok := s.p.libraryID("Library ID (example: AZ12345): ")
	if !ok {
		return
	}
	user := s.lib.FindUser(libraryID)
	if user == nil {
		Errorf("No user was found with library ID %s.", libraryID)
		return
	}
	books := s.lib.BorrowedBy(libraryID)
	if len(books) == 0 {
		Mutedf("%s has no books checked out.", user.Name)
		return
	}
	Heading(fmt.Sprintf("Books borrowed by %s (Library ID: %s):", user.Name, user.LibraryID))
	for _, b := range books {
		printBookLine(b)
	}
}

// ------------------ Search ------------------

func (s *Session) handleSearchTitle() {
	query, ok := s.p.line("Book title: ")
	if !ok {
		return
	}
	printSearchResults(s.lib.SearchTitle(query), query)
}

func (s *Session) handleSearchAuthor() {
	query, ok := s.p.line("Book author: ")
	if !ok {
		return
	}
	printSearchResults(s.lib.SearchAuthor(query), query)
}

func (s *Session) handleSearchISBN() {
	isbn, ok := s.p.isbn("Book ISBN (example: 978-92-95055-02-5): ")
	if !ok {
		return
	}
	book := s.lib.FindBook(isbn)
	if book == nil {
		Mutedf("No ISBN %q has been found in our library!", isbn)
		return
	}
	Heading("This is what we have found in the library:")
	printBookLine(book)
}

// printSearchResults renders a result map in ISBN order.
func printSearchResults(results map[string]*library.Book, query string) {
	if len(results) == 0 {
		Mutedf("Nothing matching %q has been found in the library!", query)
		return
	}
	isbns := make([]string, 0, len(results))
	for isbn := range results {
		isbns = append(isbns, isbn)
	}
	sort.Strings(isbns)
	Heading("This is what we have found in the library:")
	for _, isbn := range isbns {
		printBookLine(results[isbn])
	}
}

// ------------------ Listings ------------------

func printBookLine(b *library.Book) {
	status := ""
	if !b.Available {
		status = "  (on loan)"
	}
	fmt.Printf("  %s by %s, ISBN: %s%s\n", b.Title, b.Author.Name, b.ISBN, status)
}

func (s *Session) handleListBooks() {
	entries := s.lib.Books()
	if len(entries) == 0 {
		Mutedf("Currently, there are no books in the library!")
		return
	}
	Heading("Here is the list of books in the library:")
	for _, e := range entries {
		printBookLine(e.Book)
	}
}

func (s *Session) handleListUsers() {
	users := s.lib.Users()
	if len(users) == 0 {
		Mutedf("No users are found!")
		return
	}
	Heading("Here is the list of current users in the library:")
	for _, u := range users {
		fmt.Printf("  %s (Library ID: %s)\n", u.Name, u.LibraryID)
	}
}

func (s *Session) handleListAuthors() {
	authors := s.lib.Authors()
	if len(authors) == 0 {
		Mutedf("No authors have been added to the library yet!")
		return
	}
	Heading("Here is the list of current authors in the library:")
	for _, a := range authors {
		fmt.Printf("  Author: %s\n", a.Name)
		fmt.Printf("  Biography: %s\n", a.Biography)
	}
}

func (s *Session) handleListGenres() {
	genres := s.lib.Genres()
	if len(genres) == 0 {
		Mutedf("No genres have been added to the library yet!")
		return
	}
	for _, g := range genres {
		Heading(fmt.Sprintf("Genre: %s", g.Name))
		fmt.Printf("  Description: %s\n", g.Description)
		for _, category := range g.Categories() {
			fmt.Printf("  Category: %s\n", category)
			books := g.BooksIn(category)
			if len(books) == 0 {
				Mutedf("    No books in this category")
				continue
			}
			for _, b := range books {
				fmt.Printf("    - %s by %s\n", b.Title, b.Author.Name)
			}
		}
	}
}
