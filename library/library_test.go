package library

import (
	"errors"
	"testing"
)

const (
	duneISBN = "978-92-95055-02-5"
	paulID   = "AB12345"
)

// addDune catalogs one Fiction book and returns it, creating the author and
// genre records the way the add-book flow does.
func addDune(t *testing.T, lib *Library) *Book {
	t.Helper()
	author, _ := lib.AddAuthor("Frank Herbert", "American science fiction writer.")
	genre, _, err := lib.AddGenre(GenreFiction, "Invented stories.")
	if err != nil {
		t.Fatalf("add genre: %v", err)
	}
	book, err := lib.AddBook("Dune", author, duneISBN, genre, "Scifi")
	if err != nil {
		t.Fatalf("add book: %v", err)
	}
	return book
}

func TestAddBookRegistersEverywhere(t *testing.T) {
	lib := New()
	book := addDune(t, lib)

	if got := lib.FindBook(duneISBN); got != book {
		t.Fatalf("FindBook returned %v, want the cataloged record", got)
	}
	if lib.FindAuthor("Frank Herbert") == nil {
		t.Fatalf("author was not registered")
	}
	genre := lib.FindGenre(GenreFiction)
	if genre == nil {
		t.Fatalf("genre was not registered")
	}
	filed := genre.BooksIn("Scifi")
	if len(filed) != 1 || filed[0] != book {
		t.Fatalf("book was not filed under the Scifi category: %v", filed)
	}
	if !book.Available {
		t.Fatalf("new book should be available")
	}
}

func TestCheckOutFlow(t *testing.T) {
	lib := New()
	book := addDune(t, lib)
	user, created := lib.AddUser("Paul Atreides", paulID)
	if !created {
		t.Fatalf("expected a new user")
	}

	got, err := lib.CheckOut(duneISBN, user)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if got != book {
		t.Fatalf("checkout returned the wrong book")
	}
	if book.Available {
		t.Fatalf("book should be unavailable after checkout")
	}

	borrowed := lib.BorrowedBy(paulID)
	if len(borrowed) != 1 || borrowed[0] != book {
		t.Fatalf("borrowed list should contain exactly the loaned book, got %v", borrowed)
	}

	records := lib.Loans()
	if len(records) != 1 {
		t.Fatalf("want 1 loan record, got %d", len(records))
	}
	if records[0].User != user || len(records[0].Books) != 1 || records[0].Books[0] != book {
		t.Fatalf("loan record does not match the checkout")
	}
}

func TestCheckOutUnknownISBNMutatesNothing(t *testing.T) {
	lib := New()
	addDune(t, lib)
	user, _ := lib.AddUser("Paul Atreides", paulID)

	_, err := lib.CheckOut("999-99-99999-99-9", user)
	if !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("want ErrBookNotFound, got %v", err)
	}
	if len(lib.Loans()) != 0 {
		t.Fatalf("failed checkout must not create loan records")
	}
	if len(lib.BorrowedBy(paulID)) != 0 {
		t.Fatalf("failed checkout must not touch the user's borrowed list")
	}
}

func TestCheckOutUnavailableBookLeavesStateUnchanged(t *testing.T) {
	lib := New()
	book := addDune(t, lib)
	first, _ := lib.AddUser("Paul Atreides", paulID)
	second, _ := lib.AddUser("Duncan Idaho", "CD67890")

	if _, err := lib.CheckOut(duneISBN, first); err != nil {
		t.Fatalf("first checkout: %v", err)
	}
	_, err := lib.CheckOut(duneISBN, second)
	if !errors.Is(err, ErrBookUnavailable) {
		t.Fatalf("want ErrBookUnavailable, got %v", err)
	}

	if book.Available {
		t.Fatalf("book must stay unavailable")
	}
	if len(lib.BorrowedBy("CD67890")) != 0 {
		t.Fatalf("second user must not appear in the ledger")
	}
	records := lib.Loans()
	if len(records) != 1 || records[0].User != first {
		t.Fatalf("ledger must still record only the first loan")
	}
}

func TestCheckInRoundTrip(t *testing.T) {
	lib := New()
	book := addDune(t, lib)
	user, _ := lib.AddUser("Paul Atreides", paulID)

	if _, err := lib.CheckOut(duneISBN, user); err != nil {
		t.Fatalf("checkout: %v", err)
	}
	returned, err := lib.CheckIn(paulID, duneISBN)
	if err != nil {
		t.Fatalf("checkin: %v", err)
	}
	if returned != book {
		t.Fatalf("checkin returned the wrong book")
	}
	if !book.Available {
		t.Fatalf("book should be available after check-in")
	}
	if len(lib.BorrowedBy(paulID)) != 0 {
		t.Fatalf("borrowed list should be empty after check-in")
	}
	if len(lib.Loans()) != 0 {
		t.Fatalf("ledger should have no records after check-in")
	}

	// Catalog membership is unaffected by loan status.
	if _, ok := lib.SearchTitle("dune")[duneISBN]; !ok {
		t.Fatalf("returned book should still be findable by title")
	}

	// A fresh checkout works again and the ledger reflects only it.
	if _, err := lib.CheckOut(duneISBN, user); err != nil {
		t.Fatalf("second checkout: %v", err)
	}
	if book.Available {
		t.Fatalf("book should be unavailable after the second checkout")
	}
	if n := len(lib.Loans()); n != 1 {
		t.Fatalf("want exactly 1 loan record after re-checkout, got %d", n)
	}
}

func TestCheckInFailureCauses(t *testing.T) {
	lib := New()
	addDune(t, lib)
	user, _ := lib.AddUser("Paul Atreides", paulID)

	// Unknown user.
	if _, err := lib.CheckIn("ZZ99999", duneISBN); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}

	// Known user, nothing checked out at all.
	if _, err := lib.CheckIn(paulID, duneISBN); !errors.Is(err, ErrNotOnLoan) {
		t.Fatalf("want ErrNotOnLoan for a user with no loans, got %v", err)
	}

	// Known user with a loan, but a different ISBN.
	if _, err := lib.CheckOut(duneISBN, user); err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if _, err := lib.CheckIn(paulID, "999-99-99999-99-9"); !errors.Is(err, ErrNotOnLoan) {
		t.Fatalf("want ErrNotOnLoan for an ISBN the user did not borrow, got %v", err)
	}

	// The outstanding loan is untouched by the failures.
	if len(lib.BorrowedBy(paulID)) != 1 {
		t.Fatalf("failed check-ins must not disturb the outstanding loan")
	}
}

func TestLoansOmitsUsersWhoReturnedEverything(t *testing.T) {
	lib := New()
	addDune(t, lib)
	author := lib.FindAuthor("Frank Herbert")
	genre := lib.FindGenre(GenreFiction)
	if _, err := lib.AddBook("Dune Messiah", author, "978-92-95055-03-2", genre, "Scifi"); err != nil {
		t.Fatalf("add second book: %v", err)
	}

	paul, _ := lib.AddUser("Paul Atreides", paulID)
	duncan, _ := lib.AddUser("Duncan Idaho", "CD67890")

	if _, err := lib.CheckOut(duneISBN, paul); err != nil {
		t.Fatalf("checkout paul: %v", err)
	}
	if _, err := lib.CheckOut("978-92-95055-03-2", duncan); err != nil {
		t.Fatalf("checkout duncan: %v", err)
	}
	if _, err := lib.CheckIn(paulID, duneISBN); err != nil {
		t.Fatalf("checkin paul: %v", err)
	}

	records := lib.Loans()
	if len(records) != 1 || records[0].User != duncan {
		t.Fatalf("only Duncan should appear in the loan listing, got %v", records)
	}
}

// Availability must agree with the ledger across a mixed sequence of loans.
func TestAvailabilityMatchesLedger(t *testing.T) {
	lib := New()
	addDune(t, lib)
	author := lib.FindAuthor("Frank Herbert")
	genre := lib.FindGenre(GenreFiction)
	isbns := []string{duneISBN, "978-92-95055-03-2", "978-92-95055-04-9"}
	for _, isbn := range isbns[1:] {
		if _, err := lib.AddBook("Book "+isbn, author, isbn, genre, "Scifi"); err != nil {
			t.Fatalf("add book: %v", err)
		}
	}
	user, _ := lib.AddUser("Paul Atreides", paulID)

	lib.CheckOut(isbns[0], user)
	lib.CheckOut(isbns[1], user)
	lib.CheckIn(paulID, isbns[0])

	onLoan := make(map[string]bool)
	for _, rec := range lib.Loans() {
		for _, b := range rec.Books {
			onLoan[b.ISBN] = true
		}
	}
	for _, e := range lib.Books() {
		if e.Book.Available == onLoan[e.ISBN] {
			t.Fatalf("book %s: available=%t but ledger presence=%t", e.ISBN, e.Book.Available, onLoan[e.ISBN])
		}
	}
}
