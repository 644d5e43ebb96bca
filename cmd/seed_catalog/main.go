package main

import (
	"fmt"
	"os"

	"library-catalog/cli"
	"library-catalog/library"
)

// Seeds a fresh in-memory library with the sample catalog and walks one loan
// through checkout and check-in, printing the state after each step. Useful
// as a smoke test of the whole facade without interactive input.
func main() {
	lib := library.New()

	fmt.Println("Seeding sample catalog...")
	if err := cli.SeedSampleCatalog(lib); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding catalog: %v\n", err)
		os.Exit(1)
	}

	books := lib.Books()
	fmt.Printf("Seeded %d books, %d authors, %d genres.\n\n", len(books), len(lib.Authors()), len(lib.Genres()))

	fmt.Printf("%-30s %-20s %-20s %s\n", "Title", "Author", "ISBN", "Available")
	for _, e := range books {
		fmt.Printf("%-30s %-20s %-20s %t\n", e.Book.Title, e.Book.Author.Name, e.ISBN, e.Book.Available)
	}

	// Walk one loan through the state machine.
	const (
		demoISBN = "978-92-95055-02-5"
		demoID   = "AB12345"
	)

	user, _ := lib.AddUser("Paul Atreides", demoID)
	book, err := lib.CheckOut(demoISBN, user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error checking out: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nChecked out %q to %s (Library ID: %s).\n", book.Title, user.Name, user.LibraryID)

	for _, rec := range lib.Loans() {
		fmt.Printf("On loan to %s (Library ID: %s):\n", rec.User.Name, rec.User.LibraryID)
		for _, b := range rec.Books {
			fmt.Printf("  %s, ISBN: %s\n", b.Title, b.ISBN)
		}
	}

	if _, err := lib.CheckIn(demoID, demoISBN); err != nil {
		fmt.Fprintf(os.Stderr, "Error checking in: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Checked %q back in; available again: %t.\n", book.Title, book.Available)

	if len(lib.Loans()) == 0 {
		fmt.Println("No outstanding loans.")
	}
}
