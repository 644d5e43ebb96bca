package cli

import "library-catalog/library"

type seedBook struct {
	title     string
	author    string
	biography string
	isbn      string
	genre     string
	category  string
}

// sampleCatalog is a small classics shelf used by --seed and the
// seed_catalog tool.
var sampleCatalog = []seedBook{
	{"Dune", "Frank Herbert", "American science fiction writer, best known for the Dune saga.", "978-92-95055-02-5", library.GenreFiction, "Scifi"},
	{"1984", "George Orwell", "English novelist and essayist, critic of totalitarianism.", "978-01-41036-14-4", library.GenreFiction, "Dystopia"},
	{"Animal Farm", "George Orwell", "English novelist and essayist, critic of totalitarianism.", "978-04-52284-24-1", library.GenreFiction, "Satire"},
	{"The Art Of War", "Sun Tzu", "Ancient Chinese military strategist and philosopher.", "978-15-90302-25-5", library.GenreNonfiction, "Strategy"},
	{"The Diary Of A Young Girl", "Anne Frank", "German-born diarist who documented life in hiding during the war.", "978-05-53296-98-3", library.GenreNonfiction, "Memoir"},
}

// genreDescriptions seeds the two genre records on first use.
var genreDescriptions = map[string]string{
	library.GenreFiction:    "Invented stories and narratives.",
	library.GenreNonfiction: "Factual accounts, essays and reference works.",
}

// SeedSampleCatalog loads the sample shelf into the library the same way the
// interactive add-book flow would: author and genre records are created on
// first reference, then the book is cataloged and filed.
func SeedSampleCatalog(lib *library.Library) error {
	for _, sb := range sampleCatalog {
		author := lib.FindAuthor(sb.author)
		if author == nil {
			author, _ = lib.AddAuthor(sb.author, sb.biography)
		}
		genre := lib.FindGenre(sb.genre)
		if genre == nil {
			var err error
			genre, _, err = lib.AddGenre(sb.genre, genreDescriptions[sb.genre])
			if err != nil {
				return err
			}
		}
		if _, err := lib.AddBook(sb.title, author, sb.isbn, genre, sb.category); err != nil {
			return err
		}
	}
	return nil
}
