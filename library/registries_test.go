package library

import "testing"

func TestAuthorRegistryDeduplicatesByName(t *testing.T) {
	authors := NewAuthorRegistry()

	first, created := authors.Add("Frank Herbert", "Original biography.")
	if !created {
		t.Fatalf("first add should create the record")
	}
	second, created := authors.Add("Frank Herbert", "Replacement biography.")
	if created {
		t.Fatalf("duplicate add must not report a new record")
	}
	if second != first {
		t.Fatalf("duplicate add must return the pre-existing record")
	}
	if second.Biography != "Original biography." {
		t.Fatalf("biography must be unchanged, got %q", second.Biography)
	}
	if authors.Len() != 1 {
		t.Fatalf("author count must be unchanged, got %d", authors.Len())
	}
}

func TestAuthorRegistryFindAndOrder(t *testing.T) {
	authors := NewAuthorRegistry()
	authors.Add("Frank Herbert", "")
	authors.Add("George Orwell", "")

	if authors.Find("George Orwell") == nil {
		t.Fatalf("registered author not found")
	}
	if authors.Find("Unknown Person") != nil {
		t.Fatalf("lookup miss should return nil")
	}

	all := authors.All()
	if len(all) != 2 || all[0].Name != "Frank Herbert" || all[1].Name != "George Orwell" {
		t.Fatalf("authors not listed in insertion order: %v", all)
	}
}

func TestUserRegistryKeepsFirstRecordPerID(t *testing.T) {
	users := NewUserRegistry()

	first, created := users.AddOrGet("Paul Atreides", paulID)
	if !created {
		t.Fatalf("first add should create the user")
	}
	second, created := users.AddOrGet("Somebody Else", paulID)
	if created {
		t.Fatalf("duplicate ID must not create a second user")
	}
	if second != first || second.Name != "Paul Atreides" {
		t.Fatalf("duplicate ID must return the original user unchanged")
	}

	if users.Find(paulID) != first {
		t.Fatalf("find by ID should return the registered user")
	}
	if users.Find("ZZ99999") != nil {
		t.Fatalf("lookup miss should return nil")
	}
	if len(users.All()) != 1 {
		t.Fatalf("registry should hold exactly one user")
	}
}
