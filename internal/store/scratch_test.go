package store

import (
	"context"
	"testing"

	"github.com/erazemk/seznam/internal/db"
)

func TestAddScratchItemAppends(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	inputs := []struct{ text, due string }{
		{"Buy milk", "2024-01-01"},
		{"Walk dog", ""},
		{"Buy milk", ""},
	}
	for i, in := range inputs {
		item, err := AddScratchItem(ctx, database, "", in.text, in.due)
		if err != nil {
			t.Fatalf("AddScratchItem: %v", err)
		}

		items, err := ListScratchItems(ctx, database, "")
		if err != nil {
			t.Fatalf("ListScratchItems: %v", err)
		}
		if len(items) != i+1 {
			t.Fatalf("expected %d items, got %d", i+1, len(items))
		}
		last := items[len(items)-1]
		if last != *item {
			t.Errorf("expected last item %+v, got %+v", *item, last)
		}
		if last.Text != in.text || last.DueDate != in.due {
			t.Errorf("expected (%q, %q), got (%q, %q)", in.text, in.due, last.Text, last.DueDate)
		}
	}
}

func TestDeleteScratchItemsByTextFirstMatch(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, _ := AddScratchItem(ctx, database, "", "Buy milk", "2024-01-01")
	AddScratchItem(ctx, database, "", "Walk dog", "")
	second, _ := AddScratchItem(ctx, database, "", "Buy milk", "")

	n, err := DeleteScratchItemsByText(ctx, database, "", []string{"Buy milk", "Not there"})
	if err != nil {
		t.Fatalf("DeleteScratchItemsByText: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deletion, got %d", n)
	}

	items, _ := ListScratchItems(ctx, database, "")
	if len(items) != 2 {
		t.Fatalf("expected 2 items left, got %d", len(items))
	}
	for _, item := range items {
		if item.ID == first.ID {
			t.Error("expected the oldest 'Buy milk' to be deleted")
		}
	}
	if items[1].ID != second.ID {
		t.Errorf("expected the newer 'Buy milk' to survive, got %+v", items)
	}
}

func TestDeleteScratchItemsRepeatedText(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddScratchItem(ctx, database, "", "Buy milk", "")
	AddScratchItem(ctx, database, "", "Buy milk", "")

	n, err := DeleteScratchItemsByText(ctx, database, "", []string{"Buy milk", "Buy milk"})
	if err != nil {
		t.Fatalf("DeleteScratchItemsByText: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 deletions, got %d", n)
	}
}

func TestScratchScopesAreSeparate(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddScratchItem(ctx, database, "visitor-a", "Buy milk", "")
	AddScratchItem(ctx, database, "visitor-b", "Buy milk", "")

	DeleteScratchItemsByText(ctx, database, "visitor-a", []string{"Buy milk"})

	a, _ := ListScratchItems(ctx, database, "visitor-a")
	b, _ := ListScratchItems(ctx, database, "visitor-b")
	if len(a) != 0 {
		t.Errorf("expected visitor-a to be empty, got %d", len(a))
	}
	if len(b) != 1 {
		t.Errorf("expected visitor-b to keep its item, got %d", len(b))
	}
}

func TestClearScratch(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddScratchItem(ctx, database, "", "Buy milk", "")
	AddScratchItem(ctx, database, "", "Walk dog", "")

	n, err := ClearScratch(ctx, database, "")
	if err != nil {
		t.Fatalf("ClearScratch: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 cleared, got %d", n)
	}

	items, _ := ListScratchItems(ctx, database, "")
	if len(items) != 0 {
		t.Errorf("expected empty scratch list, got %d", len(items))
	}
}
