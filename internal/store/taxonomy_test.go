package store

import (
	"sort"
	"testing"

	"github.com/google/uuid"
)

func TestCategoryStoreList(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(testHandle(t, db))

	prefix := "test-cat-order-" + uuid.NewString()[:8]
	testCategory(t, db, prefix+"-b")
	testCategory(t, db, prefix+"-a")

	items, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	names := []string{}
	for _, c := range items {
		names = append(names, c.Name)
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("categories not ordered by name: %v", names)
	}

	var found int
	for _, c := range items {
		if c.Name == prefix+"-a" || c.Name == prefix+"-b" {
			found++
		}
	}
	if found != 2 {
		t.Errorf("expected both fixture categories listed, found %d", found)
	}
}

func TestCategoryStoreFindByID(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(testHandle(t, db))

	name := "test-cat-" + uuid.NewString()[:8]
	id := testCategory(t, db, name)

	c, err := s.FindByID(id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if c == nil || c.Name != name {
		t.Errorf("got %v, want category %q", c, name)
	}

	missing, err := s.FindByID(-1)
	if err != nil {
		t.Fatalf("FindByID missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing category")
	}
}

func TestTagStoreList(t *testing.T) {
	db := testDB(t)
	s := NewTagStore(testHandle(t, db))

	prefix := "test-tag-order-" + uuid.NewString()[:8]
	testTag(t, db, prefix+"-b")
	testTag(t, db, prefix+"-a")

	items, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	names := []string{}
	for _, tag := range items {
		names = append(names, tag.Name)
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("tags not ordered by name: %v", names)
	}
}

func TestTagStoreFindByID(t *testing.T) {
	db := testDB(t)
	s := NewTagStore(testHandle(t, db))

	name := "test-tag-" + uuid.NewString()[:8]
	id := testTag(t, db, name)

	tag, err := s.FindByID(id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if tag == nil || tag.Name != name {
		t.Errorf("got %v, want tag %q", tag, name)
	}

	missing, err := s.FindByID(-1)
	if err != nil {
		t.Fatalf("FindByID missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing tag")
	}
}
