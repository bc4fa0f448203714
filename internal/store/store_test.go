package store

import (
	"sync"
	"testing"
)

type record struct {
	ID   int64
	Name string
}

func TestStore_Insert(t *testing.T) {
	t.Run("allocates increasing ids", func(t *testing.T) {
		s := New[record]()

		a := s.Insert(func(id int64) record { return record{ID: id, Name: "a"} })
		b := s.Insert(func(id int64) record { return record{ID: id, Name: "b"} })

		if a.ID != 1 || b.ID != 2 {
			t.Errorf("expected ids 1 and 2, got %d and %d", a.ID, b.ID)
		}
	})

	t.Run("skips ids taken by Put", func(t *testing.T) {
		s := New[record]()
		s.Put(1, record{ID: 1})
		s.Put(2, record{ID: 2})

		c := s.Insert(func(id int64) record { return record{ID: id} })
		if c.ID != 3 {
			t.Errorf("expected id 3, got %d", c.ID)
		}
	})

	t.Run("concurrent inserts never reuse an id", func(t *testing.T) {
		s := New[record]()
		const n = 200

		var wg sync.WaitGroup
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Insert(func(id int64) record { return record{ID: id} })
			}()
		}
		wg.Wait()

		if s.Len() != n {
			t.Fatalf("expected %d records, got %d", n, s.Len())
		}
		for i, r := range s.List() {
			if r.ID != int64(i+1) {
				t.Fatalf("expected id %d at position %d, got %d", i+1, i, r.ID)
			}
		}
	})
}

func TestStore_GetAndUpdate(t *testing.T) {
	s := New[record]()
	s.Put(7, record{ID: 7, Name: "seven"})

	if _, ok := s.Get(8); ok {
		t.Error("expected missing id to report not found")
	}

	got, ok := s.Update(7, func(r record) record {
		r.Name = "updated"
		return r
	})
	if !ok {
		t.Fatal("expected update to find record")
	}
	if got.Name != "updated" {
		t.Errorf("expected updated name, got %s", got.Name)
	}

	stored, _ := s.Get(7)
	if stored.Name != "updated" {
		t.Errorf("expected stored name updated, got %s", stored.Name)
	}

	if _, ok := s.Update(99, func(r record) record { return r }); ok {
		t.Error("expected update of missing id to fail")
	}
}

func TestStore_Filter(t *testing.T) {
	s := New[record]()
	for _, name := range []string{"x", "y", "x"} {
		s.Insert(func(id int64) record { return record{ID: id, Name: name} })
	}

	got := s.Filter(func(r record) bool { return r.Name == "x" })
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("expected ids 1 and 3, got %d and %d", got[0].ID, got[1].ID)
	}
}
