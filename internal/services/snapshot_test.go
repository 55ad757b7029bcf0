package services

import (
	"testing"
)

type row struct {
	ID    string
	Email string
	Name  string
}

func rowSnapshot(rows []row) *Snapshot[row] {
	return NewSnapshot(rows, func(r row) []string {
		return []string{r.Email, r.Name}
	})
}

func TestSnapshotFilter(t *testing.T) {
	snap := rowSnapshot([]row{
		{"1", "alice@example.com", "Alice Larkin"},
		{"2", "bob@example.com", "Bob Stone"},
		{"3", "carol@other.org", "Carol Larkin"},
	})

	cases := []struct {
		term   string
		expect []string
	}{
		{"", []string{"1", "2", "3"}},
		{"larkin", []string{"1", "3"}},
		{"LARKIN", []string{"1", "3"}},
		{"example.com", []string{"1", "2"}},
		{"stone", []string{"2"}},
		{"zzz", nil},
	}
	for _, c := range cases {
		got := snap.Filter(c.term)
		if len(got) != len(c.expect) {
			t.Errorf("Filter(%q) returned %d rows, expected %d", c.term, len(got), len(c.expect))
			continue
		}
		for i, r := range got {
			if r.ID != c.expect[i] {
				t.Errorf("Filter(%q)[%d] == %s, expected %s", c.term, i, r.ID, c.expect[i])
			}
		}
	}
}

func TestSnapshotFilter_EmptyResultIsNotAnError(t *testing.T) {
	snap := rowSnapshot(nil)
	window, total, totalPages := snap.Page("anything", 1, 10)
	if len(window) != 0 || total != 0 || totalPages != 0 {
		t.Errorf("empty snapshot: got window=%d total=%d totalPages=%d, expected zeros",
			len(window), total, totalPages)
	}
}

func TestSnapshotPage(t *testing.T) {
	rows := make([]row, 25)
	for i := range rows {
		rows[i] = row{ID: string(rune('a' + i)), Email: "u@example.com", Name: "User"}
	}
	snap := rowSnapshot(rows)

	window, total, totalPages := snap.Page("", 3, 10)
	if total != 25 {
		t.Errorf("total == %d, expected 25", total)
	}
	if totalPages != 3 {
		t.Errorf("totalPages == %d, expected 3", totalPages)
	}
	if len(window) != 5 {
		t.Errorf("page 3 window length == %d, expected 5", len(window))
	}

	// Past the last page the window is empty, not an error.
	window, _, _ = snap.Page("", 4, 10)
	if len(window) != 0 {
		t.Errorf("page past end: window length == %d, expected 0", len(window))
	}
}

// After a local delete, totalPages must be recomputed from the
// post-delete filtered length. With 11 matching rows and limit 10 there
// are 2 pages; removing one row must drop it to 1 page immediately.
func TestSnapshotRemove_RecomputesTotalPages(t *testing.T) {
	rows := make([]row, 11)
	for i := range rows {
		rows[i] = row{ID: string(rune('a' + i)), Email: "match@example.com", Name: "User"}
	}
	snap := rowSnapshot(rows)

	_, _, totalPages := snap.Page("match", 1, 10)
	if totalPages != 2 {
		t.Fatalf("pre-delete totalPages == %d, expected 2", totalPages)
	}

	if !snap.Remove(func(r row) bool { return r.ID == "a" }) {
		t.Fatal("Remove did not find the row")
	}

	_, total, totalPages := snap.Page("match", 1, 10)
	if total != 10 {
		t.Errorf("post-delete total == %d, expected 10", total)
	}
	if totalPages != 1 {
		t.Errorf("post-delete totalPages == %d, expected 1", totalPages)
	}

	// Removing the same row again is a no-op.
	if snap.Remove(func(r row) bool { return r.ID == "a" }) {
		t.Error("second Remove of the same row reported a removal")
	}
}
