package logbook

import (
	"fmt"
	"testing"
)

func TestBook_Append_Counters(t *testing.T) {
	tests := []struct {
		name        string
		kinds       []Kind
		wantTotal   int
		wantSuccess int
		wantErrors  int
	}{
		{"empty", nil, 0, 0, 0},
		{"single info", []Kind{KindInfo}, 1, 0, 0},
		{"single success", []Kind{KindSuccess}, 1, 1, 0},
		{"single error", []Kind{KindError}, 1, 0, 1},
		{"single warning", []Kind{KindWarning}, 1, 0, 0},
		{
			"mixed sequence",
			[]Kind{KindInfo, KindSuccess, KindError, KindSuccess, KindWarning, KindError},
			6, 2, 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := New()
			for i, kind := range tt.kinds {
				book.Append(kind, fmt.Sprintf("entry %d", i))
			}

			counters := book.Counters()
			if counters.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", counters.Total, tt.wantTotal)
			}
			if counters.Success != tt.wantSuccess {
				t.Errorf("Success = %d, want %d", counters.Success, tt.wantSuccess)
			}
			if counters.Errors != tt.wantErrors {
				t.Errorf("Errors = %d, want %d", counters.Errors, tt.wantErrors)
			}

			// Invariants that must hold for every append sequence
			if counters.Total != book.Len() {
				t.Errorf("Total = %d, want entry count %d", counters.Total, book.Len())
			}
			if counters.Success+counters.Errors > counters.Total {
				t.Errorf("Success + Errors = %d exceeds Total = %d",
					counters.Success+counters.Errors, counters.Total)
			}
		})
	}
}

func TestBook_Append_PreservesOrder(t *testing.T) {
	book := New()
	book.Append(KindInfo, "first")
	book.Append(KindError, "second")
	book.Append(KindSuccess, "third")

	entries := book.Entries()
	if len(entries) != 3 {
		t.Fatalf("Entries() returned %d entries, want 3", len(entries))
	}

	want := []string{"first", "second", "third"}
	for i, message := range want {
		if entries[i].Message != message {
			t.Errorf("entries[%d].Message = %q, want %q", i, entries[i].Message, message)
		}
	}
}

func TestBook_Clear(t *testing.T) {
	book := New()
	book.Append(KindSuccess, "one")
	book.Append(KindError, "two")
	book.Append(KindInfo, "three")

	book.Clear()

	if got := book.Len(); got != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", got)
	}
	if got := book.Counters(); got != (Counters{}) {
		t.Errorf("Counters() after Clear() = %+v, want all zero", got)
	}
	if got := book.Entries(); len(got) != 0 {
		t.Errorf("Entries() after Clear() returned %d entries, want 0", len(got))
	}

	// The book remains usable after clearing
	book.Append(KindSuccess, "again")
	if got := book.Counters().Success; got != 1 {
		t.Errorf("Success after re-append = %d, want 1", got)
	}
}

func TestBook_OnChange(t *testing.T) {
	book := New()

	var fired int
	book.OnChange(func() { fired++ })

	book.Append(KindInfo, "a")
	book.Append(KindError, "b")
	book.Clear()

	if fired != 3 {
		t.Errorf("change hook fired %d times, want 3", fired)
	}
}

func TestBook_Formatted(t *testing.T) {
	book := New()
	book.Infof("scraping %s", "FPT")
	book.Successf("%d reports", 3)
	book.Errorf("%s failed", "VNM")
	book.Warningf("stop %s", "requested")

	entries := book.Entries()
	if len(entries) != 4 {
		t.Fatalf("Entries() returned %d entries, want 4", len(entries))
	}

	wantKinds := []Kind{KindInfo, KindSuccess, KindError, KindWarning}
	wantMessages := []string{"scraping FPT", "3 reports", "VNM failed", "stop requested"}
	for i := range entries {
		if entries[i].Kind != wantKinds[i] {
			t.Errorf("entries[%d].Kind = %q, want %q", i, entries[i].Kind, wantKinds[i])
		}
		if entries[i].Message != wantMessages[i] {
			t.Errorf("entries[%d].Message = %q, want %q", i, entries[i].Message, wantMessages[i])
		}
	}
}

func TestBook_EntriesSnapshot(t *testing.T) {
	book := New()
	book.Append(KindInfo, "original")

	snapshot := book.Entries()
	snapshot[0].Message = "mutated"

	if got := book.Entries()[0].Message; got != "original" {
		t.Errorf("entry mutated through snapshot: got %q, want %q", got, "original")
	}
}
