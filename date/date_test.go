package date

import "testing"

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	t.Run("iso", func(t *testing.T) {
		d, err := Parse("2026-08-28")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := d.String(), "2026-08-28"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("lenient", func(t *testing.T) {
		d, err := Parse("2026-8-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := d.String(), "2026-08-02"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("empty is unset", func(t *testing.T) {
		d, err := Parse("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.IsZero() {
			t.Errorf("Parse(\"\") = %v, want the zero date", d)
		}
		if got := d.String(); got != "" {
			t.Errorf("zero date String() = %q, want \"\"", got)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := Parse("not-a-date"); err == nil {
			t.Error("expected an error for a malformed date")
		}
	})
}

func TestJSONRoundtrip(t *testing.T) {
	d := MustParse("2026-01-05")
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := string(b), `"2026-01-05"`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != d {
		t.Errorf("got %v, want %v", back, d)
	}
}
