package mentorsearch_test

import (
	"testing"

	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/mentorsearch"
)

func f64(v float64) *float64 { return &v }

// ── Values: query construction ────────────────────────────────────────────

// An empty filter set must produce the unfiltered listing: only the page
// limit appears in the request.
func TestValues_DefaultFiltersOnlyLimit(t *testing.T) {
	v := mentorsearch.Filters{}.Values("")

	if len(v) != 1 {
		t.Fatalf("default filters produced %d params (%v), want only limit", len(v), v)
	}
	if got := v.Get("limit"); got != "20" {
		t.Errorf("limit = %q, want \"20\"", got)
	}
}

func TestValues_AllFieldsSerialized(t *testing.T) {
	f := mentorsearch.Filters{
		Query:                "career change",
		Expertise:            []string{"go", "sre"},
		Industries:           []string{"mining", "health"},
		Languages:            []string{"en", "wiradjuri"},
		PriceMin:             f64(50),
		PriceMax:             f64(120.5),
		MinRating:            f64(4),
		AvailableNow:         true,
		FreeIntro:            true,
		IndigenousBackground: true,
	}
	v := f.Values("")

	cases := []struct {
		param string
		want  string
	}{
		{"q", "career change"},
		{"expertise", "go,sre"},
		{"industries", "mining,health"},
		{"languages", "en,wiradjuri"},
		{"priceMin", "50"},
		{"priceMax", "120.5"},
		{"minRating", "4"},
		{"availableNow", "true"},
		{"freeIntro", "true"},
		{"indigenousBackground", "true"},
		{"limit", "20"},
	}
	for _, c := range cases {
		if got := v.Get(c.param); got != c.want {
			t.Errorf("param %s = %q, want %q", c.param, got, c.want)
		}
	}
}

// Boolean flags must be absent, not "false", when unset.
func TestValues_FalseFlagsOmitted(t *testing.T) {
	v := mentorsearch.Filters{Query: "x"}.Values("")
	for _, param := range []string{"availableNow", "freeIntro", "indigenousBackground"} {
		if _, ok := v[param]; ok {
			t.Errorf("param %s should be absent when flag is false", param)
		}
	}
}

func TestValues_CursorIncludedOnlyWhenSet(t *testing.T) {
	if _, ok := (mentorsearch.Filters{}).Values("")["cursor"]; ok {
		t.Error("cursor param should be absent without a cursor")
	}
	if got := (mentorsearch.Filters{}).Values("abc123").Get("cursor"); got != "abc123" {
		t.Errorf("cursor = %q, want \"abc123\"", got)
	}
}

func TestValues_WhitespaceQueryOmitted(t *testing.T) {
	if _, ok := (mentorsearch.Filters{Query: "   "}).Values("")["q"]; ok {
		t.Error("q param should be absent for a whitespace-only query")
	}
}

// ── Validate ───────────────────────────────────────────────────────────────

func TestValidate_PriceRange(t *testing.T) {
	cases := []struct {
		name    string
		f       mentorsearch.Filters
		wantErr bool
	}{
		{"empty", mentorsearch.Filters{}, false},
		{"min only", mentorsearch.Filters{PriceMin: f64(10)}, false},
		{"max only", mentorsearch.Filters{PriceMax: f64(10)}, false},
		{"min equals max", mentorsearch.Filters{PriceMin: f64(10), PriceMax: f64(10)}, false},
		{"min below max", mentorsearch.Filters{PriceMin: f64(10), PriceMax: f64(20)}, false},
		{"min above max", mentorsearch.Filters{PriceMin: f64(30), PriceMax: f64(20)}, true},
	}
	for _, c := range cases {
		err := c.f.Validate()
		if c.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", c.name)
		}
		if !c.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
		}
	}
}

func TestValidate_RatingBounds(t *testing.T) {
	for _, v := range []float64{0, 2.5, 5} {
		if err := (mentorsearch.Filters{MinRating: f64(v)}).Validate(); err != nil {
			t.Errorf("MinRating=%g: unexpected error: %v", v, err)
		}
	}
	for _, v := range []float64{-0.1, 5.1, 100} {
		if err := (mentorsearch.Filters{MinRating: f64(v)}).Validate(); err == nil {
			t.Errorf("MinRating=%g: expected error, got nil", v)
		}
	}
}

// ── Merge / IsZero ─────────────────────────────────────────────────────────

func TestMerge_PartialOverridesOnlySetFields(t *testing.T) {
	base := mentorsearch.Filters{
		Query:     "design",
		Expertise: []string{"ux"},
		PriceMax:  f64(100),
	}
	merged := base.Merge(mentorsearch.Filters{
		Query:        "engineering",
		AvailableNow: true,
	})

	if merged.Query != "engineering" {
		t.Errorf("Query = %q, want \"engineering\"", merged.Query)
	}
	if len(merged.Expertise) != 1 || merged.Expertise[0] != "ux" {
		t.Errorf("Expertise = %v, want [ux] untouched", merged.Expertise)
	}
	if merged.PriceMax == nil || *merged.PriceMax != 100 {
		t.Error("PriceMax should survive an unrelated merge")
	}
	if !merged.AvailableNow {
		t.Error("AvailableNow should be set by the merge")
	}
}

func TestIsZero(t *testing.T) {
	if !(mentorsearch.Filters{}).IsZero() {
		t.Error("zero Filters should report IsZero")
	}
	if (mentorsearch.Filters{FreeIntro: true}).IsZero() {
		t.Error("Filters with a flag set should not report IsZero")
	}
}

// ── Encode / Decode: the persistence boundary ─────────────────────────────

func TestEncodeDecode_RoundTrip(t *testing.T) {
	in := mentorsearch.Filters{
		Query:      "leadership",
		Industries: []string{"education"},
		PriceMin:   f64(25),
		MinRating:  f64(4.5),
		FreeIntro:  true,
	}

	data, err := mentorsearch.EncodeFilters(in)
	if err != nil {
		t.Fatalf("EncodeFilters: %v", err)
	}
	out, err := mentorsearch.DecodeFilters(data)
	if err != nil {
		t.Fatalf("DecodeFilters: %v", err)
	}

	if out.Query != in.Query || !out.FreeIntro {
		t.Errorf("round trip lost fields: got %+v", out)
	}
	if out.PriceMin == nil || *out.PriceMin != 25 {
		t.Error("PriceMin did not survive the round trip")
	}
	if out.MinRating == nil || *out.MinRating != 4.5 {
		t.Error("MinRating did not survive the round trip")
	}
}

func TestDecodeFilters_RejectsInvalidBlob(t *testing.T) {
	if _, err := mentorsearch.DecodeFilters([]byte("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
	// A stale blob with an inconsistent range must not decode either.
	if _, err := mentorsearch.DecodeFilters([]byte(`{"priceMin":90,"priceMax":10}`)); err == nil {
		t.Error("expected error for priceMin > priceMax")
	}
}
