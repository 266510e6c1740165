// Package mentorsearch implements the client-side mentor discovery machinery:
// filter state, query construction, tolerant response parsing, and the
// session controller that accumulates paginated results.
//
// It is transport-agnostic in the same way the rest of the platform splits
// business logic from its HTTP surface: nothing in here depends on a mux or
// a handler; the gateway and the alert runner both drive it.
package mentorsearch

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PageSize is the fixed page limit sent with every request.
const PageSize = 20

// Filters captures the user's query intent. The zero value is the unfiltered
// listing: encoding it yields a request carrying only the page limit.
type Filters struct {
	Query                string   `json:"query,omitempty"`
	Expertise            []string `json:"expertise,omitempty"`
	Industries           []string `json:"industries,omitempty"`
	Languages            []string `json:"languages,omitempty"`
	PriceMin             *float64 `json:"priceMin,omitempty"`
	PriceMax             *float64 `json:"priceMax,omitempty"`
	MinRating            *float64 `json:"minRating,omitempty"` // 0-5
	AvailableNow         bool     `json:"availableNow,omitempty"`
	FreeIntro            bool     `json:"freeIntro,omitempty"`
	IndigenousBackground bool     `json:"indigenousBackground,omitempty"`
}

// Validate checks the cross-field constraints a filter set must satisfy
// before it is encoded into a request.
func (f Filters) Validate() error {
	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		return &ValidationError{Msg: fmt.Sprintf("priceMin %g exceeds priceMax %g", *f.PriceMin, *f.PriceMax)}
	}
	if f.MinRating != nil && (*f.MinRating < 0 || *f.MinRating > 5) {
		return &ValidationError{Msg: fmt.Sprintf("minRating %g must be between 0 and 5", *f.MinRating)}
	}
	return nil
}

// IsZero reports whether the filter set carries no constraints at all.
func (f Filters) IsZero() bool {
	return f.Query == "" &&
		len(f.Expertise) == 0 && len(f.Industries) == 0 && len(f.Languages) == 0 &&
		f.PriceMin == nil && f.PriceMax == nil && f.MinRating == nil &&
		!f.AvailableNow && !f.FreeIntro && !f.IndigenousBackground
}

// Values serializes every non-empty field into upstream query parameters.
// Set-valued fields are comma-joined; boolean flags appear only when true;
// the page limit is always present. The cursor, when non-empty, resumes a
// previous result sequence (load-more only).
func (f Filters) Values(cursor string) url.Values {
	v := url.Values{}

	if q := strings.TrimSpace(f.Query); q != "" {
		v.Set("q", q)
	}
	if len(f.Expertise) > 0 {
		v.Set("expertise", strings.Join(f.Expertise, ","))
	}
	if len(f.Industries) > 0 {
		v.Set("industries", strings.Join(f.Industries, ","))
	}
	if f.PriceMin != nil {
		v.Set("priceMin", formatNumber(*f.PriceMin))
	}
	if f.PriceMax != nil {
		v.Set("priceMax", formatNumber(*f.PriceMax))
	}
	if f.MinRating != nil {
		v.Set("minRating", formatNumber(*f.MinRating))
	}
	if f.AvailableNow {
		v.Set("availableNow", "true")
	}
	if f.FreeIntro {
		v.Set("freeIntro", "true")
	}
	if f.IndigenousBackground {
		v.Set("indigenousBackground", "true")
	}
	if len(f.Languages) > 0 {
		v.Set("languages", strings.Join(f.Languages, ","))
	}
	if cursor != "" {
		v.Set("cursor", cursor)
	}
	v.Set("limit", strconv.Itoa(PageSize))

	return v
}

// Merge returns a copy of f with every non-zero field of partial applied on
// top. Explicitly clearing a field goes through ClearFilters on the
// controller; Merge only narrows or replaces.
func (f Filters) Merge(partial Filters) Filters {
	out := f
	if partial.Query != "" {
		out.Query = partial.Query
	}
	if len(partial.Expertise) > 0 {
		out.Expertise = partial.Expertise
	}
	if len(partial.Industries) > 0 {
		out.Industries = partial.Industries
	}
	if len(partial.Languages) > 0 {
		out.Languages = partial.Languages
	}
	if partial.PriceMin != nil {
		out.PriceMin = partial.PriceMin
	}
	if partial.PriceMax != nil {
		out.PriceMax = partial.PriceMax
	}
	if partial.MinRating != nil {
		out.MinRating = partial.MinRating
	}
	if partial.AvailableNow {
		out.AvailableNow = true
	}
	if partial.FreeIntro {
		out.FreeIntro = true
	}
	if partial.IndigenousBackground {
		out.IndigenousBackground = true
	}
	return out
}

// EncodeFilters serializes a filter set for persistence. Where the bytes
// live (Redis, a config file, a URL) is the caller's decision; persistence
// is an explicit boundary, not a side effect of the controller.
func EncodeFilters(f Filters) ([]byte, error) {
	return json.Marshal(f)
}

// DecodeFilters is the inverse of EncodeFilters. It validates the decoded
// set so a stale or hand-edited blob cannot smuggle in an inconsistent range.
func DecodeFilters(data []byte) (Filters, error) {
	var f Filters
	if err := json.Unmarshal(data, &f); err != nil {
		return Filters{}, fmt.Errorf("decode filters: %w", err)
	}
	if err := f.Validate(); err != nil {
		return Filters{}, err
	}
	return f, nil
}

// formatNumber renders a float without a trailing ".0" for whole values, so
// priceMin=50 encodes as "50" rather than "50.000000".
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// ValidationError wraps a user-facing validation message.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }
