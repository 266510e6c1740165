package gateway

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/mentorsearch"
)

// ParseFilters maps inbound /mentors query parameters onto a filter set.
// It accepts the same parameter names the controller emits upstream, so the
// gateway is a transparent hop: comma-joined sets, "true" flags, numeric
// ranges. Unknown parameters are ignored; malformed values are errors.
func ParseFilters(q url.Values) (mentorsearch.Filters, error) {
	var f mentorsearch.Filters

	f.Query = strings.TrimSpace(q.Get("q"))
	f.Expertise = splitList(q.Get("expertise"))
	f.Industries = splitList(q.Get("industries"))
	f.Languages = splitList(q.Get("languages"))

	var err error
	if f.PriceMin, err = parseOptFloat(q, "priceMin"); err != nil {
		return mentorsearch.Filters{}, err
	}
	if f.PriceMax, err = parseOptFloat(q, "priceMax"); err != nil {
		return mentorsearch.Filters{}, err
	}
	if f.MinRating, err = parseOptFloat(q, "minRating"); err != nil {
		return mentorsearch.Filters{}, err
	}

	f.AvailableNow = q.Get("availableNow") == "true"
	f.FreeIntro = q.Get("freeIntro") == "true"
	f.IndigenousBackground = q.Get("indigenousBackground") == "true"

	if err := f.Validate(); err != nil {
		return mentorsearch.Filters{}, err
	}
	return f, nil
}

// splitList turns a comma-joined parameter into a set, dropping empty
// segments so "go,,sre" and "go,sre" parse the same.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseOptFloat(q url.Values, param string) (*float64, error) {
	raw := q.Get(param)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number, got %q", param, raw)
	}
	return &v, nil
}
