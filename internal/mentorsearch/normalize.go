package mentorsearch

import (
	"encoding/json"
	"fmt"

	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/model"
)

// Page is one normalized page of search results.
//
// Invariant: HasMore == false implies Cursor == "".
type Page struct {
	Mentors []model.MentorProfile `json:"mentors"`
	Cursor  string                `json:"cursor,omitempty"`
	HasMore bool                  `json:"hasMore"`
}

// rawPage mirrors the upstream response loosely. Different backend versions
// disagree on field names: some return the page under "mentors", others
// under "data"; some call the pagination token "cursor", others "nextCursor".
// Both spellings must keep working.
type rawPage struct {
	Mentors    []model.MentorProfile `json:"mentors"`
	Data       []model.MentorProfile `json:"data"`
	Cursor     *string               `json:"cursor"`
	NextCursor *string               `json:"nextCursor"`
	HasMore    *bool                 `json:"hasMore"`
}

// NormalizePage decodes an upstream response body into a Page with a fixed
// precedence order: "mentors" wins over "data", "cursor" wins over
// "nextCursor". When the response does not state hasMore explicitly, a full
// page (exactly PageSize entries) is taken to mean more results exist. A
// final page that happens to land exactly on the boundary therefore costs
// one empty follow-up round trip; the upstream does not give us enough to do
// better.
func NormalizePage(body []byte) (*Page, error) {
	var raw rawPage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	p := &Page{}

	switch {
	case raw.Mentors != nil:
		p.Mentors = raw.Mentors
	case raw.Data != nil:
		p.Mentors = raw.Data
	default:
		p.Mentors = []model.MentorProfile{}
	}

	switch {
	case raw.Cursor != nil:
		p.Cursor = *raw.Cursor
	case raw.NextCursor != nil:
		p.Cursor = *raw.NextCursor
	}

	if raw.HasMore != nil {
		p.HasMore = *raw.HasMore
	} else {
		p.HasMore = len(p.Mentors) == PageSize
	}

	if !p.HasMore {
		p.Cursor = ""
	}

	return p, nil
}
