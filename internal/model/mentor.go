// Package model defines shared data structures for the mentor search services.
package model

import (
	"encoding/json"
	"time"
)

// AvailabilitySlot is a bookable time window on a mentor's calendar.
type AvailabilitySlot struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	IsBooked  bool      `json:"isBooked,omitempty"`
}

// MentorProfile is a read-only projection returned by the upstream mentor
// endpoint. The client never mutates these fields; it only stores and
// re-renders them.
type MentorProfile struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Title                string             `json:"title,omitempty"`
	Company              string             `json:"company,omitempty"`
	Bio                  string             `json:"bio,omitempty"`
	AvatarURL            string             `json:"avatarUrl,omitempty"`
	Expertise            []string           `json:"expertise,omitempty"`
	Industries           []string           `json:"industries,omitempty"`
	Languages            []string           `json:"languages,omitempty"`
	HourlyRate           float64            `json:"hourlyRate,omitempty"`
	Rating               float64            `json:"rating"` // 0-5
	ReviewCount          int                `json:"reviewCount"`
	SessionCount         int                `json:"sessionCount"`
	IsAvailableNow       bool               `json:"isAvailableNow"`
	FreeIntro            bool               `json:"freeIntro,omitempty"`
	IndigenousBackground bool               `json:"indigenousBackground,omitempty"`
	AvailabilitySlots    []AvailabilitySlot `json:"availabilitySlots,omitempty"`
	// MatchScore (0-100) is computed upstream and present only for
	// personalized queries.
	MatchScore *int `json:"matchScore,omitempty"`
}

// SavedSearch mirrors a saved_searches table row. Filters holds the JSON
// encoding produced by mentorsearch.EncodeFilters.
type SavedSearch struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Name      string          `json:"name"`
	Filters   json.RawMessage `json:"filters"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	LastRunAt *time.Time      `json:"lastRunAt,omitempty"`
}
