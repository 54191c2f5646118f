package dto

import (
	"time"

	"github.com/google/uuid"
)

type MatchItemResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ProfileSummary string    `json:"profile_summary"`
	ProductGenres  []string  `json:"product_genres"`
	Timeslots      []string  `json:"timeslots"`
	MatchScore     int       `json:"match_score"`
	MatchReason    string    `json:"match_reason"`
	Algorithm      string    `json:"algorithm"`
}

type MatchRunStatsResponse struct {
	Considered int `json:"candidates_considered"`
	Matched    int `json:"candidates_matched"`
	Succeeded  int `json:"candidates_succeeded"`
	Failed     int `json:"candidates_failed"`
}

type MatchStartResponse struct {
	Results []MatchItemResponse   `json:"results"`
	Stats   MatchRunStatsResponse `json:"stats"`
}

type MatchResultItemResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ProfileSummary string    `json:"profile_summary"`
	MatchScore     int       `json:"match_score"`
	MatchReason    string    `json:"match_reason"`
	Algorithm      string    `json:"algorithm"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type MatchResultsResponse struct {
	Results []MatchResultItemResponse `json:"results"`
	Count   int                       `json:"count"`
}
