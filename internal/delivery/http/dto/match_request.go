package dto

// MatchStartRequest is the body of POST /matching/start. The requester
// is taken from the access token, never from the payload.
type MatchStartRequest struct {
	DesiredRole          string `json:"desired_role_in_team"`
	UseVectorMatching    *bool  `json:"use_vector_matching"`
	ExcludePastTeammates bool   `json:"exclude_past_teammates"`
}

// VectorMatching defaults to true when the field is omitted.
func (r MatchStartRequest) VectorMatching() bool {
	if r.UseVectorMatching == nil {
		return true
	}
	return *r.UseVectorMatching
}
