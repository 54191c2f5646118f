package matching

// FilterBySearchCriteria narrows a candidate pool for flexible-mode
// scoring.
//
// A fully flexible requester is only shown other fully flexible users.
// A requester with any concrete preference is shown every fully flexible
// candidate, plus every candidate who matches on at least one of role,
// idea status or genre compatibility.
func FilterBySearchCriteria(requester Profile, candidates []Profile) []Profile {
	out := make([]Profile, 0, len(candidates))

	if requester.IsFlexible() {
		for _, c := range candidates {
			if c.IsFlexible() {
				out = append(out, c)
			}
		}
		return out
	}

	for _, c := range candidates {
		if c.IsFlexible() {
			out = append(out, c)
			continue
		}

		roleMatch := requester.DesiredRole.Matches(c.DesiredRole)
		ideaMatch := requester.IdeaStatus.Matches(c.IdeaStatus)
		genreOK := requester.Genres.Compatible(c.Genres)
		if roleMatch || ideaMatch || genreOK {
			out = append(out, c)
		}
	}
	return out
}
