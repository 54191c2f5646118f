package matching

import "strings"

// ProfileText builds the canonical text blob that gets embedded for a
// profile: idea status, desired role and self introduction joined with
// single spaces, followed by the availability slot descriptions when any
// exist. Empty fields are skipped. The personality type is deliberately
// left out so it cannot influence similarity.
func ProfileText(p Profile) string {
	parts := make([]string, 0, 4)
	for _, f := range []string{
		p.IdeaStatus.Value(),
		p.DesiredRole.Value(),
		strings.TrimSpace(p.SelfIntroduction),
	} {
		if f != "" {
			parts = append(parts, f)
		}
	}

	if descs := p.SlotDescriptions(); len(descs) > 0 {
		parts = append(parts, "活動時間: "+strings.Join(descs, ", "))
	}

	return strings.Join(parts, " ")
}
