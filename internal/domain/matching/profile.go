package matching

import (
	"strings"

	"github.com/google/uuid"
)

// FlexibleValue is the sentinel stored for "no preference" role and idea
// fields. Profiles that never set a value are treated the same way.
const FlexibleValue = "flexible"

// AnyGenreID is the genre master row meaning "no particular genre".
const AnyGenreID int64 = 9

const (
	RoleTech   = "tech"
	RoleDesign = "design"
	RoleBiz    = "biz"
)

const (
	IdeaHasSpecificIdea    = "has_specific_idea"
	IdeaHasRoughTheme      = "has_rough_theme"
	IdeaWantsToBrainstorm  = "wants_to_brainstorm"
	IdeaWantsToParticipate = "wants_to_participate"
)

const (
	DayTypeWeekday = "weekday"
	DayTypeWeekend = "weekend_holiday"
)

// Preference is a role or idea-status value that is either a concrete
// string or the flexible sentinel. The zero value is flexible.
type Preference struct {
	value string
}

func PreferenceOf(v string) Preference {
	v = strings.TrimSpace(v)
	if v == "" || v == FlexibleValue {
		return Preference{}
	}
	return Preference{value: v}
}

func (p Preference) IsFlexible() bool {
	return p.value == ""
}

// Value returns the stored string, with the flexible sentinel spelled out.
func (p Preference) Value() string {
	if p.value == "" {
		return FlexibleValue
	}
	return p.value
}

// Matches reports whether both sides are concrete and equal. A flexible
// side never "matches"; flexibility is handled by the callers' own rules.
func (p Preference) Matches(o Preference) bool {
	return p.value != "" && o.value != "" && p.value == o.value
}

// GenrePreference is a user's declared product genres: either the "any
// genre" sentinel, a set of concrete genre ids, or both.
type GenrePreference struct {
	any bool
	ids map[int64]struct{}
}

func GenresOf(ids []int64) GenrePreference {
	g := GenrePreference{}
	for _, id := range ids {
		if id == AnyGenreID {
			g.any = true
			continue
		}
		if g.ids == nil {
			g.ids = make(map[int64]struct{})
		}
		g.ids[id] = struct{}{}
	}
	return g
}

func (g GenrePreference) Any() bool {
	return g.any
}

// SharedConcrete counts concrete genre ids declared by both sides. The
// sentinel is never counted.
func (g GenrePreference) SharedConcrete(o GenrePreference) int {
	n := 0
	for id := range g.ids {
		if _, ok := o.ids[id]; ok {
			n++
		}
	}
	return n
}

// Compatible implements the genre admission rule: an "any genre" declarer
// on this side accepts only other "any genre" declarers; otherwise the
// other side passes by declaring "any" or by sharing a concrete genre.
func (g GenrePreference) Compatible(o GenrePreference) bool {
	if g.any {
		return o.any
	}
	return o.any || g.SharedConcrete(o) > 0
}

// Slot is one availability timeslot from the master table.
type Slot struct {
	ID          int64
	Description string
	DayType     string
}

// Profile is the read-only view of a user the matching engines work on.
type Profile struct {
	UserID           uuid.UUID
	DisplayName      string
	PersonalityType  string
	IdeaStatus       Preference
	DesiredRole      Preference
	SelfIntroduction string
	Genres           GenrePreference
	GenreNames       []string
	WeekdaySlots     []Slot
	WeekendSlots     []Slot
	PriorityIDs      []int64
}

// IsFlexible reports whether the user declared no preference for both
// role and idea status. Partial flexibility does not count.
func (p Profile) IsFlexible() bool {
	return p.DesiredRole.IsFlexible() && p.IdeaStatus.IsFlexible()
}

// SlotDescriptions returns weekday then weekend slot descriptions.
func (p Profile) SlotDescriptions() []string {
	out := make([]string, 0, len(p.WeekdaySlots)+len(p.WeekendSlots))
	for _, s := range p.WeekdaySlots {
		out = append(out, s.Description)
	}
	for _, s := range p.WeekendSlots {
		out = append(out, s.Description)
	}
	return out
}

// SlotIDs returns weekday then weekend slot ids.
func (p Profile) SlotIDs() []int64 {
	out := make([]int64, 0, len(p.WeekdaySlots)+len(p.WeekendSlots))
	for _, s := range p.WeekdaySlots {
		out = append(out, s.ID)
	}
	for _, s := range p.WeekendSlots {
		out = append(out, s.ID)
	}
	return out
}
