package matching

import (
	"strings"
	"testing"
)

func TestProfileText_FullProfile(t *testing.T) {
	p := Profile{
		PersonalityType:  "INTJ",
		IdeaStatus:       PreferenceOf(IdeaHasSpecificIdea),
		DesiredRole:      PreferenceOf(RoleTech),
		SelfIntroduction: "機械学習が得意です。",
		WeekdaySlots: []Slot{
			{ID: 4, Description: "平日 20時～22時", DayType: DayTypeWeekday},
		},
		WeekendSlots: []Slot{
			{ID: 12, Description: "土日祝 8時～10時", DayType: DayTypeWeekend},
		},
	}

	got := ProfileText(p)
	want := "has_specific_idea tech 機械学習が得意です。 活動時間: 平日 20時～22時, 土日祝 8時～10時"
	if got != want {
		t.Fatalf("unexpected text:\n got %q\nwant %q", got, want)
	}
}

func TestProfileText_ExcludesPersonalityType(t *testing.T) {
	p := Profile{
		PersonalityType: "ENFP",
		IdeaStatus:      PreferenceOf(IdeaHasRoughTheme),
		DesiredRole:     PreferenceOf(RoleDesign),
	}
	if strings.Contains(ProfileText(p), "ENFP") {
		t.Fatalf("personality type must not appear in embedding text")
	}
}

func TestProfileText_SkipsEmptyFields(t *testing.T) {
	p := Profile{
		IdeaStatus:       PreferenceOf(""),
		DesiredRole:      PreferenceOf(RoleBiz),
		SelfIntroduction: "   ",
	}
	got := ProfileText(p)
	want := "flexible biz"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestProfileText_NoSlots(t *testing.T) {
	p := Profile{
		IdeaStatus:  PreferenceOf(IdeaWantsToBrainstorm),
		DesiredRole: PreferenceOf(RoleTech),
	}
	if strings.Contains(ProfileText(p), "活動時間") {
		t.Fatalf("slot section must be absent when no slots are set")
	}
}
