package seeder

import (
	"context"

	"team-match/internal/database"
	"team-match/internal/domain/matching"
)

// TimeslotsSeeder loads the availability timeslot vocabulary, weekday
// entries first, then weekend/holiday entries.
type TimeslotsSeeder struct{}

func (TimeslotsSeeder) Name() string { return "availability_timeslots" }

func (TimeslotsSeeder) Run(ctx context.Context, db database.DB) error {
	slots := []struct {
		ID          int64
		Description string
		DayType     string
		SortOrder   int
	}{
		{1, "平日 朝5時～7時", matching.DayTypeWeekday, 1},
		{2, "平日 7時～9時", matching.DayTypeWeekday, 2},
		{3, "平日 18時～20時", matching.DayTypeWeekday, 3},
		{4, "平日 20時～22時", matching.DayTypeWeekday, 4},
		{5, "平日 22時～24時", matching.DayTypeWeekday, 5},
		{6, "平日 いつでも良い", matching.DayTypeWeekday, 6},
		{7, "平日 特に希望なし", matching.DayTypeWeekday, 7},
		{8, "土日祝 0時～2時", matching.DayTypeWeekend, 1},
		{9, "土日祝 2時～4時", matching.DayTypeWeekend, 2},
		{10, "土日祝 4時～6時", matching.DayTypeWeekend, 3},
		{11, "土日祝 6時～8時", matching.DayTypeWeekend, 4},
		{12, "土日祝 8時～10時", matching.DayTypeWeekend, 5},
		{13, "土日祝 10時～12時", matching.DayTypeWeekend, 6},
		{14, "土日祝 12時～14時", matching.DayTypeWeekend, 7},
		{15, "土日祝 14時～16時", matching.DayTypeWeekend, 8},
		{16, "土日祝 16時～18時", matching.DayTypeWeekend, 9},
		{17, "土日祝 18時～20時", matching.DayTypeWeekend, 10},
		{18, "土日祝 20時～22時", matching.DayTypeWeekend, 11},
		{19, "土日祝 22時～24時", matching.DayTypeWeekend, 12},
		{20, "土日祝 いつでも良い", matching.DayTypeWeekend, 13},
		{21, "土日祝 特に希望なし", matching.DayTypeWeekend, 14},
	}

	for _, s := range slots {
		_, err := db.Exec(ctx,
			`INSERT INTO availability_timeslots (id, description, day_type, sort_order)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id) DO UPDATE SET
				description = EXCLUDED.description,
				day_type = EXCLUDED.day_type,
				sort_order = EXCLUDED.sort_order`,
			s.ID, s.Description, s.DayType, s.SortOrder,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
