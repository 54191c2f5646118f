package seeder

func Defaults() []Seeder {
	return []Seeder{
		ProductGenresSeeder{},
		TimeslotsSeeder{},
		TeamPrioritiesSeeder{},
	}
}
