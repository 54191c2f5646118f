package seeder

import (
	"context"

	"team-match/internal/database"
)

type TeamPrioritiesSeeder struct{}

func (TeamPrioritiesSeeder) Name() string { return "team_priorities" }

func (TeamPrioritiesSeeder) Run(ctx context.Context, db database.DB) error {
	priorities := []struct {
		ID   int64
		Name string
	}{
		{1, "スピード感を持ってどんどん進めたい"},
		{2, "じっくり議論し、品質を重視したい"},
		{3, "和気あいあいとした雰囲気で楽しく"},
		{4, "目標達成に向けてストイックに"},
		{5, "オンラインミーティングを頻繁に行いたい"},
		{6, "非同期コミュニケーション（チャット等）中心で柔軟に"},
		{7, "新しい技術やツールに積極的に挑戦したい"},
		{8, "まずは手堅く、実績のある技術で"},
	}

	for _, p := range priorities {
		_, err := db.Exec(ctx,
			`INSERT INTO team_priorities (id, name) VALUES ($1, $2)
			 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
			p.ID, p.Name,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
