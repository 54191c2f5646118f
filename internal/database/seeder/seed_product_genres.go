package seeder

import (
	"context"

	"team-match/internal/database"
)

// ProductGenresSeeder loads the fixed genre vocabulary. ID 9 is the
// "no particular preference" entry the matching rules treat specially.
type ProductGenresSeeder struct{}

func (ProductGenresSeeder) Name() string { return "product_genres" }

func (ProductGenresSeeder) Run(ctx context.Context, db database.DB) error {
	genres := []struct {
		ID   int64
		Name string
	}{
		{1, "業務効率化・SaaS"},
		{2, "教育・学習支援"},
		{3, "ヘルスケア・ウェルネス"},
		{4, "エンターテイメント・ゲーム"},
		{5, "Eコマース・マーケットプレイス"},
		{6, "コミュニケーション・SNS"},
		{7, "AI・機械学習を活用したプロダクト"},
		{8, "ソーシャルグッド・地域活性化"},
		{9, "ジャンルには特にこだわらない"},
	}

	for _, g := range genres {
		_, err := db.Exec(ctx,
			`INSERT INTO product_genres (id, name) VALUES ($1, $2)
			 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
			g.ID, g.Name,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
