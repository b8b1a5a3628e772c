package socialrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/goinvest/internal/domain"
	"github.com/GlebRadaev/goinvest/internal/storage"
)

type Repository struct {
	db storage.Adapter
}

func New(db storage.Adapter) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) List(ctx context.Context) ([]domain.SocialLink, error) {
	rows, err := r.db.FetchAll(ctx, "SELECT id, platform, url, is_active, created_at, updated_at FROM social_links ORDER BY id")
	if err != nil {
		zap.L().Error("can't get social links", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var links []domain.SocialLink
	for rows.Next() {
		var l domain.SocialLink
		if err := rows.Scan(&l.ID, &l.Platform, &l.URL, &l.IsActive, &l.CreatedAt, &l.UpdatedAt); err != nil {
			zap.L().Error("can't scan social link", zap.Error(err))
			return nil, err
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate social links", zap.Error(err))
		return nil, err
	}
	return links, nil
}

// Upsert stores the link of a platform, creating the row for platforms that were not seeded.
func (r *Repository) Upsert(ctx context.Context, platform, url string, active bool, at time.Time) error {
	query := `INSERT INTO social_links (platform, url, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (platform) DO UPDATE SET url = excluded.url, is_active = excluded.is_active, updated_at = excluded.updated_at`
	if _, err := r.db.Execute(ctx, query, platform, url, active, at, at); err != nil {
		zap.L().Error("can't save social link", zap.String("platform", platform), zap.Error(err))
		return err
	}
	return nil
}
