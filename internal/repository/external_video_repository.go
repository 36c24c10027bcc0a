package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/jovial-backend/internal/models"
	"github.com/ignatzorin/jovial-backend/internal/repository/common"
)

// ExternalVideoRepository читает ссылки на ролики внешних площадок.
type ExternalVideoRepository struct {
	db *sqlx.DB
}

// NewExternalVideoRepository создаёт экземпляр репозитория.
func NewExternalVideoRepository(db *sqlx.DB) *ExternalVideoRepository {
	return &ExternalVideoRepository{db: db}
}

func listActiveExternalQuery() sq.SelectBuilder {
	return common.Psql.
		Select("id", "title", "description", "external_url", "external_id", "thumbnail_url", "display_order", "is_active").
		From("external_videos").
		Where(sq.Eq{"is_active": true}).
		OrderBy("display_order ASC", "id ASC")
}

// ListActive возвращает активные ссылки по возрастанию display_order.
func (r *ExternalVideoRepository) ListActive(ctx context.Context) ([]models.ExternalVideo, error) {
	videos, err := common.Select[models.ExternalVideo](ctx, r.db, listActiveExternalQuery())
	if err != nil {
		return nil, fmt.Errorf("external video repository: list active %w", err)
	}
	return videos, nil
}

func insertExternalQuery(video *models.ExternalVideo) sq.InsertBuilder {
	return common.Psql.
		Insert("external_videos").
		Columns("title", "description", "external_url", "external_id", "thumbnail_url", "display_order", "is_active").
		Values(video.Title, video.Description, video.ExternalURL, video.ExternalID, video.ThumbnailURL, video.DisplayOrder, video.IsActive).
		Suffix("ON CONFLICT (external_id) DO NOTHING")
}

// InsertIfAbsent добавляет ссылку, если ролика с таким external_id ещё нет.
func (r *ExternalVideoRepository) InsertIfAbsent(ctx context.Context, video *models.ExternalVideo) (bool, error) {
	query, args, err := insertExternalQuery(video).ToSql()
	if err != nil {
		return false, fmt.Errorf("external video repository: build insert %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("external video repository: insert %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("external video repository: rows affected %w", err)
	}
	return affected > 0, nil
}
