package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/jovial-backend/internal/models"
	"github.com/ignatzorin/jovial-backend/internal/repository/common"
)

// ErrVideoNotFound возвращается, когда ролика с таким id нет.
var ErrVideoNotFound = fmt.Errorf("video %w", common.ErrNotFound)

const videosTable = "uploaded_videos"

var videoColumns = []string{
	"id", "title", "description", "category", "media_url", "thumbnail_url",
	"duration_seconds", "file_size_bytes", "is_featured", "uploader_id", "created_at", "updated_at",
}

// VideoRepository работает с таблицей uploaded_videos.
type VideoRepository struct {
	db *sqlx.DB
}

// NewVideoRepository создаёт экземпляр репозитория.
func NewVideoRepository(db *sqlx.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func listVideosQuery() sq.SelectBuilder {
	return common.Psql.Select(videoColumns...).From(videosTable).OrderBy("created_at DESC", "id DESC")
}

func insertVideoQuery(v *models.UploadedVideo) sq.InsertBuilder {
	return common.Psql.Insert(videosTable).
		Columns("title", "description", "category", "media_url", "thumbnail_url",
			"duration_seconds", "file_size_bytes", "is_featured", "uploader_id").
		Values(v.Title, v.Description, v.Category, v.MediaURL, v.ThumbnailURL,
			v.DurationSeconds, v.FileSizeBytes, v.IsFeatured, v.UploaderID).
		Suffix("RETURNING id, created_at, updated_at")
}

func updateVideoQuery(id uuid.UUID, fields models.VideoFields) sq.UpdateBuilder {
	return common.Psql.Update(videosTable).
		Set("title", fields.Title).
		Set("description", fields.Description).
		Set("category", fields.Category).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Expr("id = ?", id)).
		Suffix("RETURNING " + strings.Join(videoColumns, ", "))
}

func deleteVideoQuery(id uuid.UUID) sq.DeleteBuilder {
	return common.Psql.Delete(videosTable).
		Where(sq.Expr("id = ?", id)).
		Suffix("RETURNING " + strings.Join(videoColumns, ", "))
}

// ListNewestFirst возвращает все ролики, новые первыми.
func (r *VideoRepository) ListNewestFirst(ctx context.Context) ([]models.UploadedVideo, error) {
	videos, err := common.Select[models.UploadedVideo](ctx, r.db, listVideosQuery())
	if err != nil {
		return nil, fmt.Errorf("video repository: list %w", err)
	}
	return videos, nil
}

// GetByID возвращает ролик по идентификатору.
func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UploadedVideo, error) {
	builder := common.Psql.Select(videoColumns...).From(videosTable).Where(sq.Expr("id = ?", id))
	video, err := common.GetOne[models.UploadedVideo](ctx, r.db, builder, ErrVideoNotFound)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("video repository: get by id %w", err)
	}
	return video, nil
}

// Create сохраняет запись о ролике и заполняет id и метки времени.
func (r *VideoRepository) Create(ctx context.Context, video *models.UploadedVideo) error {
	query, args, err := insertVideoQuery(video).ToSql()
	if err != nil {
		return fmt.Errorf("video repository: build insert %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&video.ID, &video.CreatedAt, &video.UpdatedAt); err != nil {
		return fmt.Errorf("video repository: insert %w", err)
	}
	return nil
}

// Update меняет заголовок, описание и тематику ролика.
func (r *VideoRepository) Update(ctx context.Context, id uuid.UUID, fields models.VideoFields) (*models.UploadedVideo, error) {
	video, err := common.GetOne[models.UploadedVideo](ctx, r.db, updateVideoQuery(id, fields), ErrVideoNotFound)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("video repository: update %w", err)
	}
	return video, nil
}

// Delete удаляет запись и возвращает удалённую строку, чтобы можно было убрать файлы.
func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) (*models.UploadedVideo, error) {
	video, err := common.GetOne[models.UploadedVideo](ctx, r.db, deleteVideoQuery(id), ErrVideoNotFound)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("video repository: delete %w", err)
	}
	return video, nil
}
