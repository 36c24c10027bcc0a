package service

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/ignatzorin/jovial-backend/internal/logger"
	"github.com/ignatzorin/jovial-backend/internal/metrics"
	"github.com/ignatzorin/jovial-backend/internal/models"
	"github.com/ignatzorin/jovial-backend/internal/pkg/apperror"
	"github.com/ignatzorin/jovial-backend/internal/repository"
	"github.com/ignatzorin/jovial-backend/internal/validation"
)

// VideoRepository описывает запись загруженных роликов.
type VideoRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UploadedVideo, error)
	Create(ctx context.Context, video *models.UploadedVideo) error
	Update(ctx context.Context, id uuid.UUID, fields models.VideoFields) (*models.UploadedVideo, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.UploadedVideo, error)
}

// AssetStore описывает хранилище файлов.
type AssetStore interface {
	UniqueName(originalName string) string
	Upload(ctx context.Context, bucket, fileName string, r io.Reader) (int64, error)
	PublicURL(bucket, fileName string) string
	ObjectFromURL(publicURL string) (bucket, fileName string, ok bool)
	Delete(ctx context.Context, bucket, fileName string) error
}

// AssetInput файл из формы загрузки.
type AssetInput struct {
	FileName string
	Reader   io.Reader
}

// UploadVideoInput форма загрузки ролика.
type UploadVideoInput struct {
	Title           string                 `form:"title" validate:"notblank,max=200"`
	Description     *string                `form:"description" validate:"omitempty,max=2000"`
	Category        models.ContentCategory `form:"category" validate:"required,content_category"`
	Featured        bool                   `form:"featured"`
	DurationSeconds *int                   `form:"duration_seconds" validate:"omitempty,min=0"`
	File            AssetInput             `validate:"-"`
	Thumbnail       *AssetInput            `validate:"-"`
}

// EditVideoInput форма редактирования ролика.
type EditVideoInput struct {
	Title       string                 `json:"title" validate:"notblank,max=200"`
	Description *string                `json:"description" validate:"omitempty,max=2000"`
	Category    models.ContentCategory `json:"category" validate:"required,content_category"`
}

// VideoService выполняет загрузку, правку и удаление роликов владельцем.
type VideoService struct {
	repo            VideoRepository
	assets          AssetStore
	videoBucket     string
	thumbnailBucket string
	metrics         *metrics.PortfolioMetrics
}

// NewVideoService создаёт сервис роликов.
func NewVideoService(repo VideoRepository, assets AssetStore, videoBucket, thumbnailBucket string, m *metrics.PortfolioMetrics) *VideoService {
	return &VideoService{
		repo:            repo,
		assets:          assets,
		videoBucket:     videoBucket,
		thumbnailBucket: thumbnailBucket,
		metrics:         m,
	}
}

// UploadVideo сохраняет файл в хранилище и создаёт запись о ролике.
// Если запись создать не удалось, загруженные файлы удаляются.
func (s *VideoService) UploadVideo(ctx context.Context, actor models.Actor, in UploadVideoInput) (video *models.UploadedVideo, err error) {
	defer func() { s.metrics.ObserveMutation("upload", err) }()

	if !actor.IsOwner() {
		return nil, apperror.ErrForbidden
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if in.File.Reader == nil || in.File.FileName == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "file: обязательное поле")
	}

	videoName := s.assets.UniqueName(in.File.FileName)
	size, err := s.assets.Upload(ctx, s.videoBucket, videoName, in.File.Reader)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeUploadFailed, "не удалось загрузить видео")
	}
	uploaded := []storedObject{{bucket: s.videoBucket, name: videoName}}

	var thumbnailURL *string
	if in.Thumbnail != nil && in.Thumbnail.Reader != nil {
		thumbName := s.assets.UniqueName(in.Thumbnail.FileName)
		if _, err := s.assets.Upload(ctx, s.thumbnailBucket, thumbName, in.Thumbnail.Reader); err != nil {
			uploadErr := apperror.Wrap(err, apperror.ErrCodeUploadFailed, "не удалось загрузить превью")
			return nil, s.removeOrphans(ctx, uploadErr, uploaded)
		}
		uploaded = append(uploaded, storedObject{bucket: s.thumbnailBucket, name: thumbName})
		url := s.assets.PublicURL(s.thumbnailBucket, thumbName)
		thumbnailURL = &url
	}

	video = &models.UploadedVideo{
		Title:           in.Title,
		Description:     in.Description,
		Category:        in.Category,
		MediaURL:        s.assets.PublicURL(s.videoBucket, videoName),
		ThumbnailURL:    thumbnailURL,
		DurationSeconds: in.DurationSeconds,
		FileSizeBytes:   size,
		IsFeatured:      in.Featured,
		UploaderID:      actor.UserID,
	}
	if err := s.repo.Create(ctx, video); err != nil {
		insertErr := apperror.Wrap(err, apperror.ErrCodeInsertFailed, "не удалось сохранить видео")
		return nil, s.removeOrphans(ctx, insertErr, uploaded)
	}

	logger.WithComponent("videos").WithFields(logrus.Fields{
		"video_id": video.ID,
		"uploader": actor.UserID,
		"size":     size,
	}).Info("video uploaded")
	return video, nil
}

// GetVideo возвращает запись ролика для формы редактирования.
func (s *VideoService) GetVideo(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.UploadedVideo, error) {
	if !actor.IsOwner() {
		return nil, apperror.ErrForbidden
	}

	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, apperror.Wrap(err, apperror.ErrCodeNotFound, "видео не найдено")
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeSourceUnavailable, "видео временно недоступно")
	}
	return video, nil
}

// EditVideo меняет заголовок, описание и тематику. Медиа не меняется.
func (s *VideoService) EditVideo(ctx context.Context, actor models.Actor, id uuid.UUID, in EditVideoInput) (video *models.UploadedVideo, err error) {
	defer func() { s.metrics.ObserveMutation("edit", err) }()

	if !actor.IsOwner() {
		return nil, apperror.ErrForbidden
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	video, err = s.repo.Update(ctx, id, models.VideoFields{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
	})
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, apperror.Wrap(err, apperror.ErrCodeNotFound, "видео не найдено")
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeUpdateFailed, "не удалось обновить видео")
	}
	return video, nil
}

// DeleteVideo безвозвратно удаляет запись и её файлы.
// Ошибка удаления файлов только логируется: запись уже удалена.
func (s *VideoService) DeleteVideo(ctx context.Context, actor models.Actor, id uuid.UUID) (err error) {
	defer func() { s.metrics.ObserveMutation("delete", err) }()

	if !actor.IsOwner() {
		return apperror.ErrForbidden
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return apperror.Wrap(err, apperror.ErrCodeNotFound, "видео не найдено")
		}
		return apperror.Wrap(err, apperror.ErrCodeDeleteFailed, "не удалось удалить видео")
	}

	urls := []string{deleted.MediaURL}
	if deleted.ThumbnailURL != nil {
		urls = append(urls, *deleted.ThumbnailURL)
	}
	var assetErr error
	for _, u := range urls {
		bucket, name, ok := s.assets.ObjectFromURL(u)
		if !ok {
			continue
		}
		assetErr = multierr.Append(assetErr, s.assets.Delete(ctx, bucket, name))
	}
	if assetErr != nil {
		logger.WithComponent("videos").WithError(assetErr).WithField("video_id", id).Warn("video assets not removed")
	}
	return nil
}

type storedObject struct {
	bucket string
	name   string
}

// removeOrphans удаляет уже загруженные файлы после неудачного шага.
// Ошибки удаления присоединяются к исходной ошибке.
func (s *VideoService) removeOrphans(ctx context.Context, cause error, objects []storedObject) error {
	var cleanupErr error
	for _, obj := range objects {
		cleanupErr = multierr.Append(cleanupErr, s.assets.Delete(context.WithoutCancel(ctx), obj.bucket, obj.name))
	}
	if cleanupErr == nil {
		return cause
	}
	logger.WithComponent("videos").WithError(cleanupErr).Error("orphaned assets left in storage")
	return multierr.Combine(cause, cleanupErr)
}
