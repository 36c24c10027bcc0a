package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ignatzorin/jovial-backend/internal/goroutine"
	"github.com/ignatzorin/jovial-backend/internal/logger"
	"github.com/ignatzorin/jovial-backend/internal/metrics"
	"github.com/ignatzorin/jovial-backend/internal/models"
	"github.com/ignatzorin/jovial-backend/internal/pkg/apperror"
)

// VideoSource отдаёт загруженные ролики, новые первыми.
type VideoSource interface {
	ListNewestFirst(ctx context.Context) ([]models.UploadedVideo, error)
}

// ExternalSource отдаёт активные внешние ролики по display_order.
type ExternalSource interface {
	ListActive(ctx context.Context) ([]models.ExternalVideo, error)
}

// PortfolioAggregator собирает единый список портфолио из хранилища и каталога.
type PortfolioAggregator struct {
	videos    VideoSource
	externals ExternalSource
	catalog   []models.PortfolioItem
	metrics   *metrics.PortfolioMetrics
}

// NewPortfolioAggregator создаёт агрегатор. catalog копируется и дальше не меняется.
func NewPortfolioAggregator(videos VideoSource, externals ExternalSource, catalog []models.PortfolioItem, m *metrics.PortfolioMetrics) *PortfolioAggregator {
	return &PortfolioAggregator{
		videos:    videos,
		externals: externals,
		catalog:   append([]models.PortfolioItem(nil), catalog...),
		metrics:   m,
	}
}

// LoadAggregate загружает оба источника параллельно и склеивает их с каталогом:
// сначала загруженные ролики, затем внешние, затем витринные записи.
// Ошибка любого источника отменяет весь результат.
func (a *PortfolioAggregator) LoadAggregate(ctx context.Context) ([]models.PortfolioItem, error) {
	start := time.Now()

	var (
		uploaded []models.UploadedVideo
		external []models.ExternalVideo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(goroutine.Guard("uploaded videos", func() error {
		rows, err := a.videos.ListNewestFirst(gctx)
		if err != nil {
			return fmt.Errorf("uploaded videos: %w", err)
		}
		uploaded = rows
		return nil
	}))
	g.Go(goroutine.Guard("external videos", func() error {
		rows, err := a.externals.ListActive(gctx)
		if err != nil {
			return fmt.Errorf("external videos: %w", err)
		}
		external = rows
		return nil
	}))

	if err := g.Wait(); err != nil {
		a.metrics.ObserveLoad(time.Since(start), err)
		logger.WithComponent("portfolio").WithError(err).Warn("portfolio source unavailable")
		return nil, apperror.Wrap(err, apperror.ErrCodeSourceUnavailable, "портфолио временно недоступно")
	}

	items := make([]models.PortfolioItem, 0, len(uploaded)+len(external)+len(a.catalog))
	for _, row := range uploaded {
		items = append(items, NormalizeUploadedVideo(row))
	}
	for _, row := range external {
		items = append(items, NormalizeExternalVideo(row))
	}
	items = append(items, a.catalog...)

	items, dropped := keepLastByID(items)
	if len(dropped) > 0 {
		a.metrics.AddDuplicateIDs(len(dropped))
		logger.WithComponent("portfolio").WithFields(logrus.Fields{
			"ids": dropped,
		}).Warn("duplicate portfolio ids, later entries kept")
	}

	a.metrics.ObserveLoad(time.Since(start), nil)
	return items, nil
}

// NormalizeUploadedVideo приводит строку загруженного ролика к элементу вида video.
func NormalizeUploadedVideo(row models.UploadedVideo) models.PortfolioItem {
	category, _ := models.DisplayCategoryForKind(models.KindVideo)
	return models.PortfolioItem{
		ID:          row.ID.String(),
		Title:       row.Title,
		Description: deref(row.Description),
		Category:    category,
		Media: models.VideoMedia{
			MediaURL:        row.MediaURL,
			ThumbnailURL:    nonEmpty(row.ThumbnailURL),
			DurationSeconds: row.DurationSeconds,
		},
	}
}

// NormalizeExternalVideo приводит внешний ролик к элементу вида external_video.
// Без сохранённого превью оно строится из external_id.
func NormalizeExternalVideo(row models.ExternalVideo) models.PortfolioItem {
	category, _ := models.DisplayCategoryForKind(models.KindExternalVideo)
	thumbnail := deref(row.ThumbnailURL)
	if thumbnail == "" {
		thumbnail = ExternalThumbnailURL(row.ExternalID)
	}
	return models.PortfolioItem{
		ID:          row.ID.String(),
		Title:       row.Title,
		Description: deref(row.Description),
		Category:    category,
		Media: models.ExternalVideoMedia{
			ExternalURL:  row.ExternalURL,
			ExternalID:   row.ExternalID,
			ThumbnailURL: thumbnail,
		},
	}
}

// FilterByCategory возвращает элементы категории с сохранением порядка. all возвращает список как есть.
func FilterByCategory(items []models.PortfolioItem, category models.Category) []models.PortfolioItem {
	if category == models.CategoryAll || category == "" {
		return items
	}
	filtered := make([]models.PortfolioItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// keepLastByID оставляет для каждого id последний по порядку элемент.
func keepLastByID(items []models.PortfolioItem) ([]models.PortfolioItem, []string) {
	last := make(map[string]int, len(items))
	for i, item := range items {
		last[item.ID] = i
	}
	if len(last) == len(items) {
		return items, nil
	}

	kept := make([]models.PortfolioItem, 0, len(last))
	var dropped []string
	for i, item := range items {
		if last[item.ID] != i {
			dropped = append(dropped, item.ID)
			continue
		}
		kept = append(kept, item)
	}
	return kept, dropped
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
