package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category витринная категория портфолио. Не путать с ContentCategory загруженного видео.
type Category string

const (
	CategoryAll        Category = "all"
	CategoryAds        Category = "ads"
	CategoryWebApps    Category = "web_apps"
	CategoryDashboards Category = "dashboards"
	CategoryAIAgents   Category = "ai_agents"
)

// DisplayCategories перечисляет реальные категории в порядке вкладок на сайте (без all).
var DisplayCategories = []Category{CategoryAds, CategoryWebApps, CategoryDashboards, CategoryAIAgents}

// ParseCategory разбирает категорию фильтра. Пустая строка означает all.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" || c == CategoryAll {
		return CategoryAll, nil
	}
	for _, known := range DisplayCategories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("неизвестная категория %q", raw)
}

// ItemKind тег варианта элемента портфолио.
type ItemKind string

const (
	KindVideo           ItemKind = "video"
	KindExternalVideo   ItemKind = "external_video"
	KindInteractiveDemo ItemKind = "interactive_demo"
	KindStaticShowcase  ItemKind = "static_showcase"
)

// DisplayCategoryForKind возвращает принудительную категорию для вида элемента.
// Для демо и витрины категория задаётся записью каталога, поэтому ok == false.
func DisplayCategoryForKind(kind ItemKind) (Category, bool) {
	switch kind {
	case KindVideo:
		return CategoryAds, true
	case KindExternalVideo:
		return CategoryAIAgents, true
	case KindInteractiveDemo, KindStaticShowcase:
		return "", false
	default:
		return "", false
	}
}

// Media вариант содержимого элемента портфолио. Реализации есть только в этом пакете.
type Media interface {
	Kind() ItemKind
	isMedia()
}

// VideoMedia загруженный в хранилище ролик.
type VideoMedia struct {
	MediaURL        string  `json:"media_url"`
	ThumbnailURL    *string `json:"thumbnail_url,omitempty"`
	DurationSeconds *int    `json:"duration_seconds,omitempty"`
}

// ExternalVideoMedia ролик на внешней площадке.
type ExternalVideoMedia struct {
	ExternalURL  string `json:"external_url"`
	ExternalID   string `json:"external_id"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// DemoMedia интерактивное демо: ссылка или цель встраивания.
type DemoMedia struct {
	DemoURL     string `json:"demo_url,omitempty"`
	EmbedTarget string `json:"embed_target,omitempty"`
}

// ShowcaseMedia витринная запись без медиа.
type ShowcaseMedia struct{}

func (VideoMedia) Kind() ItemKind         { return KindVideo }
func (ExternalVideoMedia) Kind() ItemKind { return KindExternalVideo }
func (DemoMedia) Kind() ItemKind          { return KindInteractiveDemo }
func (ShowcaseMedia) Kind() ItemKind      { return KindStaticShowcase }

func (VideoMedia) isMedia()         {}
func (ExternalVideoMedia) isMedia() {}
func (DemoMedia) isMedia()          {}
func (ShowcaseMedia) isMedia()      {}

// PortfolioItem нормализованный элемент агрегата. Создаётся заново на каждом проходе агрегации.
type PortfolioItem struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Media       Media
}

// Kind возвращает тег варианта.
func (i PortfolioItem) Kind() ItemKind {
	if i.Media == nil {
		return KindStaticShowcase
	}
	return i.Media.Kind()
}

// MarshalJSON добавляет явный тег kind рядом с данными варианта.
func (i PortfolioItem) MarshalJSON() ([]byte, error) {
	media := i.Media
	if media == nil {
		media = ShowcaseMedia{}
	}
	return json.Marshal(struct {
		ID          string   `json:"id"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Category    Category `json:"category"`
		Kind        ItemKind `json:"kind"`
		Media       Media    `json:"media"`
	}{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Category:    i.Category,
		Kind:        media.Kind(),
		Media:       media,
	})
}

// FormatDuration форматирует секунды как M:SS. Часы не выделяются: 3661 → "61:01".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
