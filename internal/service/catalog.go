package service

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ignatzorin/jovial-backend/internal/models"
)

//go:embed showcase.yaml
var defaultCatalogYAML []byte

type catalogFile struct {
	Entries []catalogEntry `yaml:"entries"`
}

type catalogEntry struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Kind        string `yaml:"kind"`
	DemoURL     string `yaml:"demo_url"`
	EmbedTarget string `yaml:"embed_target"`
}

// DefaultCatalog возвращает встроенный каталог витринных записей.
func DefaultCatalog() ([]models.PortfolioItem, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// ParseCatalog разбирает YAML каталога в элементы портфолио в порядке объявления.
func ParseCatalog(data []byte) ([]models.PortfolioItem, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("catalog: decode %w", err)
	}

	seen := make(map[string]struct{}, len(file.Entries))
	items := make([]models.PortfolioItem, 0, len(file.Entries))
	for i, e := range file.Entries {
		if e.ID == "" || e.Title == "" {
			return nil, fmt.Errorf("catalog: запись %d без id или заголовка", i)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("catalog: повторяющийся id %q", e.ID)
		}
		seen[e.ID] = struct{}{}

		category, err := models.ParseCategory(e.Category)
		if err != nil || category == models.CategoryAll {
			return nil, fmt.Errorf("catalog: запись %q: некорректная категория %q", e.ID, e.Category)
		}

		var media models.Media
		switch models.ItemKind(e.Kind) {
		case models.KindInteractiveDemo:
			if e.DemoURL == "" && e.EmbedTarget == "" {
				return nil, fmt.Errorf("catalog: демо %q без ссылки и цели встраивания", e.ID)
			}
			media = models.DemoMedia{DemoURL: e.DemoURL, EmbedTarget: e.EmbedTarget}
		case models.KindStaticShowcase, "":
			media = models.ShowcaseMedia{}
		default:
			return nil, fmt.Errorf("catalog: запись %q: вид %q не допускается в каталоге", e.ID, e.Kind)
		}

		items = append(items, models.PortfolioItem{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Category:    category,
			Media:       media,
		})
	}
	return items, nil
}
