package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/jovial-backend/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	items, err := DefaultCatalog()
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "showcase-ordering-demo", items[0].ID)
	assert.Equal(t, models.CategoryWebApps, items[0].Category)
	demo, ok := items[0].Media.(models.DemoMedia)
	require.True(t, ok)
	assert.NotEmpty(t, demo.DemoURL)

	assert.Equal(t, "showcase-sales-dashboards", items[1].ID)
	assert.Equal(t, models.CategoryDashboards, items[1].Category)
	assert.Equal(t, models.KindStaticShowcase, items[1].Kind())
}

func TestParseCatalog_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad yaml":         "entries: [",
		"missing title":    "entries:\n  - id: a\n    category: ads\n",
		"duplicate id":     "entries:\n  - {id: a, title: A, category: ads}\n  - {id: a, title: B, category: ads}\n",
		"all category":     "entries:\n  - {id: a, title: A, category: all}\n",
		"unknown category": "entries:\n  - {id: a, title: A, category: music}\n",
		"video kind":       "entries:\n  - {id: a, title: A, category: ads, kind: video}\n",
		"demo without url": "entries:\n  - {id: a, title: A, category: web_apps, kind: interactive_demo}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestThumbnailTemplates(t *testing.T) {
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", ExternalThumbnailURL("dQw4w9WgXcQ"))
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", FallbackThumbnailURL("dQw4w9WgXcQ"))
	assert.Empty(t, ExternalThumbnailURL("  "))
}
