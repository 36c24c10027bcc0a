package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ignatzorin/jovial-backend/internal/models"
)

// ViewState состояние смонтированного представления.
type ViewState string

const (
	ViewIdle    ViewState = "idle"
	ViewLoading ViewState = "loading"
	ViewReady   ViewState = "ready"
	ViewFailed  ViewState = "failed"
)

// Surface поверхность сайта, на которой показывается портфолио.
type Surface string

const (
	SurfaceHomePreview   Surface = "home_preview"
	SurfaceHomeGallery   Surface = "home_gallery"
	SurfacePortfolioPage Surface = "portfolio_page"
)

// ErrInvalidTransition возвращается при недопустимом переходе состояния.
var ErrInvalidTransition = errors.New("view: недопустимый переход")

// AggregateLoader источник агрегата для представления.
type AggregateLoader interface {
	LoadAggregate(ctx context.Context) ([]models.PortfolioItem, error)
}

// View представление портфолио на одной поверхности. Живёт в пределах одного запроса
// и не разделяет состояние с другими представлениями. Не потокобезопасен.
type View struct {
	loader   AggregateLoader
	surface  Surface
	limit    int
	state    ViewState
	category models.Category
	items    []models.PortfolioItem
	err      error
}

// NewView создаёт представление в состоянии Idle. limit > 0 ограничивает видимые элементы.
func NewView(loader AggregateLoader, surface Surface, limit int) *View {
	return &View{
		loader:   loader,
		surface:  surface,
		limit:    limit,
		state:    ViewIdle,
		category: models.CategoryAll,
	}
}

// Lazy галерея на главной загружается только при первом раскрытии.
func (v *View) Lazy() bool {
	return v.surface == SurfaceHomeGallery
}

// Mount монтирует представление. Ленивые представления остаются в Idle.
func (v *View) Mount(ctx context.Context) error {
	if v.state != ViewIdle {
		return fmt.Errorf("%w: mount из %s", ErrInvalidTransition, v.state)
	}
	if v.Lazy() {
		return nil
	}
	return v.load(ctx)
}

// Expand раскрывает ленивую галерею. Повторное раскрытие ничего не загружает.
func (v *View) Expand(ctx context.Context) error {
	if v.state != ViewIdle {
		return nil
	}
	return v.load(ctx)
}

// Select меняет фильтр категории без повторной загрузки.
func (v *View) Select(category models.Category) {
	v.category = category
}

// Retry повторяет загрузку после ошибки.
func (v *View) Retry(ctx context.Context) error {
	if v.state != ViewFailed {
		return fmt.Errorf("%w: retry из %s", ErrInvalidTransition, v.state)
	}
	return v.load(ctx)
}

// Refresh полностью перезагружает агрегат после успешной мутации.
// Ещё не раскрытая ленивая галерея остаётся в Idle.
func (v *View) Refresh(ctx context.Context) error {
	switch v.state {
	case ViewIdle:
		return nil
	case ViewReady:
		return v.load(ctx)
	default:
		return fmt.Errorf("%w: refresh из %s", ErrInvalidTransition, v.state)
	}
}

func (v *View) load(ctx context.Context) error {
	v.state = ViewLoading
	items, err := v.loader.LoadAggregate(ctx)
	if err != nil {
		v.state = ViewFailed
		v.items = nil
		v.err = err
		return err
	}
	v.state = ViewReady
	v.items = items
	v.err = nil
	return nil
}

// State текущее состояние.
func (v *View) State() ViewState { return v.state }

// Surface поверхность представления.
func (v *View) Surface() Surface { return v.surface }

// Category выбранный фильтр.
func (v *View) Category() models.Category { return v.category }

// Err ошибка последней загрузки.
func (v *View) Err() error { return v.err }

// Items весь агрегат без фильтра.
func (v *View) Items() []models.PortfolioItem { return v.items }

// Visible элементы выбранной категории с учётом лимита поверхности.
func (v *View) Visible() []models.PortfolioItem {
	if v.state != ViewReady {
		return nil
	}
	visible := FilterByCategory(v.items, v.category)
	if v.limit > 0 && len(visible) > v.limit {
		visible = visible[:v.limit]
	}
	return visible
}
