package store

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/tgienger/taskbox/internal/db"
	"github.com/tgienger/taskbox/internal/models"
)

// Cascader clears task references to a deleted category
type Cascader interface {
	CascadeCategory(categoryID string)
}

// CategoryStore owns the ordered category collection, oldest first
type CategoryStore struct {
	reader  Reader
	writer  Writer
	logger  *slog.Logger
	cascade Cascader
	newID   func() string

	categories []models.Category
}

// NewCategoryStore returns an empty store. cascade runs on every removal
// before either collection is persisted; it may be nil.
func NewCategoryStore(reader Reader, writer Writer, cascade Cascader, logger *slog.Logger) *CategoryStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryStore{
		reader:     reader,
		writer:     writer,
		logger:     logger.With("component", "categories"),
		cascade:    cascade,
		newID:      newID,
		categories: []models.Category{},
	}
}

// SetIDFunc replaces the id generator
func (s *CategoryStore) SetIDFunc(fn func() string) {
	s.newID = fn
}

// Load replaces the collection with the persisted one. On first run the
// single default category named seedName is created and persisted. When
// the record cannot be read the same default is used in memory only, so
// the stored record is left for a later run.
func (s *CategoryStore) Load(ctx context.Context, seedName string) {
	value, ok, err := s.reader.Get(ctx, db.CategoriesKey)
	if err != nil {
		s.logger.Warn("failed to read categories", "error", err)
		s.seed(seedName)
		return
	}
	if !ok {
		s.seed(seedName)
		s.persist()
		return
	}

	categories, err := db.DecodeCategories(value)
	if err != nil {
		s.logger.Warn("discarding unreadable categories", "error", err)
		s.seed(seedName)
		return
	}
	s.categories = categories
	s.logger.Debug("categories loaded", "count", len(categories))
}

func (s *CategoryStore) seed(name string) {
	s.categories = []models.Category{{
		ID:    models.DefaultCategoryID,
		Name:  name,
		Color: models.NeutralColor,
	}}
}

// All returns a copy of the collection in insertion order
func (s *CategoryStore) All() []models.Category {
	return slices.Clone(s.categories)
}

// Get returns the category with id
func (s *CategoryStore) Get(id string) (models.Category, bool) {
	if i := s.index(id); i >= 0 {
		return s.categories[i], true
	}
	return models.Category{}, false
}

// Add appends a new category
func (s *CategoryStore) Add(name, color string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, &ValidationError{Field: "name"}
	}

	category := models.Category{
		ID:    s.newID(),
		Name:  name,
		Color: color,
	}
	s.categories = append(slices.Clone(s.categories), category)
	s.persist()
	return category, nil
}

// Remove deletes the category with id and uncategorizes its tasks. It
// reports whether a category was removed.
func (s *CategoryStore) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.categories = slices.Delete(slices.Clone(s.categories), i, i+1)
	if s.cascade != nil {
		s.cascade.CascadeCategory(id)
	}
	s.persist()
	return true
}

func (s *CategoryStore) index(id string) int {
	return slices.IndexFunc(s.categories, func(c models.Category) bool { return c.ID == id })
}

func (s *CategoryStore) persist() {
	value, err := db.EncodeCategories(s.categories)
	if err != nil {
		s.logger.Error("failed to encode categories", "error", err)
		return
	}
	s.writer.Put(db.CategoriesKey, value)
}
