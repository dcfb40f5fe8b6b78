package db

import (
	"encoding/json"

	"github.com/tgienger/taskbox/internal/models"
)

// EncodeCategories serializes the ordered category collection
func EncodeCategories(categories []models.Category) (string, error) {
	if categories == nil {
		categories = []models.Category{}
	}
	data, err := json.Marshal(categories)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeCategories parses a category collection written by EncodeCategories
func DecodeCategories(value string) ([]models.Category, error) {
	var categories []models.Category
	if err := json.Unmarshal([]byte(value), &categories); err != nil {
		return nil, &StorageReadError{Key: CategoriesKey, Err: err}
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}
