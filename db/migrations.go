package db

import (
	"fmt"

	"filmorate/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedReferenceData fills the read-only genre and MPA rating tables.
// Idempotent: existing rows are left untouched.
func SeedReferenceData(database *gorm.DB) error {
	genres := []models.Genre{
		{ID: 1, Name: "Комедия"},
		{ID: 2, Name: "Драма"},
		{ID: 3, Name: "Мультфильм"},
		{ID: 4, Name: "Триллер"},
		{ID: 5, Name: "Документальный"},
		{ID: 6, Name: "Боевик"},
	}
	if err := database.Clauses(clause.OnConflict{DoNothing: true}).Create(&genres).Error; err != nil {
		return fmt.Errorf("failed to seed genres: %w", err)
	}

	ratings := []models.Mpa{
		{ID: 1, Name: "G"},
		{ID: 2, Name: "PG"},
		{ID: 3, Name: "PG-13"},
		{ID: 4, Name: "R"},
		{ID: 5, Name: "NC-17"},
	}
	if err := database.Clauses(clause.OnConflict{DoNothing: true}).Create(&ratings).Error; err != nil {
		return fmt.Errorf("failed to seed mpa ratings: %w", err)
	}
	return nil
}
