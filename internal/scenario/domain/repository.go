package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, scenario *Scenario) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Scenario, error)
	// List returns scenarios newest creation time first. Ordering is a
	// contract callers rely on for display.
	List(ctx context.Context, db *gorm.DB) ([]Scenario, error)
	// Delete reports the number of rows removed so callers can distinguish
	// a missing id from a successful delete.
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error)
}
