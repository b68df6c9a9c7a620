package storage

import (
	"github.com/SanjayD11/NourishNet-sub001/internal/core/domain"
	"github.com/SanjayD11/NourishNet-sub001/internal/core/ports"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteAdapter implements ports.EventRepository using GORM and SQLite.
type SQLiteAdapter struct {
	db *gorm.DB
}

// Ensure compliance
var _ ports.EventRepository = (*SQLiteAdapter)(nil)

// NewSQLiteAdapter initializes the database and migrates schema.
func NewSQLiteAdapter(path string) (*SQLiteAdapter, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&domain.PreviewEvent{}); err != nil {
		return nil, err
	}

	// Listing is always per-widget, newest first.
	db.Exec("CREATE INDEX IF NOT EXISTS idx_preview_events_widget_ts ON preview_events(widget_id, timestamp)")

	return &SQLiteAdapter{db: db}, nil
}

// SavePreviewEvent appends one applied transition to the audit trail.
func (a *SQLiteAdapter) SavePreviewEvent(ev domain.PreviewEvent) error {
	return a.db.Create(&ev).Error
}

// ListPreviewEvents returns a widget's recorded transitions, newest first.
func (a *SQLiteAdapter) ListPreviewEvents(widgetID string, limit int) ([]domain.PreviewEvent, error) {
	var events []domain.PreviewEvent
	q := a.db.Where("widget_id = ?", widgetID).Order("timestamp desc, id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Close releases the underlying database handle.
func (a *SQLiteAdapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
