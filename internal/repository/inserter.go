package repository

import (
	"newsroom-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	_ ArticleInserter = (*BulkArticleInserter)(nil)
	_ ArticleInserter = (*PerRowArticleInserter)(nil)
)

// BulkArticleInserter inserts a batch in one statement and lets the
// store skip rows whose (tenant_id, link) already exists. RowsAffected
// reports only the rows that were actually written.
type BulkArticleInserter struct {
	db *gorm.DB
}

// NewBulkArticleInserter creates a bulk skip-on-conflict inserter
func NewBulkArticleInserter(db *gorm.DB) *BulkArticleInserter {
	return &BulkArticleInserter{db: db}
}

// InsertSkipConflicts inserts the batch, skipping duplicate links
func (i *BulkArticleInserter) InsertSkipConflicts(articles []models.Article) (int64, error) {
	if len(articles) == 0 {
		return 0, nil
	}
	result := i.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "link"}},
		DoNothing: true,
	}).Create(&articles)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// PerRowArticleInserter inserts rows one at a time and treats a unique
// violation as a skip. Slower than the bulk path but works on stores
// without conflict-target support.
type PerRowArticleInserter struct {
	db *gorm.DB
}

// NewPerRowArticleInserter creates a row-by-row inserter
func NewPerRowArticleInserter(db *gorm.DB) *PerRowArticleInserter {
	return &PerRowArticleInserter{db: db}
}

// InsertSkipConflicts inserts each row, counting the ones that landed
func (i *PerRowArticleInserter) InsertSkipConflicts(articles []models.Article) (int64, error) {
	var inserted int64
	for idx := range articles {
		err := i.db.Create(&articles[idx]).Error
		if err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// SelectArticleInserter picks the insert strategy once at startup.
// Postgres supports ON CONFLICT with a conflict target, so it gets the
// bulk path; anything else falls back to per-row inserts.
func SelectArticleInserter(db *gorm.DB) ArticleInserter {
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		return NewBulkArticleInserter(db)
	}
	return NewPerRowArticleInserter(db)
}
