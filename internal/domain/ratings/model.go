package ratings

import "filmadviser/internal/domain/catalog"

// Rating is one user's score for one title. TitleKind disambiguates movie
// ids from serial ids, which may overlap between the two tables. The
// composite unique index makes the upsert in storage race-free.
type Rating struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;uniqueIndex:idx_ratings_user_title" json:"user_id"`
	TitleKind catalog.Kind `gorm:"type:varchar(10);not null;uniqueIndex:idx_ratings_user_title" json:"title_kind"`
	TitleID   uint         `gorm:"not null;uniqueIndex:idx_ratings_user_title" json:"title_id"`
	Value     int          `gorm:"not null" json:"value"`
}
