package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mthompson/stickit/internal/domain"
	"gorm.io/gorm"
)

// Stored single-character marker values for the pinned and completed
// flags. The existing post_it data encodes both as 'T'/'F', so the
// encoding must survive even though the domain model is boolean.
const (
	markTrue  = "T"
	markFalse = "F"
)

// postItRecord is the stored shape of a post-it. The marker columns are
// translated to booleans here and nowhere else.
type postItRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null"`
	Title       string    `gorm:"not null"`
	Description string
	Weekday     string `gorm:"not null;index"`
	Pinned      string `gorm:"type:char(1);not null;default:F"`
	Completed   string `gorm:"type:char(1);not null;default:F"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (postItRecord) TableName() string {
	return "post_its"
}

func encodeMark(b bool) string {
	if b {
		return markTrue
	}
	return markFalse
}

func toRecord(p *domain.PostIt) *postItRecord {
	return &postItRecord{
		ID:          p.ID,
		UserID:      p.UserID,
		CategoryID:  p.CategoryID,
		Title:       p.Title,
		Description: p.Description,
		Weekday:     string(p.Weekday),
		Pinned:      encodeMark(p.Pinned),
		Completed:   encodeMark(p.Completed),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (rec *postItRecord) toDomain() *domain.PostIt {
	return &domain.PostIt{
		ID:          rec.ID,
		UserID:      rec.UserID,
		CategoryID:  rec.CategoryID,
		Title:       rec.Title,
		Description: rec.Description,
		Weekday:     domain.Weekday(rec.Weekday),
		Pinned:      rec.Pinned == markTrue,
		Completed:   rec.Completed == markTrue,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

func toDomainList(recs []*postItRecord) []*domain.PostIt {
	postIts := make([]*domain.PostIt, len(recs))
	for i, rec := range recs {
		postIts[i] = rec.toDomain()
	}
	return postIts
}

type postItRepository struct {
	db *gorm.DB
}

func NewPostItRepository(db *gorm.DB) *postItRepository {
	return &postItRepository{db: db}
}

func (r *postItRepository) Create(ctx context.Context, postIt *domain.PostIt) error {
	rec := toRecord(postIt)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return err
	}
	*postIt = *rec.toDomain()
	return nil
}

func (r *postItRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PostIt, error) {
	var rec postItRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *postItRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.PostIt, error) {
	var recs []*postItRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(recs), nil
}

func (r *postItRepository) FindByWeekdayAndOwner(ctx context.Context, weekday domain.Weekday, userID uuid.UUID, pinned bool) ([]*domain.PostIt, error) {
	var recs []*postItRecord
	err := r.db.WithContext(ctx).
		Where("weekday = ? AND user_id = ? AND pinned = ?", string(weekday), userID, encodeMark(pinned)).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(recs), nil
}

func (r *postItRepository) FindCompletedByOwner(ctx context.Context, userID uuid.UUID) ([]*domain.PostIt, error) {
	var recs []*postItRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND completed = ?", userID, markTrue).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(recs), nil
}

func (r *postItRepository) Update(ctx context.Context, postIt *domain.PostIt) error {
	return r.db.WithContext(ctx).Save(toRecord(postIt)).Error
}

func (r *postItRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&postItRecord{}, "id = ?", id).Error
}

func (r *postItRepository) DeleteByCategoryID(ctx context.Context, categoryID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&postItRecord{}, "category_id = ?", categoryID).Error
}
