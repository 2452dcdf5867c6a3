package repositories

import (
	"context"

	"gorm.io/gorm"
	"skillsphere/internal/models/db_models"
)

type NoteRepository interface {
	Create(ctx context.Context, note *db_models.Note) error
	FindById(ctx context.Context, id uint) (*db_models.Note, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]db_models.Note, error)
	Update(ctx context.Context, note *db_models.Note) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *db_models.Note) error {
	return translateErr(r.db.WithContext(ctx).Create(note).Error)
}

func (r *noteRepository) FindById(ctx context.Context, id uint) (*db_models.Note, error) {
	var note db_models.Note
	found, err := firstOrNil(r.db.WithContext(ctx).First(&note, "id = ?", id).Error)
	if !found {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) ListByOwner(ctx context.Context, ownerID uint) ([]db_models.Note, error) {
	var notes []db_models.Note
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) Update(ctx context.Context, note *db_models.Note) error {
	return translateErr(r.db.WithContext(ctx).Save(note).Error)
}

func (r *noteRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.Note{})
	return res.RowsAffected, res.Error
}
