package implementation

import (
	"context"
	"errors"
	"time"

	"quicknotes-be/internal/entity"
	"quicknotes-be/internal/mapper"
	"quicknotes-be/internal/model"
	"quicknotes-be/internal/repository/contract"
	"quicknotes-be/internal/repository/scope"
	"quicknotes-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) UpdateOwned(ctx context.Context, note *entity.Note) (bool, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ? AND user_id = ?", note.Id, note.UserId).
		Updates(map[string]interface{}{
			"title":      note.Title,
			"content":    note.Content,
			"updated_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	note.UpdatedAt = now
	return true, nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Note{}, id).Error
}

func (r *NoteRepositoryImpl) FindOwned(ctx context.Context, id, ownerId uuid.UUID) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: ownerId},
	)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) ListOwned(ctx context.Context, ownerId uuid.UUID, search string) ([]*entity.Note, error) {
	specs := []specification.Specification{
		specification.OwnedBy{UserID: ownerId},
	}
	if search != "" {
		specs = append(specs, specification.TitleOrContentContains{Term: search})
	}

	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...).Scopes(scope.OrderByUpdatedDesc)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Note{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
