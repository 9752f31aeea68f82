package service

import (
	"context"
	"time"

	"quicknotes-be/internal/dto"
	"quicknotes-be/internal/entity"
	"quicknotes-be/internal/pkg/logger"
	"quicknotes-be/internal/pkg/serverutils"
	"quicknotes-be/internal/repository/unitofwork"
	"quicknotes-be/pkg/events"

	"github.com/google/uuid"
)

type INoteService interface {
	List(ctx context.Context, userId uuid.UUID, search string) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

func (c *noteService) List(ctx context.Context, userId uuid.UUID, search string) ([]*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().ListOwned(ctx, userId, search)
	if err != nil {
		return nil, err
	}

	// Non-nil so an empty result serializes as [] rather than null.
	res := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		res = append(res, toNoteResponse(note))
	}
	return res, nil
}

func (c *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOwned(ctx, id, userId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		// Another user's note and a nonexistent note are indistinguishable.
		return nil, serverutils.NewNotFound("Note not found")
	}
	return toNoteResponse(note), nil
}

func (c *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()
	note := entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		UserId:    userId,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	c.publishEvent(ctx, events.NoteCreated, &note)

	return toNoteResponse(&note), nil
}

func (c *noteService) Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOwned(ctx, id, userId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NewNotFound("Note not found")
	}

	// Absent fields stay untouched.
	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}

	updated, err := uow.NoteRepository().UpdateOwned(ctx, note)
	if err != nil {
		return nil, err
	}
	if !updated {
		// The note vanished between lookup and update; the owner-scoped
		// UPDATE matched no row.
		return nil, serverutils.NewNotFound("Note not found")
	}

	c.publishEvent(ctx, events.NoteUpdated, note)

	return toNoteResponse(note), nil
}

func (c *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOwned(ctx, id, userId)
	if err != nil {
		return err
	}
	if note == nil {
		return serverutils.NewNotFound("Note not found")
	}

	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		return err
	}

	c.publishEvent(ctx, events.NoteDeleted, note)

	return nil
}

// publishEvent logs but never fails the request; events are auxiliary.
func (c *noteService) publishEvent(ctx context.Context, eventType string, note *entity.Note) {
	if c.publisherService == nil {
		return
	}
	evt := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"note_id": note.Id,
			"user_id": note.UserId,
			"title":   note.Title,
		},
		OccurredAt: time.Now(),
	}
	if err := c.publisherService.Publish(ctx, evt); err != nil {
		c.log.Warn("note", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
