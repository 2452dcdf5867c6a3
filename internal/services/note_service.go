package services

import (
	"context"

	"go.uber.org/zap"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories"
	"skillsphere/pkg/utils"
)

type NoteServiceInterface interface {
	CreateNote(ctx context.Context, caller *Principal, title, content string) (*db_models.Note, error)
	ListNotes(ctx context.Context, caller *Principal) ([]db_models.Note, error)
	UpdateNote(ctx context.Context, noteID uint, caller *Principal, title, content string) (*db_models.Note, error)
}

type NoteService struct {
	noteRepo repositories.NoteRepository
	guard    OwnershipGuard
	log      *zap.Logger
}

func NewNoteService(noteRepo repositories.NoteRepository, log *zap.Logger) NoteServiceInterface {
	return &NoteService{
		noteRepo: noteRepo,
		log:      log.Named("notes"),
	}
}

func (s *NoteService) CreateNote(ctx context.Context, caller *Principal, title, content string) (*db_models.Note, error) {
	if caller == nil {
		return nil, utils.ErrUnauthenticated
	}
	if caller.Source != SourceUser {
		return nil, utils.NewForbiddenError("only users can keep notes")
	}
	if title == "" {
		return nil, utils.NewValidationError("title is required")
	}

	note := &db_models.Note{OwnerID: caller.ID, Title: title, Content: content}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, storeError(s.log, "create note", err)
	}
	return note, nil
}

func (s *NoteService) ListNotes(ctx context.Context, caller *Principal) ([]db_models.Note, error) {
	if caller == nil {
		return nil, utils.ErrUnauthenticated
	}
	if caller.Source != SourceUser {
		return []db_models.Note{}, nil
	}

	notes, err := s.noteRepo.ListByOwner(ctx, caller.ID)
	if err != nil {
		return nil, storeError(s.log, "list notes", err)
	}
	return notes, nil
}

func (s *NoteService) UpdateNote(ctx context.Context, noteID uint, caller *Principal, title, content string) (*db_models.Note, error) {
	if title == "" {
		return nil, utils.NewValidationError("title is required")
	}

	note, err := s.noteRepo.FindById(ctx, noteID)
	if err != nil {
		return nil, storeError(s.log, "find note", err)
	}
	if note == nil {
		return nil, utils.ErrNoteNotFound
	}
	if err := s.guard.Authorize(note.OwnerID, caller, OwnerOnly); err != nil {
		return nil, err
	}

	note.Title = title
	note.Content = content
	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, storeError(s.log, "update note", err)
	}
	return note, nil
}
