package api

import (
	"context"

	"notekeeper/internal/domain/entities"
)

// NoteUseCase определяет операции над заметками пользователя.
type NoteUseCase interface {
	AddNote(ctx context.Context, username, text string) (entities.Note, error)

	ListNotes(ctx context.Context, username string) ([]entities.Note, error)

	EditNote(ctx context.Context, username, oldText, newText string) (entities.Note, error)

	DeleteNote(ctx context.Context, username, text string) error
}
