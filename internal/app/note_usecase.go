package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/repositories"
	"notekeeper/pkg/logger"
)

const (
	methodAddNote    = "AddNote"
	methodListNotes  = "ListNotes"
	methodEditNote   = "EditNote"
	methodDeleteNote = "DeleteNote"

	msgAddingNote   = "adding note"
	msgNoteAdded    = "note added successfully"
	msgListingNotes = "listing notes"
	msgEditingNote  = "editing note"
	msgNoteEdited   = "note edited successfully"
	msgDeletingNote = "deleting note"
	msgNoteDeleted  = "note deleted successfully"
	msgUserMissing  = "user not found"
	msgNoteMissing  = "note not found"

	errCtxAddingNote   = "adding note"
	errCtxListingNotes = "listing notes"
	errCtxEditingNote  = "editing note"
	errCtxDeletingNote = "deleting note"
)

// NoteUseCase реализует операции над заметками пользователя.
// Заметка для изменения и удаления ищется точным совпадением текста,
// действие применяется к первой совпавшей по порядку. Это хрупкое, но
// намеренно сохраненное поведение исходного API.
type NoteUseCase struct {
	storage repositories.Storage
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(storage repositories.Storage) *NoteUseCase {
	return &NoteUseCase{storage: storage}
}

// AddNote добавляет заметку пользователю и возвращает созданную запись.
func (uc *NoteUseCase) AddNote(ctx context.Context, username, text string) (entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAddNote), zap.String("username", username))
	log.Debug(ctx, msgAddingNote)

	if username == "" || text == "" {
		return entities.Note{}, fmt.Errorf("%s: %w", errCtxAddingNote, entities.ErrMissingFields)
	}

	note := entities.NewNote(text)

	err := uc.storage.Update(ctx, func(doc *entities.Document) error {
		user := doc.FindUser(username)
		if user == nil {
			log.Debug(ctx, msgUserMissing)
			return fmt.Errorf("%s: %w", errCtxAddingNote, entities.ErrUserNotFound)
		}
		user.Notes = append(user.Notes, note)
		return nil
	})
	if err != nil {
		return entities.Note{}, err
	}

	log.Info(ctx, msgNoteAdded)
	return note, nil
}

// ListNotes возвращает заметки пользователя в порядке добавления.
func (uc *NoteUseCase) ListNotes(ctx context.Context, username string) ([]entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListNotes), zap.String("username", username))
	log.Debug(ctx, msgListingNotes)

	if username == "" {
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, entities.ErrMissingFields)
	}

	doc, err := uc.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}

	user := doc.FindUser(username)
	if user == nil {
		log.Debug(ctx, msgUserMissing)
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, entities.ErrUserNotFound)
	}

	return user.Notes, nil
}

// EditNote заменяет текст первой заметки, совпавшей со старым текстом.
// Идентификатор и отметка времени заметки сохраняются.
func (uc *NoteUseCase) EditNote(ctx context.Context, username, oldText, newText string) (entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodEditNote), zap.String("username", username))
	log.Debug(ctx, msgEditingNote)

	if username == "" || oldText == "" || newText == "" {
		return entities.Note{}, fmt.Errorf("%s: %w", errCtxEditingNote, entities.ErrMissingFields)
	}

	var edited entities.Note

	err := uc.storage.Update(ctx, func(doc *entities.Document) error {
		user := doc.FindUser(username)
		if user == nil {
			log.Debug(ctx, msgUserMissing)
			return fmt.Errorf("%s: %w", errCtxEditingNote, entities.ErrUserNotFound)
		}

		idx := user.FindNoteByText(oldText)
		if idx < 0 {
			log.Debug(ctx, msgNoteMissing)
			return fmt.Errorf("%s: %w", errCtxEditingNote, entities.ErrNoteNotFound)
		}

		user.Notes[idx].Text = newText
		edited = user.Notes[idx]
		return nil
	})
	if err != nil {
		return entities.Note{}, err
	}

	log.Info(ctx, msgNoteEdited)
	return edited, nil
}

// DeleteNote удаляет первую заметку, совпавшую с текстом.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, username, text string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteNote), zap.String("username", username))
	log.Debug(ctx, msgDeletingNote)

	if username == "" || text == "" {
		return fmt.Errorf("%s: %w", errCtxDeletingNote, entities.ErrMissingFields)
	}

	err := uc.storage.Update(ctx, func(doc *entities.Document) error {
		user := doc.FindUser(username)
		if user == nil {
			log.Debug(ctx, msgUserMissing)
			return fmt.Errorf("%s: %w", errCtxDeletingNote, entities.ErrUserNotFound)
		}

		idx := user.FindNoteByText(text)
		if idx < 0 {
			log.Debug(ctx, msgNoteMissing)
			return fmt.Errorf("%s: %w", errCtxDeletingNote, entities.ErrNoteNotFound)
		}

		user.Notes = append(user.Notes[:idx], user.Notes[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	log.Info(ctx, msgNoteDeleted)
	return nil
}
