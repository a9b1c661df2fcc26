package app_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/adapters/filestore"
	"notekeeper/internal/app"
	"notekeeper/internal/domain/entities"
)

func notesOf(t *testing.T, store *filestore.Memory, username string) []entities.Note {
	t.Helper()
	doc, err := store.Load(context.Background())
	require.NoError(t, err)
	user := doc.FindUser(username)
	require.NotNil(t, user)
	return user.Notes
}

func TestAddNote(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store := filestore.NewMemory()
		seedUser(t, store, entities.User{Username: "ana", Notes: []entities.Note{}})

		uc := app.NewNoteUseCase(store)

		note, err := uc.AddNote(ctx, "ana", "buy milk")
		require.NoError(t, err)
		assert.Equal(t, "buy milk", note.Text)
		assert.NotEmpty(t, note.ID)
		assert.NotEmpty(t, note.Timestamp)

		notes := notesOf(t, store, "ana")
		require.Len(t, notes, 1)
		assert.Equal(t, note, notes[0])
	})

	t.Run("sequential adds preserve insertion order", func(t *testing.T) {
		store := filestore.NewMemory()
		seedUser(t, store, entities.User{Username: "ana", Notes: []entities.Note{}})

		uc := app.NewNoteUseCase(store)

		const n = 10
		for i := 0; i < n; i++ {
			_, err := uc.AddNote(ctx, "ana", fmt.Sprintf("note %d", i))
			require.NoError(t, err)
		}

		notes := notesOf(t, store, "ana")
		require.Len(t, notes, n)
		for i := 0; i < n; i++ {
			assert.Equal(t, fmt.Sprintf("note %d", i), notes[i].Text)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		store := filestore.NewMemory()
		uc := app.NewNoteUseCase(store)

		_, err := uc.AddNote(ctx, "ghost", "buy milk")
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := app.NewNoteUseCase(filestore.NewMemory())

		_, err := uc.AddNote(ctx, "", "buy milk")
		assert.ErrorIs(t, err, entities.ErrMissingFields)

		_, err = uc.AddNote(ctx, "ana", "")
		assert.ErrorIs(t, err, entities.ErrMissingFields)
	})
}

func TestListNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("returns notes in order", func(t *testing.T) {
		store := filestore.NewMemory()
		seedUser(t, store, entities.User{Username: "ana", Notes: []entities.Note{
			{ID: "1", Text: "first"},
			{ID: "2", Text: "second"},
		}})

		uc := app.NewNoteUseCase(store)

		notes, err := uc.ListNotes(ctx, "ana")
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "first", notes[0].Text)
		assert.Equal(t, "second", notes[1].Text)
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := app.NewNoteUseCase(filestore.NewMemory())

		_, err := uc.ListNotes(ctx, "ghost")
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("missing username", func(t *testing.T) {
		uc := app.NewNoteUseCase(filestore.NewMemory())

		_, err := uc.ListNotes(ctx, "")
		assert.ErrorIs(t, err, entities.ErrMissingFields)
	})
}

func TestEditNote(t *testing.T) {
	ctx := context.Background()

	t.Run("edits first match and keeps identity", func(t *testing.T) {
		store := filestore.NewMemory()
		seedUser(t, store, entities.User{Username: "ana", Notes: []entities.Note{
			{ID: "1", Text: "dup", Timestamp: "2024-01-01T00:00:00Z"},
			{ID: "2", Text: "dup", Timestamp: "2024-01-02T00:00:00Z"},
		}})

		uc := app.NewNoteUseCase(store)

		edited, err := uc.EditNote(ctx, "ana", "dup", "changed")
		require.NoError(t, err)
		assert.Equal(t, "changed", edited.Text)
		assert.Equal(t, "1", edited.ID)
		assert.Equal(t, "2024-01-01T00:00:00Z", edited.Timestamp)

		notes := notesOf(t, store, "ana")
		require.Len(t, notes, 2)
		assert.Equal(t, "changed", notes[0].Text)
		assert.Equal(t, "dup", notes[1].Text, "second duplicate must stay untouched")
	})

	t.Run("missing old note leaves list unchanged", func(t *testing.T) {
		store := filestore.NewMemory()
		seedUser(t, store, entities.User{Username: "ana", Notes: []entities.Note{
			{ID: "1", Text: "keep me"},
		}})

		uc := app.NewNoteUseCase(store)

		_, err := uc.EditNote(ctx, "ana", "missing", "changed")
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)

		notes := notesOf(t, store, "ana")
		require.Len(t, notes, 1)
		assert.Equal(t, "keep me", notes[0].Text)
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := app.NewNoteUseCase(filestore.NewMemory())

		_, err := uc.EditNote(ctx, "ghost", "old", "new")
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := app.NewNoteUseCase(filestore.NewMemory())

		for _, args := range [][3]string{
			{"", "old", "new"},
			{"ana", "", "new"},
			{"ana", "old", ""},
		} {
			_, err := uc.EditNote(ctx, args[0], args[1], args[2])
			assert.ErrorIs(t, err, entities.ErrMissingFields)
		}
	})
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()

	t.Run("removes exactly the first match", func(t *testing.T) {
		store := filestore.NewMemory()
		seedUser(t, store, entities.User{Username: "ana", Notes: []entities.Note{
			{ID: "1", Text: "dup"},
			{ID: "2", Text: "other"},
			{ID: "3", Text: "dup"},
		}})

		uc := app.NewNoteUseCase(store)

		require.NoError(t, uc.DeleteNote(ctx, "ana", "dup"))

		notes := notesOf(t, store, "ana")
		require.Len(t, notes, 2)
		assert.Equal(t, "2", notes[0].ID)
		assert.Equal(t, "3", notes[1].ID, "second duplicate survives the delete")
	})

	t.Run("missing note leaves list unchanged", func(t *testing.T) {
		store := filestore.NewMemory()
		seedUser(t, store, entities.User{Username: "ana", Notes: []entities.Note{
			{ID: "1", Text: "keep me"},
		}})

		uc := app.NewNoteUseCase(store)

		err := uc.DeleteNote(ctx, "ana", "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
		assert.Len(t, notesOf(t, store, "ana"), 1)
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := app.NewNoteUseCase(filestore.NewMemory())

		err := uc.DeleteNote(ctx, "ghost", "note")
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := app.NewNoteUseCase(filestore.NewMemory())

		assert.ErrorIs(t, uc.DeleteNote(ctx, "", "note"), entities.ErrMissingFields)
		assert.ErrorIs(t, uc.DeleteNote(ctx, "ana", ""), entities.ErrMissingFields)
	})
}
