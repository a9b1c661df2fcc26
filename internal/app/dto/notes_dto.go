package dto

import "notekeeper/internal/domain/entities"

// AddNoteRequest содержит данные для создания заметки.
type AddNoteRequest struct {
	User string `json:"user"`
	Note string `json:"note"`
}

// AddNoteResponse подтверждает создание заметки, возвращая ее текст.
type AddNoteResponse struct {
	Message string `json:"message"`
	Note    string `json:"note"`
}

// NotesResponse содержит заметки пользователя в порядке добавления.
type NotesResponse struct {
	Notes []entities.Note `json:"notes"`
}

// EditNoteRequest содержит данные для изменения заметки.
// Заметка адресуется точным совпадением старого текста.
type EditNoteRequest struct {
	User    string `json:"user"`
	OldNote string `json:"oldNote"`
	NewNote string `json:"newNote"`
}

// EditNoteResponse подтверждает изменение заметки, возвращая новый текст.
type EditNoteResponse struct {
	Message string `json:"message"`
	Note    string `json:"note"`
}

// DeleteNoteRequest содержит данные для удаления заметки.
type DeleteNoteRequest struct {
	User string `json:"user"`
	Note string `json:"note"`
}
