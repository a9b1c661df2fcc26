// Package notes содержит HTTP обработчики операций над заметками.
package notes

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeeper/internal/app/dto"
	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/api"
	"notekeeper/pkg/logger"
)

// Константы для логирования и сообщений ответов.
const (
	LogHandlerAddNote    = "notes handler: add note"
	LogHandlerListNotes  = "notes handler: list notes"
	LogHandlerEditNote   = "notes handler: edit note"
	LogHandlerDeleteNote = "notes handler: delete note"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"

	MsgUserAndNoteRequired = "User and note are required"
	MsgUserRequired        = "User is required"
	MsgEditFieldsRequired  = "User, old note, and new note are required"
	MsgUserNotFound        = "User not found"
	MsgNoteNotFound        = "Note not found"
	MsgOldNoteNotFound     = "Old note not found"
	MsgNoteAdded           = "Note added successfully"
	MsgNoteUpdated         = "Note updated successfully"
	MsgNoteDeleted         = "Note deleted successfully"
	MsgInternalError       = "Internal server error"
)

// Вспомогательная функция для отправки ошибки HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"message": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики заметок.
type Handler struct {
	noteService api.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteService api.NoteUseCase) *Handler {
	return &Handler{
		noteService: noteService,
	}
}

// AddNote обрабатывает запрос на добавление заметки.
func (h *Handler) AddNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerAddNote)

	var req dto.AddNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgUserAndNoteRequired)
	}

	if req.User == "" || req.Note == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgUserAndNoteRequired)
	}

	note, err := h.noteService.AddNote(requestCtx, req.User, req.Note)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		switch {
		case errors.Is(err, entities.ErrUserNotFound):
			return sendErrorResponse(ctx, http.StatusNotFound, MsgUserNotFound)
		case errors.Is(err, entities.ErrMissingFields):
			return sendErrorResponse(ctx, http.StatusBadRequest, MsgUserAndNoteRequired)
		default:
			return sendErrorResponse(ctx, http.StatusInternalServerError, MsgInternalError)
		}
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.AddNoteResponse{
		Message: MsgNoteAdded,
		Note:    note.Text,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение заметок пользователя.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListNotes)

	username := ctx.Params("user")
	if username == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgUserRequired)
	}

	notes, err := h.noteService.ListNotes(requestCtx, username)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		switch {
		case errors.Is(err, entities.ErrUserNotFound):
			return sendErrorResponse(ctx, http.StatusNotFound, MsgUserNotFound)
		case errors.Is(err, entities.ErrMissingFields):
			return sendErrorResponse(ctx, http.StatusBadRequest, MsgUserRequired)
		default:
			return sendErrorResponse(ctx, http.StatusInternalServerError, MsgInternalError)
		}
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NotesResponse{Notes: notes}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// EditNote обрабатывает запрос на изменение заметки.
func (h *Handler) EditNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerEditNote)

	var req dto.EditNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgEditFieldsRequired)
	}

	if req.User == "" || req.OldNote == "" || req.NewNote == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgEditFieldsRequired)
	}

	note, err := h.noteService.EditNote(requestCtx, req.User, req.OldNote, req.NewNote)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		switch {
		case errors.Is(err, entities.ErrUserNotFound):
			return sendErrorResponse(ctx, http.StatusNotFound, MsgUserNotFound)
		case errors.Is(err, entities.ErrNoteNotFound):
			return sendErrorResponse(ctx, http.StatusNotFound, MsgOldNoteNotFound)
		case errors.Is(err, entities.ErrMissingFields):
			return sendErrorResponse(ctx, http.StatusBadRequest, MsgEditFieldsRequired)
		default:
			return sendErrorResponse(ctx, http.StatusInternalServerError, MsgInternalError)
		}
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.EditNoteResponse{
		Message: MsgNoteUpdated,
		Note:    note.Text,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeleteNote)

	var req dto.DeleteNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgUserAndNoteRequired)
	}

	if req.User == "" || req.Note == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgUserAndNoteRequired)
	}

	if err := h.noteService.DeleteNote(requestCtx, req.User, req.Note); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		switch {
		case errors.Is(err, entities.ErrUserNotFound):
			return sendErrorResponse(ctx, http.StatusNotFound, MsgUserNotFound)
		case errors.Is(err, entities.ErrNoteNotFound):
			return sendErrorResponse(ctx, http.StatusNotFound, MsgNoteNotFound)
		case errors.Is(err, entities.ErrMissingFields):
			return sendErrorResponse(ctx, http.StatusBadRequest, MsgUserAndNoteRequired)
		default:
			return sendErrorResponse(ctx, http.StatusInternalServerError, MsgInternalError)
		}
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": MsgNoteDeleted,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
