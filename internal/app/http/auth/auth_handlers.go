// Package auth содержит HTTP обработчики регистрации и аутентификации.
package auth

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
	LogHandlerSignup    = "auth handler: signup"
	LogHandlerLogin     = "auth handler: login"
	LogHandlerListUsers = "auth handler: list users"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"

	MsgMissingFields      = "Missing required fields"
	MsgLoginFieldsMissing = "Name and password are required"
	MsgUserExists         = "User already exists"
	MsgUserDoesNotExist   = "User does not exist"
	MsgIncorrectPassword  = "Incorrect password"
	MsgUserRegistered     = "User registered successfully"
	MsgLoginSuccessful    = "Login successful"
	MsgInternalError      = "Internal server error"
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

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authService api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authService api.AuthUseCase) *Handler {
	return &Handler{
		authService: authService,
	}
}

// Signup обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Signup(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSignup)

	var req dto.SignupRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgMissingFields)
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgMissingFields)
	}

	user, err := h.authService.Register(requestCtx, req.Name, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		switch {
		case errors.Is(err, entities.ErrUserAlreadyExists):
			return sendErrorResponse(ctx, http.StatusConflict, MsgUserExists)
		case errors.Is(err, entities.ErrMissingFields):
			return sendErrorResponse(ctx, http.StatusBadRequest, MsgMissingFields)
		default:
			return sendErrorResponse(ctx, http.StatusInternalServerError, MsgInternalError)
		}
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.SignupResponse{
		Message: MsgUserRegistered,
		User:    *user,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgLoginFieldsMissing)
	}

	if req.Name == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgLoginFieldsMissing)
	}

	token, err := h.authService.Login(requestCtx, req.Name, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		switch {
		case errors.Is(err, entities.ErrUserNotFound):
			return sendErrorResponse(ctx, http.StatusNotFound, MsgUserDoesNotExist)
		case errors.Is(err, entities.ErrInvalidCredentials):
			return sendErrorResponse(ctx, http.StatusUnauthorized, MsgIncorrectPassword)
		case errors.Is(err, entities.ErrMissingFields):
			return sendErrorResponse(ctx, http.StatusBadRequest, MsgLoginFieldsMissing)
		default:
			return sendErrorResponse(ctx, http.StatusInternalServerError, MsgInternalError)
		}
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.LoginResponse{
		AccessToken: token,
		Username:    req.Name,
		Message:     MsgLoginSuccessful,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListUsers обрабатывает запрос на получение списка пользователей.
func (h *Handler) ListUsers(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListUsers)

	users, err := h.authService.ListUsers(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, MsgInternalError)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.UsersResponse{Users: users}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
