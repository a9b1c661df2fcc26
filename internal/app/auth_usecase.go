// Package app реализует бизнес-логику сервиса заметок.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/repositories"
	svc "notekeeper/internal/ports/services"
	"notekeeper/pkg/logger"
)

const (
	methodRegister  = "Register"
	methodLogin     = "Login"
	methodListUsers = "ListUsers"

	msgStartRegistration = "starting user registration"
	msgMissingFields     = "missing required fields"
	msgUserExists        = "user with this name already exists"
	msgUserRegistered    = "user registered successfully"
	msgLoginAttempt      = "login attempt"
	msgLoginNonExistent  = "login attempt with non-existent user"
	msgInvalidPassword   = "invalid password provided"
	msgUserLoggedIn      = "user logged in successfully"
	msgListingUsers      = "listing users"

	msgErrHashPassword      = "failed to hash password"
	msgErrPersistUser       = "failed to persist new user"
	msgErrLoadUsers         = "failed to load users"
	msgErrVerifyingPassword = "error verifying password"
	msgErrGenerateToken     = "failed to generate access token"

	errCtxValidatingInput   = "validating input"
	errCtxCheckingUser      = "checking existing user"
	errCtxHashingPassword   = "hashing password"
	errCtxCreatingUser      = "creating user"
	errCtxFindingUser       = "finding user"
	errCtxVerifyingPassword = "verifying password"
	errCtxGeneratingToken   = "generating token"
	errCtxListingUsers      = "listing users"
)

// AuthUseCase реализует регистрацию, вход и список пользователей.
type AuthUseCase struct {
	storage      repositories.Storage
	passwordSvc  svc.PasswordService
	tokenSvc     svc.TokenService
	exposeHashes bool
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	storage repositories.Storage,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	exposeHashes bool,
) *AuthUseCase {
	return &AuthUseCase{
		storage:      storage,
		passwordSvc:  passwordSvc,
		tokenSvc:     tokenSvc,
		exposeHashes: exposeHashes,
	}
}

// Register создает нового пользователя с предоставленными учетными данными.
func (a *AuthUseCase) Register(ctx context.Context, name, email, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", name))
	log.Debug(ctx, msgStartRegistration)

	if name == "" || email == "" || password == "" {
		log.Debug(ctx, msgMissingFields)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingInput, entities.ErrMissingFields)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := entities.User{
		Username:     name,
		Email:        email,
		PasswordHash: hashedPassword,
		Notes:        []entities.Note{},
	}

	err = a.storage.Update(ctx, func(doc *entities.Document) error {
		if doc.HasUser(name) {
			log.Debug(ctx, msgUserExists)
			return fmt.Errorf("%s: %w", errCtxCheckingUser, entities.ErrUserAlreadyExists)
		}
		doc.Users = append(doc.Users, newUser)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered)
	return &newUser, nil
}

// Login проверяет учетные данные и возвращает токен доступа.
func (a *AuthUseCase) Login(ctx context.Context, name, password string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", name))
	log.Debug(ctx, msgLoginAttempt)

	if name == "" || password == "" {
		log.Debug(ctx, msgMissingFields)
		return "", fmt.Errorf("%s: %w", errCtxValidatingInput, entities.ErrMissingFields)
	}

	doc, err := a.storage.Load(ctx)
	if err != nil {
		log.Error(ctx, msgErrLoadUsers, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	user := doc.FindUser(name)
	if user == nil {
		log.Debug(ctx, msgLoginNonExistent)
		return "", fmt.Errorf("%s: %w", errCtxFindingUser, entities.ErrUserNotFound)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPassword)
		return "", fmt.Errorf("%s: %w", errCtxVerifyingPassword, entities.ErrInvalidCredentials)
	}

	token, _, err := a.tokenSvc.GenerateAccessToken(ctx, user.Username)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	log.Info(ctx, msgUserLoggedIn)
	return token, nil
}

// ListUsers возвращает всех пользователей. Хэши паролей исключаются из
// ответа, если сервис не сконфигурирован на их раскрытие.
func (a *AuthUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListUsers))
	log.Debug(ctx, msgListingUsers)

	doc, err := a.storage.Load(ctx)
	if err != nil {
		log.Error(ctx, msgErrLoadUsers, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
	}

	if a.exposeHashes {
		return doc.Users, nil
	}

	users := make([]entities.User, 0, len(doc.Users))
	for i := range doc.Users {
		users = append(users, doc.Users[i].Redacted())
	}
	return users, nil
}
