package services

import (
	"context"
	"time"
)

// TokenService определяет операции для работы с токенами доступа.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, username string) (string, time.Time, error)

	ValidateAccessToken(ctx context.Context, tokenString string) (string, error)
}
