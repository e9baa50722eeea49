package auth

import (
	"context"

	"studiodesk/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, username string, roles []string, departmentIDs []int64, clientID *int64) (string, error)
}
