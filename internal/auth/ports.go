package auth

import (
	"context"

	"txwatch/internal/repository"
	"txwatch/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name OperatorRepository . OperatorRepository
type OperatorRepository interface {
	GetOperator(ctx context.Context, username string) (repository.Operator, error)
	SaveOperator(ctx context.Context, username, passwordHash string) (repository.Operator, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Issue(data jwt.TokenInfo) (string, error)
}
