package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"txwatch/internal/repository"
	"txwatch/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const TokenTTL = 24 * time.Hour

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrOperatorNotFound error = errors.New("operator not found")
var ErrInvalidCredentials error = errors.New("username and password are required")

type AuthMessage struct {
	Username string
	Password string
}

// Authenticator checks operator credentials and issues API tokens.
type Authenticator struct {
	logs      *zap.SugaredLogger
	repo      OperatorRepository
	jwtIssuer JWTIssuer
}

func NewAuthenticator(logger *zap.SugaredLogger, repo OperatorRepository, issuer JWTIssuer) *Authenticator {
	return &Authenticator{
		logs:      logger,
		repo:      repo,
		jwtIssuer: issuer,
	}
}

func (a *Authenticator) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	operator, err := a.repo.GetOperator(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrOperatorNotFound) {
			return "", ErrOperatorNotFound
		}
		return "", fmt.Errorf("get operator: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	signed, err := a.jwtIssuer.Issue(jwt.TokenInfo{
		Operator:   operator.Username,
		Subject:    operator.ID,
		Expiration: TokenTTL,
	})
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	a.logs.Infow("operator authenticated", "operator", operator.Username)
	return signed, nil
}

// CreateOperator stores the operator with a bcrypt hash of password,
// replacing the password of an existing operator with the same name.
func (a *Authenticator) CreateOperator(ctx context.Context, username, password string) (repository.Operator, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return repository.Operator{}, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return repository.Operator{}, fmt.Errorf("hash password: %w", err)
	}

	operator, err := a.repo.SaveOperator(ctx, username, string(hash))
	if err != nil {
		return repository.Operator{}, fmt.Errorf("save operator: %w", err)
	}

	a.logs.Infow("operator saved", "operator", operator.Username, "id", operator.ID)
	return operator, nil
}
