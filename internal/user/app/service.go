package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/shoping-cart/internal/user/domain"
	"go.uber.org/zap"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	log *zap.Logger
}

func NewService(log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{log: log}
}

// Register creates a user with a fresh cart. Email format and username
// uniqueness are not checked.
func (s *Service) Register(ctx context.Context, username, email string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidInput
	}

	u := domain.NewUser(username, strings.TrimSpace(email))
	s.log.Info("user registered",
		zap.String("username", u.Username),
		zap.String("cart_id", u.Cart.ID),
	)
	return u, nil
}
