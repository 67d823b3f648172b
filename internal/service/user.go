package service

import (
	"context"
	"errors"
	"fmt"

	"AuctionHouse/internal/model"
	"AuctionHouse/internal/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrLoginTaken возвращается при попытке регистрации занятого логина.
var ErrLoginTaken = errors.New("login already taken")

// UserService — регистрация и вход участников. Также резолвит логины
// в идентификаторы для проверки владельца ставки движком аукциона.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
func (s *UserService) Register(ctx context.Context, login, password string) (*model.User, error) {
	existing, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup login: %w", err)
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, &model.User{Login: login, Password: string(hash)})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login проверяет пару логин/пароль.
func (s *UserService) Login(ctx context.Context, login, password string) (*model.User, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("lookup login: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	return user, nil
}

// ResolveOwner резолвит логин в id пользователя (контракт auction.OwnerResolver).
func (s *UserService) ResolveOwner(ctx context.Context, login string) (int64, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		return 0, fmt.Errorf("resolve owner %q: %w", login, err)
	}
	return user.ID, nil
}
