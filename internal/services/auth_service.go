package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Likhithanimmalapudi/Swachatha-SVECW/internal/models"
)

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// AuthService handles signup and login for both account classes. Users and
// admins are disjoint namespaces backed by separate repositories; the same
// username may exist in both.
type AuthService struct {
	users       AccountRepository
	admins      AccountRepository
	adminDomain string
}

func NewAuthService(users, admins AccountRepository, adminDomain string) *AuthService {
	return &AuthService{users: users, admins: admins, adminDomain: adminDomain}
}

func (s *AuthService) SignupUser(ctx context.Context, username, email, password string) error {
	return s.signup(ctx, s.users, username, email, password)
}

func (s *AuthService) SignupAdmin(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("%w: username, email and password are required", models.ErrValidation)
	}
	if !strings.HasSuffix(email, s.adminDomain) {
		return fmt.Errorf("%w: admin email must end with %s", models.ErrValidation, s.adminDomain)
	}
	return s.signup(ctx, s.admins, username, email, password)
}

func (s *AuthService) LoginUser(ctx context.Context, username, password string) error {
	return s.login(ctx, s.users, username, password)
}

func (s *AuthService) LoginAdmin(ctx context.Context, username, password string) error {
	return s.login(ctx, s.admins, username, password)
}

// Email uniqueness is checked before username so the two conflicts surface
// as distinct errors.
func (s *AuthService) signup(ctx context.Context, repo AccountRepository, username, email, password string) error {
	taken, err := repo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return models.ErrEmailTaken
	}

	taken, err = repo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if taken {
		return models.ErrUsernameTaken
	}

	account := &models.Account{
		Username: username,
		Email:    email,
		Password: password,
	}
	if err := account.HashPassword(); err != nil {
		return err
	}

	return repo.Create(ctx, account)
}

// Login is stateless: no token or session is issued on success.
func (s *AuthService) login(ctx context.Context, repo AccountRepository, username, password string) error {
	account, err := repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrInvalidUsername
		}
		return err
	}

	if err := account.ComparePassword(password); err != nil {
		return models.ErrInvalidPassword
	}

	return nil
}
