package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/octofit-tracker/internal/domain/user"
	"github.com/riskibarqy/octofit-tracker/internal/platform/logging"
	"github.com/riskibarqy/octofit-tracker/internal/platform/password"
)

type UserInput struct {
	Email     string
	Username  string
	Password  string
	FullName  string
	Team      *string
	AvatarURL *string
}

type UserService struct {
	repo   user.Repository
	hasher password.Hasher
	logger *logging.Logger
	now    func() time.Time
}

func NewUserService(repo user.Repository, hasher password.Hasher, logger *logging.Logger) *UserService {
	if logger == nil {
		logger = logging.Default()
	}
	return &UserService{
		repo:   repo,
		hasher: hasher,
		logger: logger,
		now:    time.Now,
	}
}

func (s *UserService) Create(ctx context.Context, input UserInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Create")
	defer span.End()

	item, err := s.buildUser(input)
	if err != nil {
		return user.User{}, err
	}
	item.CreatedAt = s.now().UTC()

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.WarnContext(ctx, "create user failed", "username", item.Username, "error", err)
		return user.User{}, storeError("create user", err)
	}

	return created, nil
}

func (s *UserService) Get(ctx context.Context, id string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Get")
	defer span.End()

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, notFound("user", id)
	}

	return item, nil
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.List")
	defer span.End()

	items, err := s.repo.List(ctx, user.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return items, nil
}

func (s *UserService) ListByTeam(ctx context.Context, teamName string) ([]user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.ListByTeam")
	defer span.End()

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return nil, requiredParam("team")
	}

	items, err := s.repo.List(ctx, user.Filter{Team: teamName})
	if err != nil {
		return nil, fmt.Errorf("list users by team: %w", err)
	}

	return items, nil
}

func (s *UserService) Update(ctx context.Context, id string, input UserInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Update")
	defer span.End()

	current, err := s.Get(ctx, id)
	if err != nil {
		return user.User{}, err
	}

	item, err := s.buildUser(input)
	if err != nil {
		return user.User{}, err
	}
	item.ID = current.ID
	item.CreatedAt = current.CreatedAt

	updated, exists, err := s.repo.Update(ctx, item)
	if err != nil {
		s.logger.WarnContext(ctx, "update user failed", "user_id", id, "error", err)
		return user.User{}, storeError("update user", err)
	}
	if !exists {
		return user.User{}, notFound("user", id)
	}

	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		return notFound("user", id)
	}

	return nil
}

// buildUser validates input and replaces the plain password with its hash.
func (s *UserService) buildUser(input UserInput) (user.User, error) {
	item := user.User{
		Email:        strings.TrimSpace(input.Email),
		Username:     strings.TrimSpace(input.Username),
		PasswordHash: input.Password,
		FullName:     strings.TrimSpace(input.FullName),
		Team:         input.Team,
		AvatarURL:    input.AvatarURL,
	}
	if err := item.Validate(); err != nil {
		return user.User{}, invalidInput(err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return user.User{}, fmt.Errorf("hash user password: %w", err)
	}
	item.PasswordHash = hash

	return item, nil
}
