package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/octofit-tracker/internal/domain/team"
	"github.com/riskibarqy/octofit-tracker/internal/platform/logging"
)

type TeamInput struct {
	Name        string
	Description string
	Captain     string
	Members     []string
	TotalPoints int
}

type TeamService struct {
	repo   team.Repository
	logger *logging.Logger
	now    func() time.Time
}

func NewTeamService(repo team.Repository, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *TeamService) Create(ctx context.Context, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	item := buildTeam(input)
	if err := item.Validate(); err != nil {
		return team.Team{}, invalidInput(err)
	}
	item.CreatedAt = s.now().UTC()

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.WarnContext(ctx, "create team failed", "team", item.Name, "error", err)
		return team.Team{}, storeError("create team", err)
	}

	return created, nil
}

func (s *TeamService) Get(ctx context.Context, id string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, notFound("team", id)
	}

	return item, nil
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

func (s *TeamService) Update(ctx context.Context, id string, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	current, err := s.Get(ctx, id)
	if err != nil {
		return team.Team{}, err
	}

	item := buildTeam(input)
	if err := item.Validate(); err != nil {
		return team.Team{}, invalidInput(err)
	}
	item.ID = current.ID
	item.CreatedAt = current.CreatedAt

	return s.save(ctx, item)
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if !deleted {
		return notFound("team", id)
	}

	return nil
}

// AddMember appends username to the team. Adding an existing member is rejected
// and leaves the list unchanged.
func (s *TeamService) AddMember(ctx context.Context, teamID, username string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AddMember")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" {
		return team.Team{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	current, err := s.Get(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}
	if current.HasMember(username) {
		return team.Team{}, fmt.Errorf("%w: user %s is already a member", ErrInvalidInput, username)
	}

	return s.save(ctx, current.WithMember(username))
}

// RemoveMember drops username from the team. Removing a non-member is rejected.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, username string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.RemoveMember")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" {
		return team.Team{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	current, err := s.Get(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}
	if !current.HasMember(username) {
		return team.Team{}, fmt.Errorf("%w: user %s is not a member", ErrInvalidInput, username)
	}

	return s.save(ctx, current.WithoutMember(username))
}

func (s *TeamService) save(ctx context.Context, item team.Team) (team.Team, error) {
	updated, exists, err := s.repo.Update(ctx, item)
	if err != nil {
		s.logger.WarnContext(ctx, "update team failed", "team_id", item.ID, "error", err)
		return team.Team{}, storeError("update team", err)
	}
	if !exists {
		return team.Team{}, notFound("team", item.ID)
	}

	return updated, nil
}

func buildTeam(input TeamInput) team.Team {
	members := make([]string, 0, len(input.Members))
	for _, m := range input.Members {
		members = append(members, strings.TrimSpace(m))
	}
	return team.Team{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Captain:     strings.TrimSpace(input.Captain),
		Members:     members,
		TotalPoints: input.TotalPoints,
	}
}
