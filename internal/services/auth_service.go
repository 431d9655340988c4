package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"hrnexus_backend/internal/apperrors"
	"hrnexus_backend/internal/config"
	"hrnexus_backend/internal/dto"
	"hrnexus_backend/internal/logger"
	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/repositories"
	"hrnexus_backend/internal/session"
)

// Demo admin seeded for quick evaluation logins.
const (
	DemoAdminID    = "demo-admin"
	DemoAdminName  = "Demo Admin"
	DemoAdminEmail = "admin@technexus.com"
)

// AuthService handles registration, login and logout for both roles.
type AuthService interface {
	RegisterCandidate(ctx context.Context, req *dto.RegisterCandidateRequest) (*models.User, error)
	LoginCandidate(ctx context.Context, req *dto.LoginCandidateRequest) (*models.User, error)
	RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*models.User, error)
	LoginAdmin(ctx context.Context, req *dto.LoginAdminRequest) (*models.User, error)
	QuickLoginDemo(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	cfg        config.AdminConfig
	users      repositories.UserRepository
	candidates repositories.CandidateRepository
	activity   repositories.ActivityRepository
	sessions   *session.Manager
}

func NewAuthService(
	cfg config.AdminConfig,
	users repositories.UserRepository,
	candidates repositories.CandidateRepository,
	activity repositories.ActivityRepository,
	sessions *session.Manager,
) AuthService {
	return &authService{
		cfg:        cfg,
		users:      users,
		candidates: candidates,
		activity:   activity,
		sessions:   sessions,
	}
}

// RegisterCandidate creates the account and its pipeline profile under
// the same id, signs the candidate in and records the event. Passwords
// are accepted for interface compatibility and never stored.
func (s *authService) RegisterCandidate(ctx context.Context, req *dto.RegisterCandidateRequest) (*models.User, error) {
	user := &models.User{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		Role:        models.RoleCandidate,
		Phone:       req.Phone,
		CountryCode: req.CountryCode,
		CreatedAt:   models.NowMillis(),
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	profile := &models.CandidateProfile{
		User:   *user,
		Status: models.CandidateStatusPending,
	}
	profile.Touch()

	if err := s.candidates.Save(ctx, profile); err != nil {
		return nil, err
	}

	if err := s.sessions.Login(ctx, user); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, user.ID, models.ActionRegister)
	logger.CtxInfo(ctx, "candidate registered", "user_id", user.ID)
	return user, nil
}

// LoginCandidate signs in by email lookup. The submitted password is
// not compared against anything: an account matching the email is all
// it takes, an unknown email fails.
func (s *authService) LoginCandidate(ctx context.Context, req *dto.LoginCandidateRequest) (*models.User, error) {
	profile, err := s.candidates.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	user := profile.User
	if err := s.sessions.Login(ctx, &user); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, user.ID, models.ActionLogin)
	return &user, nil
}

// RegisterAdmin creates an HR admin account behind the master access
// code and signs it in.
func (s *authService) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*models.User, error) {
	if !strings.EqualFold(req.AccessCode, s.cfg.AccessCode) {
		return nil, apperrors.ErrInvalidAccessCode
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      models.RoleHRAdmin,
		CreatedAt: models.NowMillis(),
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	if err := s.sessions.Login(ctx, user); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, user.ID, models.ActionRegister)
	logger.CtxInfo(ctx, "admin registered", "user_id", user.ID)
	return user, nil
}

// LoginAdmin signs in an existing HR admin by email. The account must
// carry the HR_ADMIN role; candidates cannot enter through this door.
func (s *authService) LoginAdmin(ctx context.Context, req *dto.LoginAdminRequest) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != models.RoleHRAdmin {
		return nil, apperrors.ErrAdminNotFound
	}

	if err := s.sessions.Login(ctx, user); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, user.ID, models.ActionLogin)
	return user, nil
}

// QuickLoginDemo signs in the built-in demo admin, seeding the account
// on first use.
func (s *authService) QuickLoginDemo(ctx context.Context) (*models.User, error) {
	user, err := s.users.GetByID(ctx, DemoAdminID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &models.User{
			ID:        DemoAdminID,
			Name:      DemoAdminName,
			Email:     DemoAdminEmail,
			Role:      models.RoleHRAdmin,
			CreatedAt: models.NowMillis(),
		}
		if err := s.users.Save(ctx, user); err != nil {
			return nil, err
		}
		logger.CtxInfo(ctx, "demo admin seeded", "user_id", user.ID)
	}

	if err := s.sessions.Login(ctx, user); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, user.ID, models.ActionLogin)
	return user, nil
}

// Logout clears the session and records the event when someone was
// signed in.
func (s *authService) Logout(ctx context.Context) error {
	current := s.sessions.Current()
	if err := s.sessions.Logout(ctx); err != nil {
		return err
	}
	if current != nil {
		s.recordActivity(ctx, current.ID, models.ActionLogout)
	}
	return nil
}

// recordActivity appends an audit entry. Audit failures are logged and
// swallowed, they never fail the user-facing operation.
func (s *authService) recordActivity(ctx context.Context, userID, action string) {
	entry := &models.ActivityLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		Action:    action,
		Timestamp: models.NowMillis(),
	}
	if err := s.activity.Save(ctx, entry); err != nil {
		logger.CtxWithError(ctx, "failed to record activity", err, "action", action)
	}
}
