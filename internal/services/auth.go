package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/photostudio/internal/common"
	"github.com/dmitrijs2005/photostudio/internal/cryptox"
	"github.com/dmitrijs2005/photostudio/internal/logging"
	"github.com/dmitrijs2005/photostudio/internal/models"
	"github.com/dmitrijs2005/photostudio/internal/plans"
	"github.com/dmitrijs2005/photostudio/internal/repositories/directory"
)

// AuthService coordinates sign-in, sign-up, sign-out, and plan switching.
// It is the only entry point for identity changes: on success it writes the
// full record to the directory and republishes the session view.
type AuthService struct {
	users     directory.Repository
	projector *SessionProjector
	log       logging.Logger
	validate  *validator.Validate
}

// NewAuthService constructs the coordinator over the given directory and
// projector.
func NewAuthService(users directory.Repository, projector *SessionProjector, log logging.Logger) *AuthService {
	return &AuthService{
		users:     users,
		projector: projector,
		log:       log,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

type signUpRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// SignIn verifies the credential for email and publishes a fresh session
// view. Fails with common.ErrNotFound for unknown identifiers and
// common.ErrInvalidCredential when the password does not match.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.SessionUser, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", email, common.ErrNotFound)
	}

	if !cryptox.VerifyCredential([]byte(password), user.Salt, user.Verifier) {
		return nil, common.ErrInvalidCredential
	}

	view, err := s.projector.Publish(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "signed in", "email", email)
	return view, nil
}

// SignUp creates a new record on the lowest tier with zeroed usage and an
// empty gallery, then behaves as SignIn. Fails with common.ErrAlreadyExists
// when the identifier is taken; the directory is left unchanged in that case.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (*models.SessionUser, error) {
	req := signUpRequest{Name: name, Email: email, Password: password}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user %s: %w", email, common.ErrAlreadyExists)
	}

	salt := cryptox.NewSalt()
	user := &models.User{
		Email:    email,
		Name:     name,
		Salt:     salt,
		Verifier: cryptox.MakeVerifier([]byte(password), salt),
		Picture:  models.AvatarURL(name),
		Plan:     plans.TierFree,
		Gallery:  []models.GalleryItem{},
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	s.log.Info(ctx, "account created", "email", email)

	return s.SignIn(ctx, email, password)
}

// QuickDemoAccess signs in the seeded demo account. It can only fail if the
// directory was never seeded.
func (s *AuthService) QuickDemoAccess(ctx context.Context) (*models.SessionUser, error) {
	return s.SignIn(ctx, directory.DemoEmail, directory.DemoPassword)
}

// SignOut clears the session slot. The durable record persists for future
// sign-in.
func (s *AuthService) SignOut(ctx context.Context) error {
	if err := s.projector.Clear(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "signed out")
	return nil
}

// SwitchPlan moves the active user to tier and resets both usage counters,
// treating the switch as a new billing period. A silent no-op when signed out.
func (s *AuthService) SwitchPlan(ctx context.Context, tier plans.Tier) (*models.SessionUser, error) {
	current := s.projector.Current()
	if current == nil {
		return nil, nil
	}
	if !plans.Valid(tier) {
		return nil, fmt.Errorf("plan tier %q: %w", tier, common.ErrInvalidInput)
	}

	user, err := s.users.FindByEmail(ctx, current.Email)
	if err != nil {
		return nil, fmt.Errorf("switch plan: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", current.Email, common.ErrNotFound)
	}

	user.Plan = tier
	user.ImagesUsed = 0
	user.VideoSecondsUsed = 0
	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("switch plan: %w", err)
	}

	view, err := s.projector.Publish(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "plan switched", "email", user.Email, "plan", tier)
	return view, nil
}
