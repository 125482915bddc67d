package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-api-boilerplate/internal/domain/entity"
	repo "github.com/oksasatya/go-api-boilerplate/internal/domain/repository"
	"github.com/oksasatya/go-api-boilerplate/internal/domain/valueobject"
	"github.com/oksasatya/go-api-boilerplate/internal/infrastructure/auth"
	"github.com/oksasatya/go-api-boilerplate/pkg/apperr"
	"github.com/oksasatya/go-api-boilerplate/pkg/helpers"
	"github.com/oksasatya/go-api-boilerplate/pkg/validation"
)

// invalidCredentialsMsg is shared by the unknown-email and
// wrong-password paths so neither leaks which half failed.
const invalidCredentialsMsg = "invalid credentials"

const profileCacheTTL = 10 * time.Minute

// EventPublisher pushes domain events to a broker for asynchronous
// consumers (e.g. a welcome-email worker). A nil publisher disables
// publishing.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Service orchestrates the authentication use cases against the user
// repository, password hasher and JWT service. Each call is
// request-scoped; all collaborators are safe for concurrent use.
type Service struct {
	Repo   repo.UserRepository
	Hasher valueobject.PasswordHasher
	JWT    *auth.JWTService
	Logger *logrus.Logger
	Redis  *redis.Client
	Events EventPublisher
}

func NewService(r repo.UserRepository, hasher valueobject.PasswordHasher, jwtSvc *auth.JWTService, logger *logrus.Logger, rdb *redis.Client, events EventPublisher) *Service {
	return &Service{Repo: r, Hasher: hasher, JWT: jwtSvc, Logger: logger, Redis: rdb, Events: events}
}

// PublicUser is the user DTO exposed by the API. It never carries the
// password hash.
type PublicUser struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Role          entity.UserRole      `json:"role"`
	AccountStatus entity.AccountStatus `json:"accountStatus"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// AuthOutput pairs the public user with a freshly issued bearer token.
type AuthOutput struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

func toPublicUser(u *entity.User) PublicUser {
	return PublicUser{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		AccountStatus: u.AccountStatus,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// UserRegisteredEvent is the JSON payload queued for asynchronous
// consumers after a successful registration.
type UserRegisteredEvent struct {
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	At     time.Time `json:"at"`
}

type RegisterInput struct {
	Name          string
	Email         string
	Password      string
	Role          entity.UserRole      // defaults to USER
	AccountStatus entity.AccountStatus // defaults to ACTIVE
}

type registerShape struct {
	Name          string `json:"name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	Role          string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
	AccountStatus string `json:"accountStatus" validate:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED PENDING_VERIFICATION"`
}

// Register creates a user with a hashed password and issues a token.
// Email uniqueness is enforced here, not by storage.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthOutput, error) {
	fields := validation.Struct(registerShape{
		Name:          in.Name,
		Email:         in.Email,
		Password:      in.Password,
		Role:          string(in.Role),
		AccountStatus: string(in.AccountStatus),
	})
	if len(fields) > 0 {
		return nil, apperr.Validation("invalid registration data", fields)
	}
	if in.Role == "" {
		in.Role = entity.RoleUser
	}
	if in.AccountStatus == "" {
		in.AccountStatus = entity.StatusActive
	}

	existing, err := s.Repo.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Domain("email already in use", map[string]any{"email": in.Email})
	}

	pwd, err := valueobject.PasswordFromPlain(in.Password, s.Hasher)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Name:          in.Name,
		Email:         in.Email,
		PasswordHash:  pwd.Hash(),
		Role:          in.Role,
		AccountStatus: in.AccountStatus,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.JWT.Generate(auth.TokenPayload{UserID: u.ID, Email: u.Email, Role: u.Role}, nil)
	if err != nil {
		return nil, err
	}

	s.publishRegistered(ctx, u)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	}
	return &AuthOutput{User: toPublicUser(u), Token: token}, nil
}

type LoginInput struct {
	Email    string
	Password string
}

// Login authenticates credentials and issues a token. The account
// status gate runs before the password check: a correct password
// against a non-ACTIVE account is a domain-rule rejection, not a
// credential failure, and the two must stay distinguishable.
func (s *Service) Login(ctx context.Context, in LoginInput) (*AuthOutput, error) {
	u, err := s.Repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.Auth(invalidCredentialsMsg)
		}
		return nil, err
	}

	policy := valueobject.AccountStatusFrom(u.AccountStatus)
	if !policy.CanAuthenticate() {
		return nil, apperr.Domain("account cannot authenticate, status: "+policy.String(), map[string]any{
			"accountStatus": u.AccountStatus,
			"reason":        policy.Reason(),
		})
	}

	pwd, err := valueobject.PasswordFromHash(u.PasswordHash)
	if err != nil {
		// A persisted user without a hash is corrupt state, not a
		// credential failure.
		return nil, err
	}
	if !pwd.Verify(in.Password, s.Hasher) {
		return nil, apperr.Auth(invalidCredentialsMsg)
	}

	token, err := s.JWT.Generate(auth.TokenPayload{UserID: u.ID, Email: u.Email, Role: u.Role}, nil)
	if err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user logged in")
	}
	return &AuthOutput{User: toPublicUser(u), Token: token}, nil
}

// GetCurrentUser returns the profile for an already-authenticated user
// id. There is deliberately no account-status gate here: a suspended
// user's unexpired token can still read their own profile.
//
// Cached reads may lag the store by up to profileCacheTTL. No use case
// mutates users yet; any future update/delete path must also drop the
// profileCacheKey entry.
func (s *Service) GetCurrentUser(ctx context.Context, userID string) (*PublicUser, error) {
	if s.Redis != nil {
		var cached PublicUser
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, profileCacheKey(userID), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}

	pub := toPublicUser(u)
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, profileCacheKey(userID), pub, profileCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("profile cache write failed")
		}
	}
	return &pub, nil
}

func profileCacheKey(userID string) string {
	return "user:profile:" + userID
}

func (s *Service) publishRegistered(ctx context.Context, u *entity.User) {
	if s.Events == nil {
		return
	}
	evt := UserRegisteredEvent{UserID: u.ID, Email: u.Email, Name: u.Name, At: time.Now().UTC()}
	if err := s.Events.PublishJSON(ctx, evt); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("publish user registered event failed")
	}
}
