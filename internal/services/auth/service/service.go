// Package service contains the auth workflows: signup, login, token verification
package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"greenpath/internal/modkit/repokit"
	perr "greenpath/internal/platform/errors"
	"greenpath/internal/services/auth/domain"
	"greenpath/internal/services/auth/repo"
)

// Config tunes token issuance and password hashing
type Config struct {
	// Secret signs HS256 tokens; required
	Secret string

	// TTL bounds token lifetime; zero means 24h
	TTL time.Duration

	// BcryptCost of zero means bcrypt.DefaultCost
	BcryptCost int
}

// Service defines the auth service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the auth service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cfg    Config
	now    func() time.Time
}

// New constructs an auth service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Svc {
	if db == nil {
		panic("auth.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("auth.Service requires a non nil Repo binder")
	}
	if strings.TrimSpace(cfg.Secret) == "" {
		panic("auth.Service requires a signing secret")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, cfg: cfg, now: time.Now}
}

// Signup registers an account and returns a fresh session
func (s *Svc) Signup(ctx context.Context, in domain.SignupInput) (domain.Session, error) {
	email := normalizeEmail(in.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cfg.BcryptCost)
	if err != nil {
		return domain.Session{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "hash password")
	}

	row := repo.Row{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(in.DisplayName),
		Tier:         domain.TierFree,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.Repo.Insert(ctx, row); err != nil {
		if perr.IsDuplicateKey(err) {
			return domain.Session{}, perr.Conflictf("email already registered")
		}
		return domain.Session{}, perr.FromPostgres(err, "insert user")
	}
	return s.session(row)
}

// Login exchanges credentials for a session
func (s *Svc) Login(ctx context.Context, in domain.LoginInput) (domain.Session, error) {
	row, err := s.Repo.ByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Session{}, perr.Unauthorizedf("invalid credentials")
		}
		return domain.Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(in.Password)); err != nil {
		return domain.Session{}, perr.Unauthorizedf("invalid credentials")
	}
	return s.session(row)
}

// Me returns the account for an authenticated user id
func (s *Svc) Me(ctx context.Context, userID string) (domain.User, error) {
	row, err := s.Repo.ByID(ctx, userID)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.User{}, perr.Unauthorizedf("account no longer exists")
		}
		return domain.User{}, err
	}
	return toUser(row), nil
}

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// VerifyToken parses and validates an HS256 token, returning the subject user id
func (s *Svc) VerifyToken(token string) (string, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	c := &claims{}
	parsed, err := parser.ParseWithClaims(token, c, func(*jwt.Token) (any, error) {
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	if !parsed.Valid || c.Subject == "" {
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	return c.Subject, nil
}

func (s *Svc) session(row repo.Row) (domain.Session, error) {
	now := s.now().UTC()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   row.ID,
			Issuer:    "greenpath",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
		Email: row.Email,
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return domain.Session{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "sign token")
	}
	return domain.Session{Token: tok, User: toUser(row)}, nil
}

func toUser(row repo.Row) domain.User {
	return domain.User{
		ID:               row.ID,
		Email:            row.Email,
		DisplayName:      row.DisplayName,
		SubscriptionTier: row.Tier,
		CreatedAt:        row.CreatedAt,
	}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
