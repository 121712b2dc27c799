package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"greenpath/internal/modkit/repokit"
	perr "greenpath/internal/platform/errors"
	"greenpath/internal/platform/store"
	"greenpath/internal/platform/testkit"
	"greenpath/internal/services/auth/domain"
	"greenpath/internal/services/auth/repo"
)

// in-memory repo keyed by email and id
type fakeRepo struct {
	byEmail map[string]repo.Row
	byID    map[string]repo.Row
	inserts int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]repo.Row{}, byID: map[string]repo.Row{}}
}

func (f *fakeRepo) Insert(_ context.Context, row repo.Row) error {
	if _, ok := f.byEmail[row.Email]; ok {
		return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	}
	f.byEmail[row.Email] = row
	f.byID[row.ID] = row
	f.inserts++
	return nil
}

func (f *fakeRepo) ByEmail(_ context.Context, email string) (repo.Row, error) {
	row, ok := f.byEmail[email]
	if !ok {
		return repo.Row{}, perr.ErrNotFound
	}
	return row, nil
}

func (f *fakeRepo) ByID(_ context.Context, id string) (repo.Row, error) {
	row, ok := f.byID[id]
	if !ok {
		return repo.Row{}, perr.ErrNotFound
	}
	return row, nil
}

// fakeTx satisfies repokit.TxRunner; the fake repo never touches it
type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	panic("unexpected Exec")
}
func (fakeTx) Query(context.Context, string, ...any) (store.Rows, error) {
	panic("unexpected Query")
}
func (fakeTx) QueryRow(context.Context, string, ...any) store.Row { panic("unexpected QueryRow") }
func (fakeTx) Tx(context.Context, func(store.RowQuerier) error) error {
	panic("unexpected Tx")
}

func newTestSvc(f *fakeRepo) *Svc {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f })
	s := New(fakeTx{}, binder, Config{
		Secret:     "test-secret",
		TTL:        time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
	s.now = func() time.Time { return time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestSignupIssuesVerifiableToken(t *testing.T) {
	f := newFakeRepo()
	s := newTestSvc(f)

	sess, err := s.Signup(context.Background(), domain.SignupInput{
		Email:       "  Ada@Example.com ",
		Password:    "correct-horse",
		DisplayName: "Ada",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if sess.User.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", sess.User.Email)
	}
	if sess.User.SubscriptionTier != domain.TierFree {
		t.Fatalf("tier = %q, want free", sess.User.SubscriptionTier)
	}
	if sess.User.ID == "" || sess.Token == "" {
		t.Fatalf("incomplete session %+v", sess)
	}

	uid, err := s.VerifyToken(sess.Token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if uid != sess.User.ID {
		t.Fatalf("token subject %q, want %q", uid, sess.User.ID)
	}

	// stored hash is not the raw password
	row := f.byID[sess.User.ID]
	if row.PasswordHash == "correct-horse" {
		t.Fatalf("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte("correct-horse")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	f := newFakeRepo()
	s := newTestSvc(f)

	in := domain.SignupInput{Email: "ada@example.com", Password: "correct-horse", DisplayName: "Ada"}
	if _, err := s.Signup(context.Background(), in); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	_, err := s.Signup(context.Background(), in)
	if !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("expected Conflict, got %v", err)
	}
	if f.inserts != 1 {
		t.Fatalf("expected one stored account, got %d", f.inserts)
	}
}

func TestLogin(t *testing.T) {
	f := newFakeRepo()
	s := newTestSvc(f)

	if _, err := s.Signup(context.Background(), domain.SignupInput{
		Email: "ada@example.com", Password: "correct-horse", DisplayName: "Ada",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	t.Run("success", func(t *testing.T) {
		sess, err := s.Login(context.Background(), domain.LoginInput{
			Email: "ADA@example.com", Password: "correct-horse",
		})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if sess.Token == "" || sess.User.Email != "ada@example.com" {
			t.Fatalf("bad session %+v", sess)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Login(context.Background(), domain.LoginInput{
			Email: "ada@example.com", Password: "wrong",
		})
		if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
			t.Fatalf("expected Unauthorized, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := s.Login(context.Background(), domain.LoginInput{
			Email: "nobody@example.com", Password: "correct-horse",
		})
		if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
			t.Fatalf("expected Unauthorized, got %v", err)
		}
	})
}

func TestMe(t *testing.T) {
	f := newFakeRepo()
	s := newTestSvc(f)

	sess, err := s.Signup(context.Background(), domain.SignupInput{
		Email: "ada@example.com", Password: "correct-horse", DisplayName: "Ada",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	u, err := s.Me(context.Background(), sess.User.ID)
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if u.ID != sess.User.ID || u.DisplayName != "Ada" {
		t.Fatalf("unexpected user %+v", u)
	}

	if _, err := s.Me(context.Background(), "missing-id"); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expected Unauthorized for missing account, got %v", err)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	s := newTestSvc(newFakeRepo())

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := s.VerifyToken(tok); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
			t.Fatalf("token %q: expected Unauthorized, got %v", tok, err)
		}
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	f := newFakeRepo()
	s := newTestSvc(f)
	s.cfg.TTL = time.Minute
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	sess, err := s.Signup(context.Background(), domain.SignupInput{
		Email: "ada@example.com", Password: "correct-horse", DisplayName: "Ada",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := s.VerifyToken(sess.Token); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expected Unauthorized for expired token, got %v", err)
	}
}

func TestNewRejectsBadWiring(t *testing.T) {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return newFakeRepo() })
	cfg := Config{Secret: "test-secret"}

	testkit.MustPanic(t, func() { New(nil, binder, cfg) })
	testkit.MustPanic(t, func() { New(fakeTx{}, nil, cfg) })
	testkit.MustPanic(t, func() { New(fakeTx{}, binder, Config{Secret: "   "}) })
	testkit.MustNotPanic(t, func() { New(fakeTx{}, binder, cfg) })
}
