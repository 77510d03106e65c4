package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/homelyhq/homely-backend/pkg/helpers"
)

func newAuthService(repo *fakeUserRepository) *AuthService {
	jwt := helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
	return NewAuthService(repo, jwt, nil, nil)
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := newAuthService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "correct-horse",
		Name:     "Ana",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == 0 {
		t.Error("ID not assigned")
	}
	if u.Password == "correct-horse" {
		t.Error("password stored verbatim")
	}
	if !helpers.CompareHashAndPassword(u.Password, "correct-horse") {
		t.Error("stored hash does not match original password")
	}
}

func TestRegisterEmailOnly(t *testing.T) {
	svc := newAuthService(&fakeUserRepository{})

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "bob@example.com",
		Password: "password",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Username != "bob@example.com" {
		t.Errorf("Username = %q, want email fallback", u.Username)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := newAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Password: "password"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("no username/email: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Username: "ana"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("no password: err = %v, want ErrInvalidInput", err)
	}
	if len(repo.rows) != 0 {
		t.Errorf("%d rows written for invalid input", len(repo.rows))
	}
}

func TestRegisterDuplicateEitherField(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := newAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Username: "ana", Email: "ana@example.com", Password: "password"}); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	// Same username, different email.
	if _, err := svc.Register(ctx, RegisterInput{Username: "ana", Email: "other@example.com", Password: "password"}); !errors.Is(err, ErrDuplicateUser) {
		t.Errorf("username collision: err = %v, want ErrDuplicateUser", err)
	}
	// Same email, different username.
	if _, err := svc.Register(ctx, RegisterInput{Username: "ana2", Email: "ana@example.com", Password: "password"}); !errors.Is(err, ErrDuplicateUser) {
		t.Errorf("email collision: err = %v, want ErrDuplicateUser", err)
	}
	if len(repo.rows) != 1 {
		t.Errorf("row count = %d, want 1", len(repo.rows))
	}
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := newAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Username: "ana", Email: "ana@example.com", Password: "correct-horse"}); err != nil {
		t.Fatal(err)
	}

	for _, login := range []string{"ana", "ana@example.com"} {
		u, pair, err := svc.Login(ctx, login, "correct-horse")
		if err != nil {
			t.Fatalf("Login(%q): %v", login, err)
		}
		if u.Username != "ana" {
			t.Errorf("Login(%q) user = %q", login, u.Username)
		}
		if pair.AccessToken == "" || pair.RefreshToken == "" {
			t.Errorf("Login(%q) issued empty tokens", login)
		}
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := newAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Username: "ana", Password: "correct-horse"}); err != nil {
		t.Fatal(err)
	}

	_, _, errWrongPwd := svc.Login(ctx, "ana", "wrong")
	_, _, errNoUser := svc.Login(ctx, "nobody", "correct-horse")

	if !errors.Is(errWrongPwd, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", errWrongPwd)
	}
	if !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v, want ErrInvalidCredentials", errNoUser)
	}
	if errWrongPwd.Error() != errNoUser.Error() {
		t.Error("login failures leak which field was wrong")
	}
}

func TestRefreshIssuesNewPair(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := newAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Username: "ana", Password: "correct-horse"}); err != nil {
		t.Fatal(err)
	}
	_, pair, err := svc.Login(ctx, "ana", "correct-horse")
	if err != nil {
		t.Fatal(err)
	}

	u, fresh, err := svc.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if u.Username != "ana" {
		t.Errorf("Refresh user = %q", u.Username)
	}
	if fresh.AccessToken == "" || fresh.RefreshToken == "" {
		t.Error("Refresh issued empty tokens")
	}
}

func TestRefreshRejectsBadTokens(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := newAuthService(repo)
	ctx := context.Background()

	if _, _, err := svc.Refresh(ctx, ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("empty token err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Refresh(ctx, "not-a-jwt"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("garbage token err = %v, want ErrInvalidCredentials", err)
	}

	// An access token must not pass as a refresh token: the secrets differ.
	if _, err := svc.Register(ctx, RegisterInput{Username: "ana", Password: "correct-horse"}); err != nil {
		t.Fatal(err)
	}
	_, pair, err := svc.Login(ctx, "ana", "correct-horse")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Refresh(ctx, pair.AccessToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("access-as-refresh err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshForDeletedUser(t *testing.T) {
	repo := &fakeUserRepository{}
	svc := newAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Username: "ana", Password: "correct-horse"}); err != nil {
		t.Fatal(err)
	}
	_, pair, err := svc.Login(ctx, "ana", "correct-horse")
	if err != nil {
		t.Fatal(err)
	}
	repo.rows = nil

	if _, _, err := svc.Refresh(ctx, pair.RefreshToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("deleted user err = %v, want ErrInvalidCredentials", err)
	}
}

func TestProfileNotFound(t *testing.T) {
	svc := newAuthService(&fakeUserRepository{})

	if _, err := svc.Profile(context.Background(), 77); !errors.Is(err, ErrNotFound) {
		t.Errorf("Profile(77) err = %v, want ErrNotFound", err)
	}
}
