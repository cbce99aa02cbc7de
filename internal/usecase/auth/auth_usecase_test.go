package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/campushub/backend/internal/domain"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[int]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestAuthUseCase() *AuthUseCase {
	return NewAuthUseCase(newFakeUserRepo(), testSecret, 60)
}

func TestRegisterAndLogin_TokenRoundTrip(t *testing.T) {
	uc := newTestAuthUseCase()
	ctx := context.Background()

	reg, err := uc.Register(ctx, &RegisterRequest{
		Name:     "Dana",
		Email:    "dana@campus.edu",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if reg.User.PasswordHash == "correct-horse" {
		t.Fatal("password stored in plain text")
	}

	userID, err := uc.ParseToken(reg.Token)
	if err != nil {
		t.Fatalf("registration token invalid: %v", err)
	}
	if userID != reg.User.ID {
		t.Errorf("token carries user %d, want %d", userID, reg.User.ID)
	}

	login, err := uc.Login(ctx, &LoginRequest{Email: "dana@campus.edu", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loginID, err := uc.ParseToken(login.Token); err != nil || loginID != reg.User.ID {
		t.Errorf("login token: id=%d err=%v", loginID, err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := newTestAuthUseCase()
	ctx := context.Background()

	if _, err := uc.Register(ctx, &RegisterRequest{Name: "Dana", Email: "dana@campus.edu", Password: "correct-horse"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := uc.Login(ctx, &LoginRequest{Email: "dana@campus.edu", Password: "wrong-horse"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	uc := newTestAuthUseCase()

	_, err := uc.Login(context.Background(), &LoginRequest{Email: "nobody@campus.edu", Password: "whatever"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email must look like bad credentials, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := newTestAuthUseCase()
	ctx := context.Background()

	req := &RegisterRequest{Name: "Dana", Email: "dana@campus.edu", Password: "correct-horse"}
	if _, err := uc.Register(ctx, req); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := uc.Register(ctx, req); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestParseToken_RejectsTamperedAndForeignTokens(t *testing.T) {
	uc := newTestAuthUseCase()

	reg, err := uc.Register(context.Background(), &RegisterRequest{Name: "Dana", Email: "dana@campus.edu", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(reg.Token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)
	if _, err := uc.ParseToken(tampered); err == nil {
		t.Error("tampered token must be rejected")
	}

	// Token signed with a different secret.
	other := NewAuthUseCase(newFakeUserRepo(), "ffffffffffffffffffffffffffffffff", 60)
	foreign, err := other.generateToken(1)
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}
	if _, err := uc.ParseToken(foreign); err == nil {
		t.Error("token signed with another secret must be rejected")
	}

	if _, err := uc.ParseToken("not-a-token"); err == nil {
		t.Error("garbage input must be rejected")
	}
}

func TestGetUser(t *testing.T) {
	uc := newTestAuthUseCase()
	ctx := context.Background()

	reg, err := uc.Register(ctx, &RegisterRequest{Name: "Dana", Email: "dana@campus.edu", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := uc.GetUser(ctx, reg.User.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "dana@campus.edu" {
		t.Errorf("got email %q", user.Email)
	}

	if _, err := uc.GetUser(ctx, 404); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
