package application

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/expensio/expensio/internal/infrastructure/memory"
	"github.com/expensio/expensio/pkg/helpers"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newAuthService(ttl time.Duration) *AuthService {
	return NewAuthService(memory.NewUserRepository(), helpers.NewJWTManager("test-secret", ttl), quietLogger())
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(time.Hour)

	res, err := svc.Register(ctx, "a@example.com", "password123", "Alice")
	if err != nil {
		t.Fatal(err)
	}
	if res.Token == "" || res.User.ID == "" {
		t.Fatalf("incomplete result: %+v", res)
	}
	if res.User.Password == "password123" {
		t.Fatal("plaintext password stored")
	}

	login, err := svc.Login(ctx, "a@example.com", "password123")
	if err != nil {
		t.Fatal(err)
	}
	if login.User.ID != res.User.ID {
		t.Errorf("login user %s != registered user %s", login.User.ID, res.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(time.Hour)

	if _, err := svc.Register(ctx, "a@example.com", "password123", "Alice"); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Register(ctx, "a@example.com", "otherpassword", "Imposter")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("got %v, want ErrEmailTaken", err)
	}
}

func TestLoginUniformError(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(time.Hour)
	if _, err := svc.Register(ctx, "a@example.com", "password123", "Alice"); err != nil {
		t.Fatal(err)
	}

	_, unknownErr := svc.Login(ctx, "nobody@example.com", "password123")
	_, wrongErr := svc.Login(ctx, "a@example.com", "wrongpassword")

	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Errorf("errors differ: %v vs %v", unknownErr, wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("messages allow enumeration: %q vs %q", unknownErr, wrongErr)
	}
}

func TestVerifyToken(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(time.Hour)
	res, err := svc.Register(ctx, "a@example.com", "password123", "Alice")
	if err != nil {
		t.Fatal(err)
	}

	u, err := svc.VerifyToken(ctx, res.Token)
	if err != nil {
		t.Fatal(err)
	}
	if u.ID != res.User.ID {
		t.Errorf("subject = %s, want %s", u.ID, res.User.ID)
	}

	if _, err := svc.VerifyToken(ctx, "not-a-token"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("garbage token: %v", err)
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(-time.Minute) // already expired at issuance
	res, err := svc.Register(ctx, "a@example.com", "password123", "Alice")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.VerifyToken(ctx, res.Token); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expired token: %v", err)
	}
}

func TestVerifyTokenUnknownSubject(t *testing.T) {
	ctx := context.Background()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(memory.NewUserRepository(), jwt, quietLogger())

	// valid signature, but nobody behind it
	token, _, err := jwt.Generate("ghost-user")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.VerifyToken(ctx, token); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("vanished subject: %v", err)
	}
}
