package credentials

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/neko3da4/CHRFORGE/internal/bus"
)

func TestSetTokenBroadcastsOnChange(t *testing.T) {
	b := bus.New(zerolog.Nop())
	s := NewStore(b, nil)

	var got []string
	b.On(EventUpdated, func(args ...any) { got = append(got, args[0].(string)) })

	s.SetToken("tok-1")
	s.SetToken("tok-1")
	s.SetToken("tok-2")

	if len(got) != 2 || got[0] != "tok-1" || got[1] != "tok-2" {
		t.Fatalf("expected broadcasts for changes only, got %v", got)
	}
	if s.Token() != "tok-2" {
		t.Fatalf("expected tok-2 stored, got %q", s.Token())
	}
}

func TestBroadcastFeedbackDoesNotLoop(t *testing.T) {
	b := bus.New(zerolog.Nop())
	s := NewStore(b, nil)

	// A subscriber that writes broadcasts straight back into the store.
	b.On(EventUpdated, func(args ...any) { s.SetToken(args[0].(string)) })

	s.SetToken("tok-1")
	if s.Token() != "tok-1" {
		t.Fatalf("expected tok-1, got %q", s.Token())
	}
}

func TestSetTokenWithoutBus(t *testing.T) {
	s := NewStore(nil, nil)
	s.SetToken("tok")
	if s.Token() != "tok" {
		t.Fatalf("expected token stored without bus, got %q", s.Token())
	}
}

func TestRefreshDelegatesAndStores(t *testing.T) {
	b := bus.New(zerolog.Nop())
	var gotRefresh string
	s := NewStore(b, func(ctx context.Context, refreshToken string) (string, error) {
		gotRefresh = refreshToken
		return "fresh-token", nil
	})
	s.SetRefreshToken("refresh-1")

	var announced string
	b.On(EventUpdated, func(args ...any) { announced = args[0].(string) })

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if gotRefresh != "refresh-1" {
		t.Fatalf("expected refresh token passed to capability, got %q", gotRefresh)
	}
	if s.Token() != "fresh-token" {
		t.Fatalf("expected refreshed token stored, got %q", s.Token())
	}
	if announced != "fresh-token" {
		t.Fatalf("expected refreshed token broadcast, got %q", announced)
	}
}

func TestRefreshWithoutCapability(t *testing.T) {
	s := NewStore(nil, nil)
	s.SetRefreshToken("r")
	if err := s.Refresh(context.Background()); !errors.Is(err, ErrRefreshUnavailable) {
		t.Fatalf("expected ErrRefreshUnavailable, got %v", err)
	}
}

func TestRefreshWithoutRefreshToken(t *testing.T) {
	s := NewStore(nil, func(ctx context.Context, refreshToken string) (string, error) {
		return "x", nil
	})
	if err := s.Refresh(context.Background()); !errors.Is(err, ErrNoRefreshToken) {
		t.Fatalf("expected ErrNoRefreshToken, got %v", err)
	}
}

func TestRefreshPropagatesFailure(t *testing.T) {
	boom := errors.New("exchange rejected")
	s := NewStore(nil, func(ctx context.Context, refreshToken string) (string, error) {
		return "", boom
	})
	s.SetRefreshToken("r")
	s.SetToken("old")

	err := s.Refresh(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped capability error, got %v", err)
	}
	if s.Token() != "old" {
		t.Fatalf("expected token unchanged after failed refresh, got %q", s.Token())
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds", "session.toml")

	src := NewFileStore(path, nil, nil)
	src.SetToken("tok-abc")
	src.SetRefreshToken("refresh-xyz")
	if err := src.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	dst := NewFileStore(path, nil, nil)
	if err := dst.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if dst.Token() != "tok-abc" || dst.RefreshToken() != "refresh-xyz" {
		t.Fatalf("expected round trip, got token=%q refresh=%q", dst.Token(), dst.RefreshToken())
	}
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	f := NewFileStore(filepath.Join(t.TempDir(), "absent.toml"), nil, nil)
	if err := f.Load(); err != nil {
		t.Fatalf("expected missing file to be tolerated, got %v", err)
	}
	if f.Token() != "" || f.RefreshToken() != "" {
		t.Fatalf("expected empty store after missing file load")
	}
}

func TestStaticBearerValidate(t *testing.T) {
	v := StaticBearer{Token: "secret"}
	if err := v.Validate("secret"); err != nil {
		t.Fatalf("expected matching token to validate, got %v", err)
	}
	if err := v.Validate("wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := (StaticBearer{}).Validate(""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected empty shared token to reject everything, got %v", err)
	}
}

func TestValidatorFunc(t *testing.T) {
	calls := 0
	v := ValidatorFunc(func(token string) error {
		calls++
		if token != "ok" {
			return ErrUnauthorized
		}
		return nil
	})
	if err := v.Validate("ok"); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := v.Validate("no"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}
