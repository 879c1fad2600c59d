package catalog

import (
	"context"
	"errors"
	"testing"
)

type stubLoader struct {
	count int
	err   error
	calls int
}

func (l *stubLoader) RefreshCatalog(ctx context.Context) (int, error) {
	l.calls++
	return l.count, l.err
}

func TestNewRefresher_DefaultsInterval(t *testing.T) {
	r := NewRefresher(&stubLoader{}, 0)
	if r.spec != "@every 15m" {
		t.Errorf("spec = %q, want @every 15m", r.spec)
	}

	r = NewRefresher(&stubLoader{}, 5)
	if r.spec != "@every 5m" {
		t.Errorf("spec = %q, want @every 5m", r.spec)
	}
}

func TestRefresher_Refresh(t *testing.T) {
	t.Run("invokes the loader", func(t *testing.T) {
		loader := &stubLoader{count: 3}
		r := NewRefresher(loader, 15)
		r.refresh(context.Background())
		if loader.calls != 1 {
			t.Errorf("loader calls = %d, want 1", loader.calls)
		}
	})

	t.Run("loader failure does not panic", func(t *testing.T) {
		loader := &stubLoader{err: errors.New("db down")}
		r := NewRefresher(loader, 15)
		r.refresh(context.Background())
		if loader.calls != 1 {
			t.Errorf("loader calls = %d, want 1", loader.calls)
		}
	})
}

func TestRefresher_StartStop(t *testing.T) {
	loader := &stubLoader{}
	r := NewRefresher(loader, 60)
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	r.Stop()
}
