package frame

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	p := NewMonotonicTimeProvider()

	t1 := p.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := p.Now()

	if d := t2.Sub(t1); d < 10*time.Millisecond {
		t.Errorf("elapsed %v, want at least 10ms", d)
	}
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(epoch)

	if !mock.Now().Equal(epoch) {
		t.Errorf("Now() = %v, want %v", mock.Now(), epoch)
	}

	next := epoch.Add(24 * time.Hour)
	mock.SetTime(next)
	if got := mock.Advance(time.Hour); !got.Equal(next.Add(time.Hour)) {
		t.Errorf("Advance() = %v, want %v", got, next.Add(time.Hour))
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
