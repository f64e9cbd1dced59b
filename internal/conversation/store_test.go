package conversation

import (
	"testing"
	"time"
)

func TestStore(t *testing.T) {
	t.Run("Sessions Are Isolated", func(t *testing.T) {
		s := NewStore(10, time.Minute, 3)
		s.Get("a").RecordAndBuildQuery("hello from a")
		got := s.Get("b").RecordAndBuildQuery("hello from b")
		if got != "hello from b" {
			t.Errorf("expected no leakage across sessions, got %q", got)
		}
		if s.Len() != 2 {
			t.Errorf("expected 2 sessions, got %d", s.Len())
		}
	})

	t.Run("Get Returns Same Context", func(t *testing.T) {
		s := NewStore(10, time.Minute, 3)
		if s.Get("a") != s.Get("a") {
			t.Error("expected the same context for the same session")
		}
	})

	t.Run("Reset Clears History", func(t *testing.T) {
		s := NewStore(10, time.Minute, 3)
		s.Get("a").RecordAndBuildQuery("hi")
		s.Reset("a")
		if n := s.Get("a").Len(); n != 0 {
			t.Errorf("expected empty history, got %d", n)
		}
	})

	t.Run("Delete And Peek", func(t *testing.T) {
		s := NewStore(10, time.Minute, 3)
		s.Get("a")
		s.Delete("a")
		if _, ok := s.Peek("a"); ok {
			t.Error("expected session to be gone")
		}
	})

	t.Run("Evicts Least Recently Used", func(t *testing.T) {
		s := NewStore(2, time.Minute, 3)
		s.Get("a")
		s.Get("b")
		s.Get("c")
		if _, ok := s.Peek("a"); ok {
			t.Error("expected oldest session to be evicted")
		}
	})

	t.Run("Window Is Applied", func(t *testing.T) {
		s := NewStore(10, time.Minute, 2)
		c := s.Get("a")
		c.RecordAndBuildQuery("x")
		c.RecordAndBuildQuery("y")
		if got := c.RecordAndBuildQuery("z"); got != "y z" {
			t.Errorf("expected %q, got %q", "y z", got)
		}
	})

	t.Run("Active Session Outlives TTL", func(t *testing.T) {
		s := NewStore(10, 200*time.Millisecond, 3)
		s.Get("a").RecordAndBuildQuery("hi")
		for i := 0; i < 6; i++ {
			time.Sleep(60 * time.Millisecond)
			s.Get("a").RecordAndBuildQuery("turn")
		}
		if got := s.Get("a").History(); len(got) != 7 || got[0] != "hi" {
			t.Errorf("expected history kept across %v of activity, got %v", 360*time.Millisecond, got)
		}
	})

	t.Run("Idle Session Expires", func(t *testing.T) {
		s := NewStore(10, 50*time.Millisecond, 3)
		s.Get("a").RecordAndBuildQuery("hi")
		time.Sleep(120 * time.Millisecond)
		if _, ok := s.Peek("a"); ok {
			t.Error("expected idle session to expire")
		}
	})
}
