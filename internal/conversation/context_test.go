package conversation

import (
	"fmt"
	"sync"
	"testing"
)

func TestRecordAndBuildQuery(t *testing.T) {
	t.Run("Joins Consecutive Utterances", func(t *testing.T) {
		c := NewContext(3)
		if got := c.RecordAndBuildQuery("hi"); got != "hi" {
			t.Errorf("expected %q, got %q", "hi", got)
		}
		if got := c.RecordAndBuildQuery("what are the fees"); got != "hi what are the fees" {
			t.Errorf("expected %q, got %q", "hi what are the fees", got)
		}
	})

	t.Run("Uses Only Last Three", func(t *testing.T) {
		c := NewContext(3)
		var got string
		for _, u := range []string{"one", "two", "three", "four", "five"} {
			got = c.RecordAndBuildQuery(u)
		}
		if got != "three four five" {
			t.Errorf("expected %q, got %q", "three four five", got)
		}
		if c.Len() != 5 {
			t.Errorf("expected 5 retained entries, got %d", c.Len())
		}
	})

	t.Run("Accepts Empty Input", func(t *testing.T) {
		c := NewContext(3)
		c.RecordAndBuildQuery("hello")
		got := c.RecordAndBuildQuery("")
		if got != "hello " {
			t.Errorf("expected %q, got %q", "hello ", got)
		}
		if c.Len() != 2 {
			t.Errorf("expected empty input to be recorded, len=%d", c.Len())
		}
	})

	t.Run("Zero Value Uses Default Window", func(t *testing.T) {
		var c Context
		for _, u := range []string{"a", "b", "c", "d"} {
			c.RecordAndBuildQuery(u)
		}
		if got := c.RecordAndBuildQuery("e"); got != "c d e" {
			t.Errorf("expected %q, got %q", "c d e", got)
		}
	})

	t.Run("History Is Capped", func(t *testing.T) {
		c := NewContext(3)
		for i := 0; i < MaxHistory+5; i++ {
			c.RecordAndBuildQuery(fmt.Sprintf("u%d", i))
		}
		h := c.History()
		if len(h) != MaxHistory {
			t.Fatalf("expected %d entries, got %d", MaxHistory, len(h))
		}
		if h[0] != "u5" {
			t.Errorf("expected oldest retained entry u5, got %s", h[0])
		}
	})
}

func TestReset(t *testing.T) {
	fresh := NewContext(3)
	want := fresh.RecordAndBuildQuery("hostel rooms")

	c := NewContext(3)
	c.RecordAndBuildQuery("hi")
	c.RecordAndBuildQuery("fees")
	c.Reset()
	c.Reset()
	if got := c.RecordAndBuildQuery("hostel rooms"); got != want {
		t.Errorf("expected %q after reset, got %q", want, got)
	}
}

func TestContextConcurrentUse(t *testing.T) {
	c := NewContext(3)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.RecordAndBuildQuery(fmt.Sprintf("m%d", i))
		}(i)
	}
	wg.Wait()
	if c.Len() != MaxHistory {
		t.Errorf("expected %d retained entries, got %d", MaxHistory, c.Len())
	}
}
