package tfidf

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestState(t *testing.T) {
	t.Run("Round Trip Encodes Identically", func(t *testing.T) {
		a, err := NewFitted([]string{"what are the fees", "hostel rooms", "hello there"})
		if err != nil {
			t.Fatal(err)
		}
		st, err := a.State()
		if err != nil {
			t.Fatal(err)
		}
		b, err := FromState(st)
		if err != nil {
			t.Fatal(err)
		}
		for _, text := range []string{"fees for hostel", "hello", "unknown words"} {
			va, _ := a.Encode(context.Background(), text)
			vb, _ := b.Encode(context.Background(), text)
			if !reflect.DeepEqual(va, vb) {
				t.Errorf("%q: %v != %v", text, va, vb)
			}
		}
	})

	t.Run("Unfitted", func(t *testing.T) {
		if _, err := New().State(); !errors.Is(err, ErrNotFitted) {
			t.Errorf("expected ErrNotFitted, got %v", err)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		cases := []State{
			{},
			{Terms: []string{"a", "b"}, IDF: []float32{1}},
			{Terms: []string{"a", "a"}, IDF: []float32{1, 1}},
		}
		for _, s := range cases {
			if _, err := FromState(s); !errors.Is(err, ErrInvalidState) {
				t.Errorf("%+v: expected ErrInvalidState, got %v", s, err)
			}
		}
	})
}
