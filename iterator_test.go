package withposition

import (
	"context"
	"errors"
	"testing"
)

func TestFromSlice_Collect(t *testing.T) {
	got, err := Collect(context.Background(), FromSlice([]int{1, 2, 3}))
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromSlice_Empty(t *testing.T) {
	got, err := Collect(context.Background(), FromSlice([]int{}))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestFrom_Iterator(t *testing.T) {
	got, err := Collect(context.Background(), From[string](&sliceIter[string]{items: []string{"a", "b"}}))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v, want [a b]", got)
	}
}

func TestFromFunc(t *testing.T) {
	s := FromFunc(func(_ context.Context) Iterator[int] {
		return &sliceIter[int]{items: []int{7, 8}}
	})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{7, 8}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestForEach(t *testing.T) {
	var seen []int
	err := ForEach(context.Background(), FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		seen = append(seen, n)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(seen, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", seen)
	}
}

func TestForEach_StopsOnError(t *testing.T) {
	sinkErr := errors.New("sink failed")
	var seen []int
	err := ForEach(context.Background(), FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		if n == 2 {
			return sinkErr
		}
		seen = append(seen, n)
		return nil
	})
	if !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if !intSliceEqual(seen, []int{1}) {
		t.Errorf("expected [1] before error, got %v", seen)
	}
}

func TestIter_CallerCloses(t *testing.T) {
	src := &countingIter[int]{items: []int{1}}
	iter := From[int](src).Iter(context.Background())
	if _, ok, err := iter.Next(context.Background()); err != nil || !ok {
		t.Fatalf("expected a value, got ok=%v err=%v", ok, err)
	}
	if err := iter.Close(); err != nil {
		t.Fatal(err)
	}
	if !src.closed {
		t.Error("expected Close to reach the source")
	}
}

func TestSliceIter_IdempotentExhaustion(t *testing.T) {
	it := &sliceIter[int]{items: []int{1}}
	if _, ok, _ := it.Next(context.Background()); !ok {
		t.Fatal("expected a value")
	}
	for i := 0; i < 3; i++ {
		if _, ok, err := it.Next(context.Background()); ok || err != nil {
			t.Fatalf("pull %d after exhaustion: ok=%v err=%v", i, ok, err)
		}
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
