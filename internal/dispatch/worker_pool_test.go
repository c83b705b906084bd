package dispatch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_RunsEveryTask(t *testing.T) {
	p := NewWorkerPool(4, 16)
	out := p.Run(context.Background())

	var ran atomic.Int64
	for i := 0; i < 10; i++ {
		p.Submit(func(context.Context) error {
			ran.Add(1)
			return nil
		})
	}
	p.Close()

	results := 0
	for r := range out {
		if r.Err != nil {
			t.Fatalf("unexpected err: %v", r.Err)
		}
		results++
	}
	if results != 10 {
		t.Fatalf("expected 10 results, got %d", results)
	}
	if ran.Load() != 10 {
		t.Fatalf("expected 10 tasks run, got %d", ran.Load())
	}
}

func TestWorkerPool_ReportsTaskErrors(t *testing.T) {
	p := NewWorkerPool(2, 4)
	out := p.Run(context.Background())

	boom := errors.New("boom")
	p.Submit(func(context.Context) error { return boom })
	p.Submit(func(context.Context) error { return nil })
	p.Close()

	var failed int
	for r := range out {
		if r.Err != nil {
			failed++
			if !errors.Is(r.Err, boom) {
				t.Fatalf("unexpected error: %v", r.Err)
			}
		}
	}
	if failed != 1 {
		t.Fatalf("expected 1 failure, got %d", failed)
	}
}
