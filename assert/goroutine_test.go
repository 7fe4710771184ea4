package assert_test

import (
	"sync"
	"testing"

	"github.com/blinkenlabs/nrf51emu/assert"
	"github.com/blinkenlabs/nrf51emu/test"
)

func TestGetGoRoutineIDDiffersAcrossGoroutines(t *testing.T) {
	a := assert.GetGoRoutineID()

	var b uint64
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		b = assert.GetGoRoutineID()
	}()
	wg.Wait()

	test.ExpectInequality(t, a, b)
}

func TestSingleThreadAllowsRepeatedCallsFromSameGoroutine(t *testing.T) {
	var s assert.SingleThread
	s.Check("test")
	s.Check("test")
}

func TestSingleThreadPanicsOnDifferentGoroutine(t *testing.T) {
	var s assert.SingleThread
	s.Check("test")

	done := make(chan any, 1)
	go func() {
		defer func() { done <- recover() }()
		s.Check("test")
	}()

	if r := <-done; r == nil {
		t.Errorf("expected a panic from a second goroutine calling Check")
	}
}
