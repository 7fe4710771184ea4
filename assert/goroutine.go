package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It is undoubtedly useful for but it should only ever be used for
// debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// SingleThread checks that every call, across its lifetime, arrives from
// the same goroutine, per the "single logical thread" invariant over the
// core's bus-access and display-refresh callbacks. It panics on the first
// call observed from a different goroutine than the one that made the
// first call.
type SingleThread struct {
	owner uint64
}

// Check records the caller's goroutine on first use and panics if a later
// call arrives from a different one. label identifies the call site in the
// panic message (eg. "addressspace.Read").
func (s *SingleThread) Check(label string) {
	id := GetGoRoutineID()
	owner := atomic.LoadUint64(&s.owner)
	if owner == 0 {
		atomic.CompareAndSwapUint64(&s.owner, 0, id)
		return
	}
	if owner != id {
		panic(fmt.Sprintf("%s: called from goroutine %d, expected %d", label, id, owner))
	}
}
