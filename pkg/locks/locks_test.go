package locks_test

import (
	"sync"
	"testing"

	"github.com/Most2022/smartpdf/pkg/locks"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := locks.NewKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			unlock := km.Lock("project-a")
			defer unlock()
			counter++
		})
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, want 50", counter)
	}
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	km := locks.NewKeyedMutex()

	unlockA := km.Lock("project-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("project-b")
		unlockB()
		close(done)
	}()

	<-done
}

func TestKeyedMutex_ReleaseAllowsNextHolder(t *testing.T) {
	km := locks.NewKeyedMutex()

	unlock := km.Lock("project-a")
	unlock()

	unlock = km.Lock("project-a")
	unlock()
}
