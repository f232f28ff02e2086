package platform

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func testAppName(t *testing.T) string {
	return fmt.Sprintf("focusring-test-%s-%d", t.Name(), time.Now().UnixNano())
}

func TestPortFromNameIsStable(t *testing.T) {
	first := portFromName("focusring")
	second := portFromName("focusring")
	if first != second {
		t.Errorf("portFromName() = %d then %d, want stable", first, second)
	}
	if first < 20000 || first > 39999 {
		t.Errorf("portFromName() = %d, want within [20000, 39999]", first)
	}
}

func TestSecondAcquireFails(t *testing.T) {
	appName := testAppName(t)
	guard, err := AcquireSingleInstance(appName)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}
	defer guard.Release()

	if _, err := AcquireSingleInstance(appName); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("AcquireSingleInstance() error = %v, want ErrAlreadyRunning", err)
	}
}

func TestSignalActivatesRunningInstance(t *testing.T) {
	appName := testAppName(t)
	guard, err := AcquireSingleInstance(appName)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}
	defer guard.Release()

	activated := make(chan struct{}, 1)
	guard.OnActivate(func() {
		activated <- struct{}{}
	})

	if err := Signal(appName); err != nil {
		t.Fatal(err)
	}

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func TestReleaseFreesLock(t *testing.T) {
	appName := testAppName(t)
	guard, err := AcquireSingleInstance(appName)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}
	if err := guard.Release(); err != nil {
		t.Fatal(err)
	}

	again, err := AcquireSingleInstance(appName)
	if err != nil {
		t.Fatalf("AcquireSingleInstance() after Release error = %v", err)
	}
	_ = again.Release()
}
