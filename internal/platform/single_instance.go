package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"sync"
	"time"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const signalTimeout = time.Second

// InstanceGuard holds the single-instance lock. While held it accepts
// activation signals from later launches.
type InstanceGuard struct {
	listener net.Listener
	address  string

	mu         sync.Mutex
	onActivate func()
	done       chan struct{}
}

// AcquireSingleInstance attempts to bind a deterministic localhost port.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := addressFromName(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}

	guard := &InstanceGuard{
		listener: listener,
		address:  listener.Addr().String(),
		done:     make(chan struct{}),
	}
	go guard.serve()
	return guard, nil
}

// Signal asks the instance that holds the lock for appName to activate.
func Signal(appName string) error {
	connection, err := net.DialTimeout("tcp", addressFromName(appName), signalTimeout)
	if err != nil {
		return fmt.Errorf("signal running instance: %w", err)
	}
	return connection.Close()
}

// OnActivate registers the handler run when a later launch signals.
func (guard *InstanceGuard) OnActivate(handler func()) {
	guard.mu.Lock()
	defer guard.mu.Unlock()
	guard.onActivate = handler
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	<-guard.done
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func (guard *InstanceGuard) serve() {
	defer close(guard.done)
	for {
		connection, err := guard.listener.Accept()
		if err != nil {
			return
		}
		_ = connection.Close()

		guard.mu.Lock()
		handler := guard.onActivate
		guard.mu.Unlock()
		if handler != nil {
			handler()
		}
	}
}

func addressFromName(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
}

func portFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
