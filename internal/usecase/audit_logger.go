package usecase

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"whatameating/internal/domain/entity"
	"whatameating/internal/domain/repository"
)

// ipv4MappedPrefix is what dual-stack listeners put in front of IPv4 peers.
const ipv4MappedPrefix = "::ffff:"

// AuditLogger writes access log entries in the background. Writes are never
// retried and their failures never reach the caller.
type AuditLogger struct {
	store repository.AuditStore
	wg    sync.WaitGroup

	// mu guards closed so no Add can race with the Wait in Close.
	mu     sync.Mutex
	closed bool

	// onResult is called once per write with its error (nil on success).
	onResult func(error)
}

func NewAuditLogger(store repository.AuditStore) *AuditLogger {
	return &AuditLogger{store: store}
}

func (a *AuditLogger) WithResultHook(fn func(error)) *AuditLogger {
	a.onResult = fn
	return a
}

// Record dispatches the entry and returns immediately. Entries recorded after
// Close are dropped.
func (a *AuditLogger) Record(entry entity.AuditLogEntry) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		log.Printf("[AUDIT] Logger closed, dropping log for %s (%d bytes)", entry.IP, entry.Size)
		return
	}
	a.wg.Add(1)
	a.mu.Unlock()

	go func() {
		defer a.wg.Done()
		// Detached from the request, which may already be finished.
		ctx := context.Background()

		id, err := a.store.Append(ctx, entry)
		if a.onResult != nil {
			a.onResult(err)
		}
		if err != nil {
			log.Printf("[AUDIT] ERROR in logging: %v", err)
			return
		}
		log.Printf("[AUDIT] Log %s created successfully.", id)
	}()
}

// Close waits for in-flight writes, giving up after timeout.
func (a *AuditLogger) Close(timeout time.Duration) bool {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// ClientIP strips the fixed IPv4-mapped prefix from a peer address.
func ClientIP(addr string) string {
	return strings.TrimPrefix(addr, ipv4MappedPrefix)
}
