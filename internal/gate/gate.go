// Package gate enforces the demo session limit. The counter lives in the
// settings table so it survives restarts; a license key lifts the limit.
package gate

import (
	"fmt"
	"os"
	"strconv"

	"github.com/allensfl/coach-mission-control/internal/db"
)

const (
	counterKey = "session_counter"
	licenseEnv = "COACH_LICENSE"

	// DefaultLimit is the number of sessions the unlicensed demo allows.
	DefaultLimit = 10
)

// Gate tracks how many sessions have been started
type Gate struct {
	store *db.Store
	limit int
}

// New creates a gate over the store with the default limit.
func New(store *db.Store) *Gate {
	return &Gate{store: store, limit: DefaultLimit}
}

// Licensed reports whether a license key is configured.
func (g *Gate) Licensed() bool {
	return os.Getenv(licenseEnv) != ""
}

// Count returns the number of sessions started so far.
func (g *Gate) Count() (int, error) {
	val, err := g.store.GetSetting(counterKey)
	if err != nil {
		return 0, err
	}
	if val == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt session counter %q: %w", val, err)
	}
	return n, nil
}

// Remaining returns how many sessions are left, or -1 when licensed.
func (g *Gate) Remaining() (int, error) {
	if g.Licensed() {
		return -1, nil
	}
	n, err := g.Count()
	if err != nil {
		return 0, err
	}
	left := g.limit - n
	if left < 0 {
		left = 0
	}
	return left, nil
}

// Allow checks the limit and increments the counter. Licensed installs
// always pass and still count for the stats.
func (g *Gate) Allow() error {
	n, err := g.Count()
	if err != nil {
		return err
	}
	if !g.Licensed() && n >= g.limit {
		return fmt.Errorf("demo limit of %d sessions reached, set %s to continue", g.limit, licenseEnv)
	}
	return g.store.PutSetting(counterKey, strconv.Itoa(n+1))
}

// Reset clears the counter. Used by tests and by a fresh seed.
func (g *Gate) Reset() error {
	return g.store.PutSetting(counterKey, "0")
}
