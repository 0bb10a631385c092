package lock

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/open-atmos/nbhooks/internal/fileutil"
)

// ErrHeld is returned when another nbhooks process holds the lock past the
// wait timeout.
var ErrHeld = errors.New("lock is held by another nbhooks process")

// DefaultTimeout is how long Acquire waits for a contended lock.
const DefaultTimeout = 5 * time.Second

const retryDelay = 100 * time.Millisecond

// Path returns the lock file guarding the state file at target.
func Path(target string) string {
	return target + ".lock"
}

// Acquire takes an exclusive lock next to target, waiting up to timeout.
// Returns an unlock function on success. The lock is also released when
// the process exits.
func Acquire(ctx context.Context, target string, timeout time.Duration) (unlock func(), err error) {
	lockPath := Path(target)
	if err := fileutil.EnsureDir(filepath.Dir(lockPath)); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	fl := flock.New(lockPath)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, retryDelay)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("acquiring lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", lockPath, ErrHeld)
	}

	return func() { _ = fl.Unlock() }, nil
}
