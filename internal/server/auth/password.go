package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// DefaultHashCost is the bcrypt work factor used in production.
const DefaultHashCost = 12

// PasswordHasher hashes and verifies passwords with bcrypt. At most
// concurrency hash operations run at once; further callers wait (or give up
// when their context ends) so hashing cannot starve the rest of the process.
type PasswordHasher struct {
	cost int
	sem  *semaphore.Weighted

	// dummy is a hash of a password nobody owns, at the same cost.
	dummy []byte
}

func NewPasswordHasher(cost, concurrency int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}
	if concurrency < 1 {
		concurrency = 1
	}
	// Only fails for an out-of-range cost, which is clamped above.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("authkeeper-dummy-password"), cost)
	return &PasswordHasher{cost: cost, sem: semaphore.NewWeighted(int64(concurrency)), dummy: dummy}
}

func (h *PasswordHasher) run(ctx context.Context, fn func()) error {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer h.sem.Release(1)
	fn()
	return nil
}

// Hash returns the salted bcrypt hash of plain.
func (h *PasswordHasher) Hash(ctx context.Context, plain string) (string, error) {
	var (
		out []byte
		err error
	)
	if runErr := h.run(ctx, func() {
		out, err = bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	}); runErr != nil {
		return "", runErr
	}
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether plain matches hash. A mismatch is (false, nil);
// an error means the hash itself is unusable or ctx ended.
func (h *PasswordHasher) Verify(ctx context.Context, plain, hash string) (bool, error) {
	var err error
	if runErr := h.run(ctx, func() {
		err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	}); runErr != nil {
		return false, runErr
	}
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// VerifyDummy spends the same work as Verify against a hash nobody owns.
// Login calls it for unknown emails so response time does not reveal
// whether an account exists.
func (h *PasswordHasher) VerifyDummy(ctx context.Context, plain string) error {
	return h.run(ctx, func() {
		_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(plain))
	})
}
