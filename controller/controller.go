package controller

import (
	"context"
	"errors"
	"time"

	"github.com/phvlkn/CookBook/entity"
)

// withTimeout bounds one repository operation. Zero or negative disables
// the bound.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// translateTimeout maps a blown deadline onto the error taxonomy so the
// caller can tell a slow store from a missing row.
func translateTimeout(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return entity.ErrTimeout
	}
	return err
}
