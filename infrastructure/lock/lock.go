package lock

import (
	"context"
	"errors"
)

var ErrAlreadyLocked = errors.New("sincronização já em andamento para a conta")

//go:generate mockgen -source=lock.go -destination=mocks/lock_mocks.go -package=mocks

// AccountLocker garante no máximo uma sincronização por conta.
// release é idempotente e nunca é nil quando acquired é true.
type AccountLocker interface {
	TryLock(ctx context.Context, accountID string) (release func(), acquired bool, err error)
}
