package tx

import (
	"context"
	"sync"
)

type txKey struct{}

// Manager сериализует составные операции над in-memory хранилищами.
// Вложенный Do выполняется в уже открытой транзакции.
type Manager struct {
	mu sync.Mutex
}

// New создаёт новый менеджер транзакций.
func New() *Manager {
	return &Manager{}
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, true))
}

func InTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}
