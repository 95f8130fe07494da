package tx

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// txTimeout caps every transaction, provider calls made inside one included.
const txTimeout = 10 * time.Second

// Manager runs closures inside a pgx transaction stored in the context.
// Nested Do calls join the outer transaction.
type Manager struct {
	internal *manager.Manager
	settings pgxv5.Settings
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		settings: pgxv5.MustSettings(
			settings.Must(settings.WithTimeout(txTimeout)),
			pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}),
		),
	}
}

// Do runs fn under READ COMMITTED. Delivery transitions take row locks
// (SELECT ... FOR UPDATE) on the rows they mutate, which serializes
// concurrent webhooks for the same order without serialization failures
// between unrelated orders.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.internal.DoWithSettings(ctx, m.settings, fn)
}
