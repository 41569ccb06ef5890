package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastanog/restaurante-api/internal/domain"
)

// fakeTx transacción de prueba: el candado es un mutex compartido que se
// toma en el fetch y se libera en Commit/Rollback, igual que un FOR UPDATE.
type fakeTx struct {
	pgx.Tx // los métodos no usados quedan sin implementar

	mu         *sync.Mutex
	release    sync.Once
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	t.release.Do(t.mu.Unlock)
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	t.release.Do(t.mu.Unlock)
	return nil
}

type fakeDB struct {
	mu   sync.Mutex
	txMu sync.Mutex // candado de fila simulado

	last *fakeTx
}

func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	tx := &fakeTx{mu: &db.txMu}
	db.mu.Lock()
	db.last = tx
	db.mu.Unlock()
	return tx, nil
}

// lockRow simula el SELECT ... FOR UPDATE: bloquea hasta obtener el candado.
func lockRow(tx pgx.Tx) {
	tx.(*fakeTx).mu.Lock()
}

func TestFetchForUpdateDevuelveEntidadTrasLaPermanencia(t *testing.T) {
	db := &fakeDB{}
	dwell := 50 * time.Millisecond

	inicio := time.Now()
	got, err := fetchForUpdate(context.Background(), db, dwell, func(tx pgx.Tx) (string, error) {
		lockRow(tx)
		return "fila", nil
	})
	transcurrido := time.Since(inicio)

	require.NoError(t, err)
	assert.Equal(t, "fila", got)
	assert.GreaterOrEqual(t, transcurrido, dwell, "debe retener el candado durante la permanencia completa")
	assert.True(t, db.last.committed, "el candado debe liberarse con commit")
}

func TestFetchForUpdatePropagaNotFoundSinEsperar(t *testing.T) {
	db := &fakeDB{}

	inicio := time.Now()
	_, err := fetchForUpdate(context.Background(), db, 5*time.Second, func(tx pgx.Tx) (string, error) {
		lockRow(tx)
		return "", domain.ErrNotFound
	})
	transcurrido := time.Since(inicio)

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Less(t, transcurrido, time.Second, "un fetch fallido no debe esperar la permanencia")
	assert.True(t, db.last.rolledBack, "el candado debe liberarse con rollback")
}

func TestFetchForUpdateCancelacionAcortaLaPermanencia(t *testing.T) {
	db := &fakeDB{}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	inicio := time.Now()
	got, err := fetchForUpdate(ctx, db, 10*time.Second, func(tx pgx.Tx) (string, error) {
		lockRow(tx)
		return "fila", nil
	})
	transcurrido := time.Since(inicio)

	// La interrupción acorta la espera pero no descarta la lectura.
	require.NoError(t, err)
	assert.Equal(t, "fila", got)
	assert.Less(t, transcurrido, 5*time.Second)
	assert.True(t, db.last.committed, "el candado debe liberarse aunque el contexto se cancele")
}

func TestFetchForUpdateExcluyeLectoresConcurrentes(t *testing.T) {
	db := &fakeDB{}
	dwell := 40 * time.Millisecond

	var wg sync.WaitGroup
	inicio := time.Now()
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fetchForUpdate(context.Background(), db, dwell, func(tx pgx.Tx) (string, error) {
				lockRow(tx)
				return "fila", nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	transcurrido := time.Since(inicio)

	// El segundo lector espera a que el primero suelte el candado: los dos
	// intervalos de permanencia no pueden solaparse sobre la misma fila.
	assert.GreaterOrEqual(t, transcurrido, 2*dwell)
}

func TestHoldLockSinPermanenciaNoEspera(t *testing.T) {
	inicio := time.Now()
	holdLock(context.Background(), 0)
	assert.Less(t, time.Since(inicio), 50*time.Millisecond)
}
