package barcode_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslanavm/stok-api/internal/application/barcode"
	"github.com/aslanavm/stok-api/internal/domain"
	"github.com/aslanavm/stok-api/pkg/logger"
)

func newTestBroker(ttl time.Duration) *barcode.Broker {
	return barcode.NewBroker(ttl, logger.Nop())
}

// ── entrega única ─────────────────────────────────────────────────────────────

func TestBroker_EntregaLlegaAlQueEspera(t *testing.T) {
	b := newTestBroker(0)
	id := b.Open()

	got := make(chan string, 1)
	go func() {
		code, err := b.Await(context.Background(), id)
		require.NoError(t, err)
		got <- code
	}()

	// Dar tiempo a que el Await quede bloqueado antes de entregar.
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, b.Deliver(id, "869012345678"))

	select {
	case code := <-got:
		assert.Equal(t, "869012345678", code)
	case <-time.After(time.Second):
		t.Fatal("el Await nunca recibió el código entregado")
	}
	assert.Equal(t, 0, b.Active(), "la sesión se desmonta tras la entrega")
}

func TestBroker_EntregaAntesDeEsperarTambienLlega(t *testing.T) {
	b := newTestBroker(0)
	id := b.Open()

	require.NoError(t, b.Deliver(id, "869055544433"))
	assert.Equal(t, 1, b.Active(), "el código queda pendiente de recogida")

	code, err := b.Await(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "869055544433", code,
		"el canal con buffer conserva el código aunque nadie esperara aún")
	assert.Equal(t, 0, b.Active(), "la recogida desmonta la sesión")
}

func TestBroker_SegundaEntregaFalla(t *testing.T) {
	b := newTestBroker(0)
	id := b.Open()

	require.NoError(t, b.Deliver(id, "primero"))
	err := b.Deliver(id, "segundo")

	assert.ErrorIs(t, err, domain.ErrConflict,
		"la entrega es single-shot: el segundo lector pierde la carrera")
}

func TestBroker_EntregaASesionInexistente(t *testing.T) {
	b := newTestBroker(0)
	err := b.Deliver("no-existe", "869")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── liberación garantizada ────────────────────────────────────────────────────

func TestBroker_CancelarContextoLiberaLaSesion(t *testing.T) {
	b := newTestBroker(0)
	id := b.Open()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := b.Await(ctx, id)
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("el Await no despertó con la cancelación")
	}
	assert.Equal(t, 0, b.Active(), "el desmontaje del que espera libera la sesión")
}

func TestBroker_TTLExpiraLaSesion(t *testing.T) {
	b := newTestBroker(20 * time.Millisecond)
	id := b.Open()

	assert.Eventually(t, func() bool { return b.Active() == 0 },
		time.Second, 5*time.Millisecond, "la sesión debe expirar sola tras el TTL")

	err := b.Deliver(id, "tarde")
	assert.ErrorIs(t, err, domain.ErrNotFound, "una entrega tras la expiración no encuentra sesión")
}

func TestBroker_CloseDespiertaAlQueEspera(t *testing.T) {
	b := newTestBroker(0)
	id := b.Open()

	done := make(chan error, 1)
	go func() {
		_, err := b.Await(context.Background(), id)
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	b.Close(id)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, domain.ErrNotFound)
	case <-time.After(time.Second):
		t.Fatal("el Await no despertó con el cierre")
	}
}

// TestBroker_EntregaContraCierreConcurrente hace correr Deliver y Close sobre
// la misma sesión muchas veces. Si el cierre gana la ventana entre la búsqueda
// y el envío, Deliver debe reportar la sesión como perdida, nunca un éxito
// falso con un código irrecuperable; correr con -race.
func TestBroker_EntregaContraCierreConcurrente(t *testing.T) {
	b := newTestBroker(0)

	for i := 0; i < 200; i++ {
		id := b.Open()

		var wg sync.WaitGroup
		var deliverErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			deliverErr = b.Deliver(id, "869012345678")
		}()
		go func() {
			defer wg.Done()
			b.Close(id)
		}()
		wg.Wait()

		if deliverErr == nil {
			// Entrega aceptada: o la vista recoge el código, o el cierre
			// posterior ya lo descartó; en ambos casos la sesión terminó.
			b.Close(id)
		} else {
			assert.ErrorIs(t, deliverErr, domain.ErrNotFound,
				"el cierre ganó la carrera: la entrega reporta sesión perdida")
		}
		assert.Equal(t, 0, b.Active(), "ninguna sesión queda colgada tras la carrera")
	}
}

func TestBroker_CloseIdempotente(t *testing.T) {
	b := newTestBroker(0)
	id := b.Open()

	b.Close(id)
	b.Close(id)
	b.Close("no-existe")

	assert.Equal(t, 0, b.Active())
}

func TestBroker_ShutdownCierraTodasLasSesiones(t *testing.T) {
	b := newTestBroker(0)
	b.Open()
	b.Open()
	b.Open()
	require.Equal(t, 3, b.Active())

	b.Shutdown()

	assert.Equal(t, 0, b.Active())
}

func TestBroker_SesionesIndependientes(t *testing.T) {
	b := newTestBroker(0)
	first := b.Open()
	second := b.Open()

	require.NoError(t, b.Deliver(first, "aaa"))

	code, err := b.Await(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, "aaa", code)
	assert.Equal(t, 1, b.Active(), "entregar y recoger en una sesión no toca a las demás")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err = b.Await(ctx, second)
	assert.ErrorIs(t, err, context.DeadlineExceeded,
		"la segunda sesión sigue sin código: su Await expira por su propio contexto")
}
