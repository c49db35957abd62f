// Package barcode implementa el broker de sesiones de escaneo. El decodificador
// de cámara vive en el cliente (widget externo); el broker es el contrato del
// lado servidor: la vista que necesita un código abre una sesión y espera, el
// widget entrega el primer código decodificado y la sesión se desmonta al
// recogerlo.
//
// Contrato: entrega única (el primer Deliver gana, los siguientes fallan) y
// liberación garantizada del recurso en todas las salidas: entrega exitosa,
// cierre manual, cancelación del contexto del que espera, o expiración por TTL.
package barcode

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aslanavm/stok-api/internal/domain"
	"github.com/aslanavm/stok-api/pkg/logger"
)

// DefaultTTL es la vida máxima de una sesión sin entrega ni cierre.
const DefaultTTL = 2 * time.Minute

type session struct {
	id     string
	result chan string   // buffered(1): Deliver nunca bloquea
	done   chan struct{} // cerrado en el teardown
	once   sync.Once
	timer  *time.Timer
}

// Broker registra sesiones de escaneo activas.
type Broker struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	log      *logger.Logger
}

// NewBroker construye el broker. ttl <= 0 usa DefaultTTL.
func NewBroker(ttl time.Duration, log *logger.Logger) *Broker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Broker{
		sessions: make(map[string]*session),
		ttl:      ttl,
		log:      log,
	}
}

// Open crea una sesión y devuelve su ID. La sesión expira sola tras el TTL
// si nadie entrega ni cierra.
func (b *Broker) Open() string {
	s := &session{
		id:     uuid.New().String(),
		result: make(chan string, 1),
		done:   make(chan struct{}),
	}
	s.timer = time.AfterFunc(b.ttl, func() {
		b.log.Debug().Str("session_id", s.id).Msg("sesión de escaneo expirada")
		b.Close(s.id)
	})

	b.mu.Lock()
	b.sessions[s.id] = s
	b.mu.Unlock()
	return s.id
}

// Deliver entrega el código decodificado a la sesión, exactamente una vez.
// El código queda pendiente de recogida hasta el Await o el TTL, así una
// entrega que gana la carrera al long-poll no se pierde. Devuelve ErrNotFound
// si la sesión no existe o ya terminó, y ErrConflict si otro Deliver ya ganó.
func (b *Broker) Deliver(id, code string) error {
	b.mu.Lock()
	s, ok := b.sessions[id]
	b.mu.Unlock()
	if !ok {
		return domain.ErrNotFound
	}

	delivered := false
	s.once.Do(func() {
		s.result <- code
		delivered = true
	})
	if !delivered {
		return domain.ErrConflict
	}

	// Si un cierre o el TTL desmontaron la sesión entre la búsqueda y el
	// envío, nadie podrá recoger el código: reportar la sesión como perdida
	// en vez de un éxito falso.
	b.mu.Lock()
	_, alive := b.sessions[id]
	b.mu.Unlock()
	if !alive {
		return domain.ErrNotFound
	}
	return nil
}

// Await bloquea hasta que llegue el código, se cancele el contexto del caller
// o la sesión termine por cierre/TTL. El recurso se libera en todos los casos.
func (b *Broker) Await(ctx context.Context, id string) (string, error) {
	b.mu.Lock()
	s, ok := b.sessions[id]
	b.mu.Unlock()
	if !ok {
		return "", domain.ErrNotFound
	}

	select {
	case code := <-s.result:
		b.teardown(s)
		return code, nil
	case <-s.done:
		// Cerrada por el usuario o expirada; si el código llegó en la misma
		// ventana, entregarlo igual (la entrega ya se aceptó).
		select {
		case code := <-s.result:
			return code, nil
		default:
			return "", domain.ErrNotFound
		}
	case <-ctx.Done():
		// El componente que esperaba se desmontó: liberar la sesión.
		b.Close(id)
		return "", ctx.Err()
	}
}

// Close desmonta la sesión. Idempotente: cerrar una sesión inexistente o ya
// cerrada no hace nada.
func (b *Broker) Close(id string) {
	b.mu.Lock()
	s, ok := b.sessions[id]
	b.mu.Unlock()
	if !ok {
		return
	}
	b.teardown(s)
}

// Shutdown desmonta todas las sesiones abiertas. Se usa en el apagado del
// proceso para despertar a los que esperan en Await.
func (b *Broker) Shutdown() {
	b.mu.Lock()
	open := make([]*session, 0, len(b.sessions))
	for _, s := range b.sessions {
		open = append(open, s)
	}
	b.mu.Unlock()
	for _, s := range open {
		b.teardown(s)
	}
}

// Active devuelve el número de sesiones abiertas (para tests y diagnóstico).
func (b *Broker) Active() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}

func (b *Broker) teardown(s *session) {
	b.mu.Lock()
	_, ok := b.sessions[s.id]
	delete(b.sessions, s.id)
	b.mu.Unlock()
	if !ok {
		return
	}
	s.timer.Stop()
	close(s.done)
}
