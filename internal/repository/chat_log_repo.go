package repository

import (
	"sync"
	"time"

	"chatroom/internal/domain"
)

// ChatLogRepository es el historial append-only del chat.
type ChatLogRepository interface {
	Append(msg domain.Message) domain.ChatLogEntry
	Snapshot() []domain.ChatLogEntry
	Len() int
}

// MemoryChatLogRepository guarda el historial en memoria de proceso. Un único
// mutex serializa los appends y las copias; nunca se hace I/O con el lock tomado.
type MemoryChatLogRepository struct {
	mu      sync.Mutex
	entries []domain.ChatLogEntry
	now     func() time.Time
}

// MemoryChatLogOption configura un MemoryChatLogRepository.
type MemoryChatLogOption func(*MemoryChatLogRepository)

// WithClock reemplaza el reloj usado para sellar las entradas.
func WithClock(now func() time.Time) MemoryChatLogOption {
	return func(r *MemoryChatLogRepository) {
		if now != nil {
			r.now = now
		}
	}
}

// NewMemoryChatLogRepository crea un historial vacío; por defecto usa time.Now en UTC.
func NewMemoryChatLogRepository(opts ...MemoryChatLogOption) *MemoryChatLogRepository {
	r := &MemoryChatLogRepository{
		entries: []domain.ChatLogEntry{},
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Append sella el mensaje con la hora actual y lo agrega al final del historial.
// Si el reloj retrocede se reutiliza el timestamp de la última entrada, así el
// orden de append coincide siempre con el orden de timestamp.
func (r *MemoryChatLogRepository) Append(msg domain.Message) domain.ChatLogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := r.now()
	if n := len(r.entries); n > 0 {
		if last := r.entries[n-1].Timestamp; ts.Before(last) {
			ts = last
		}
	}
	entry := domain.ChatLogEntry{Message: msg, Timestamp: ts}
	r.entries = append(r.entries, entry)
	return entry
}

// Snapshot devuelve una copia del historial completo, de la más antigua a la más nueva.
func (r *MemoryChatLogRepository) Snapshot() []domain.ChatLogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.ChatLogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len devuelve la cantidad de entradas guardadas.
func (r *MemoryChatLogRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
