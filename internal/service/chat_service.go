package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"chatroom/internal/domain"
	"chatroom/internal/repository"
)

// ChatCore es el contrato que consumen los adaptadores de transporte
// (REST, GraphQL, gRPC). Ninguna operación observa cancelación.
type ChatCore interface {
	PostMessage(msg domain.Message) domain.ChatLogEntry
	Messages() []domain.ChatLogEntry
	GetName() (string, error)
	AnnounceSession() (string, error)
	EntryCount() int
}

// publishQueueSize acota las entradas pendientes de difundir; si la cola se
// llena las nuevas se descartan y el append no se bloquea.
const publishQueueSize = 256

// ChatService une el historial, el generador de nombres y el anunciador.
type ChatService struct {
	logger    *zap.Logger
	log       *publishingChatLog
	names     NameSource
	announcer *SessionAnnouncer
}

// NewChatService envuelve el historial para que cada append se encole en el
// mismo orden del store. Una única goroutine vacía la cola hacia publisher;
// Close la detiene.
func NewChatService(
	logger *zap.Logger,
	log repository.ChatLogRepository,
	names NameSource,
	publisher EntryPublisher,
) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if publisher == nil {
		publisher = NewNopEntryPublisher()
	}
	published := &publishingChatLog{
		ChatLogRepository: log,
		publisher:         publisher,
		logger:            logger,
		queue:             make(chan domain.ChatLogEntry, publishQueueSize),
		done:              make(chan struct{}),
	}
	go published.run()
	return &ChatService{
		logger:    logger,
		log:       published,
		names:     names,
		announcer: NewSessionAnnouncer(names, published),
	}
}

func (s *ChatService) PostMessage(msg domain.Message) domain.ChatLogEntry {
	return s.log.Append(msg)
}

func (s *ChatService) Messages() []domain.ChatLogEntry {
	return s.log.Snapshot()
}

func (s *ChatService) GetName() (string, error) {
	name, err := s.names.GetName()
	if err != nil {
		s.logNameFailure(err)
		return "", err
	}
	return name, nil
}

func (s *ChatService) AnnounceSession() (string, error) {
	name, err := s.announcer.AnnounceSession()
	if err != nil {
		s.logNameFailure(err)
		return "", err
	}
	s.logger.Info("session announced", zap.String("username", name))
	return name, nil
}

func (s *ChatService) EntryCount() int {
	return s.log.Len()
}

// Close deja de aceptar entradas para difundir y espera a que se publiquen
// las que ya estaban en cola. Los appends posteriores se guardan igual.
func (s *ChatService) Close() {
	s.log.close()
}

func (s *ChatService) logNameFailure(err error) {
	var invariant *NameInvariantError
	if errors.As(err, &invariant) {
		s.logger.Error("word lists violate pairing invariant",
			zap.String("animal", invariant.Animal),
			zap.Int("attempts", invariant.Attempts),
		)
		return
	}
	s.logger.Error("name generation failed", zap.Error(err))
}

type publishingChatLog struct {
	repository.ChatLogRepository
	publisher EntryPublisher
	logger    *zap.Logger

	// mu ordena append y encolado: la cola ve las entradas en el orden del store.
	mu     sync.Mutex
	closed bool
	queue  chan domain.ChatLogEntry
	done   chan struct{}
	once   sync.Once
}

func (p *publishingChatLog) Append(msg domain.Message) domain.ChatLogEntry {
	entry, queued := p.appendAndEnqueue(msg)
	if !queued {
		p.logger.Warn("entry publish dropped", zap.String("author", entry.Author))
	}
	return entry
}

func (p *publishingChatLog) appendAndEnqueue(msg domain.Message) (domain.ChatLogEntry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry := p.ChatLogRepository.Append(msg)
	if p.closed {
		return entry, true
	}
	select {
	case p.queue <- entry:
		return entry, true
	default:
		return entry, false
	}
}

func (p *publishingChatLog) run() {
	defer close(p.done)
	for entry := range p.queue {
		if err := p.publisher.Publish(context.Background(), entry); err != nil {
			p.logger.Warn("entry publish failed", zap.Error(err), zap.String("author", entry.Author))
		}
	}
}

func (p *publishingChatLog) close() {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.queue)
		p.mu.Unlock()
	})
	<-p.done
}
