package port

import "context"

// EventListenerPort - контракт для входящих слушателей событий (очереди).
// Start блокируется до отмены контекста или фатальной ошибки.
type EventListenerPort interface {
	Start(ctx context.Context) error
	Close() error
}
