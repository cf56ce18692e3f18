package service

import (
	"chatroom/internal/domain"
	"chatroom/internal/repository"
)

// NameSource es cualquier cosa capaz de asignar un nombre de usuario.
type NameSource interface {
	GetName() (string, error)
}

// SessionAnnouncer asigna un nombre y deja constancia en el historial con un
// mensaje de SYSTEM.
type SessionAnnouncer struct {
	names NameSource
	log   repository.ChatLogRepository
}

func NewSessionAnnouncer(names NameSource, log repository.ChatLogRepository) *SessionAnnouncer {
	return &SessionAnnouncer{names: names, log: log}
}

// AnnounceSession no es transaccional: el nombre queda asignado aunque el
// anuncio falle, no hay rollback.
func (a *SessionAnnouncer) AnnounceSession() (string, error) {
	name, err := a.names.GetName()
	if err != nil {
		return "", err
	}
	a.log.Append(domain.LogOnMessage(name))
	return name, nil
}
