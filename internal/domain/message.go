package domain

import "time"

// SystemAuthor es el autor de los mensajes generados por el propio servidor.
const SystemAuthor = "SYSTEM"

// Message es el mensaje tal como lo envía un cliente.
type Message struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// ChatLogEntry es un mensaje ya registrado en el historial. El timestamp lo
// asigna el store al momento del append, nunca el cliente.
type ChatLogEntry struct {
	Message
	Timestamp time.Time `json:"timestamp"`
}
