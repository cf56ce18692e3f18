package domain

import "fmt"

// Session es una sesión anónima: solo guarda el nombre asignado.
type Session struct {
	Username string `json:"username"`
}

// LogOnMessage construye el anuncio de sistema para un nombre recién asignado.
func LogOnMessage(name string) Message {
	return Message{
		Author: SystemAuthor,
		Text:   fmt.Sprintf("`%s` has logged on.", name),
	}
}
