package mailer

import "errors"

var (
	// ErrSendFailed se devuelve cuando el SMTP rechaza o no responde.
	// Todos los envíos son best-effort: el workflow lo registra y sigue.
	ErrSendFailed = errors.New("mailer: failed to send email")
)
