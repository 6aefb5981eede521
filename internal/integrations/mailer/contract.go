package mailer

// Logger interfaz mínima de logging que consume el mailer
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
