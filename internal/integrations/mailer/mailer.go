package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/ysiverio/reservasBarberia/internal/domain"
)

// Mailer envía los correos de confirmación, cancelación y reagendamiento.
//
// Every send is a best-effort side effect: callers log failures and never
// fail the reservation transition because of them.
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	subject string
	log     Logger
}

// New creates the SMTP mailer.
func New(host string, port int, user, password, from, subject string, log Logger) *Mailer {
	return &Mailer{
		dialer:  gomail.NewDialer(host, port, user, password),
		from:    from,
		subject: subject,
		log:     log,
	}
}

// SendConfirmation manda el correo de reserva confirmada con el link de
// cancelación.
func (m *Mailer) SendConfirmation(res *domain.Reservation, cancelURL string) error {
	body := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">¡Reserva confirmada!</h2>
  <p>Hola <strong>%s</strong>,</p>
  <p>Tu reserva ha sido confirmada exitosamente.</p>
  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Detalles de la reserva:</h3>
    <p><strong>Fecha:</strong> %s</p>
    <p><strong>Hora:</strong> %s</p>
  </div>
  <p>Para cancelar o reagendar tu reserva, utiliza este link:</p>
  <p><a href="%s" style="color: #dc3545; text-decoration: none;">Gestionar reserva</a></p>
  <p>Saludos,<br><strong>Barbería</strong></p>
</div>`,
		res.CustomerName, formatSpanishDate(res.Date), res.Time, cancelURL)

	return m.send(res.CustomerEmail, m.subject, body)
}

// SendCancellation manda el aviso de reserva cancelada.
func (m *Mailer) SendCancellation(res *domain.Reservation, reason string) error {
	body := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Reserva cancelada</h2>
  <p>Hola <strong>%s</strong>,</p>
  <p>Tu reserva del <strong>%s</strong> a las <strong>%s</strong> fue cancelada.</p>
  <p><strong>Motivo:</strong> %s</p>
  <p>Puedes hacer una nueva reserva cuando quieras.</p>
  <p>Saludos,<br><strong>Barbería</strong></p>
</div>`,
		res.CustomerName, formatSpanishDate(res.Date), res.Time, reason)

	return m.send(res.CustomerEmail, "Reserva cancelada - Barbería", body)
}

// SendReschedule manda el aviso de reserva reagendada con el nuevo link.
func (m *Mailer) SendReschedule(old, updated *domain.Reservation, cancelURL string) error {
	body := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Reserva reagendada</h2>
  <p>Hola <strong>%s</strong>,</p>
  <p>Tu reserva fue reagendada exitosamente.</p>
  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Antes:</strong> %s a las %s</p>
    <p><strong>Ahora:</strong> %s a las %s</p>
  </div>
  <p>Para gestionar la nueva reserva, utiliza este link:</p>
  <p><a href="%s" style="color: #dc3545; text-decoration: none;">Gestionar reserva</a></p>
  <p>Saludos,<br><strong>Barbería</strong></p>
</div>`,
		updated.CustomerName,
		formatSpanishDate(old.Date), old.Time,
		formatSpanishDate(updated.Date), updated.Time,
		cancelURL)

	return m.send(updated.CustomerEmail, "Reserva reagendada - Barbería", body)
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, to, err)
	}

	m.log.Info("send: email %q delivered to %s", subject, to)
	return nil
}

var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// formatSpanishDate renders "martes, 3 de junio de 2025".
func formatSpanishDate(d time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		spanishWeekdays[d.Weekday()], d.Day(), spanishMonths[d.Month()-1], d.Year())
}
