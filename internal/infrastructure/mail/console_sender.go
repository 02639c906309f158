package mail

import (
	"github.com/tu-usuario/textil-crm/internal/application/notification"
	"github.com/tu-usuario/textil-crm/pkg/logger"
)

var _ notification.EmailSender = (*ConsoleSender)(nil)

// ConsoleSender escribe el correo en el log en lugar de enviarlo. Es el sender
// por defecto cuando no hay SMTP configurado (desarrollo y tests).
type ConsoleSender struct {
	log *logger.Logger
}

// NewConsoleSender construye el sender de consola.
func NewConsoleSender(log *logger.Logger) *ConsoleSender {
	return &ConsoleSender{log: log.Component("mail-console")}
}

// Send registra el correo en el log.
func (s *ConsoleSender) Send(to, subject, htmlBody string) error {
	s.log.Info().Str("to", to).Str("subject", subject).Int("body_len", len(htmlBody)).Msg("correo simulado")
	return nil
}

// SendWithAttachment registra el correo y el adjunto en el log.
func (s *ConsoleSender) SendWithAttachment(to, subject, htmlBody, filename string, data []byte) error {
	s.log.Info().
		Str("to", to).
		Str("subject", subject).
		Str("attachment", filename).
		Int("attachment_size", len(data)).
		Msg("correo simulado con adjunto")
	return nil
}
