// Package mail contiene los adaptadores de envío de correo.
package mail

import (
	"bytes"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/tu-usuario/textil-crm/internal/application/notification"
	"github.com/tu-usuario/textil-crm/pkg/config"
)

var _ notification.EmailSender = (*GomailSender)(nil)

// GomailSender envía correo real por SMTP.
type GomailSender struct {
	cfg config.SMTPConfig
}

// NewGomailSender construye el sender con la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// Send envía un correo HTML simple.
func (s *GomailSender) Send(to, subject, htmlBody string) error {
	return s.send(to, subject, htmlBody, "", nil)
}

// SendWithAttachment envía un correo HTML con un adjunto en memoria.
func (s *GomailSender) SendWithAttachment(to, subject, htmlBody, filename string, data []byte) error {
	return s.send(to, subject, htmlBody, filename, data)
}

func (s *GomailSender) send(to, subject, htmlBody, filename string, data []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	if filename != "" {
		m.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(data))
			return err
		}))
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("mail: enviando a %s: %w", to, err)
	}
	return nil
}
