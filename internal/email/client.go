package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"strconv"
	"time"

	"github.com/nasch/prestabanco_backend/internal/config"
	"github.com/wneessen/go-mail"
)

// Puerto SMTPS con TLS implícito; el resto usa STARTTLS obligatorio
const implicitTLSPort = 465

// Client envía los avisos de solicitudes por SMTP
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
	timeout   time.Duration
}

// NewClientFromConfig crea el cliente SMTP con los datos SMTP_* de la configuración
func NewClientFromConfig(cfg *config.Config) (*Client, error) {
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil || port <= 0 {
		return nil, fmt.Errorf("SMTP_PORT inválido: %q", cfg.SMTPPort)
	}
	if cfg.SMTPHost == "" || cfg.SMTPFromEmail == "" {
		return nil, fmt.Errorf("SMTP_HOST y SMTP_FROM_EMAIL son requeridos")
	}

	return &Client{
		host:      cfg.SMTPHost,
		port:      port,
		user:      cfg.SMTPUser,
		password:  cfg.SMTPPassword,
		fromName:  cfg.SMTPFromName,
		fromEmail: cfg.SMTPFromEmail,
		timeout:   cfg.SMTPTimeout,
	}, nil
}

func (c *Client) newMessage(to, subject, htmlBody string) (*mail.Msg, error) {
	m := mail.NewMsg()

	if err := m.FromFormat(c.fromName, c.fromEmail); err != nil {
		return nil, fmt.Errorf("remitente inválido: %w", err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("destinatario inválido: %w", err)
	}

	m.Subject(subject)
	m.SetDate()
	m.SetMessageID()
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	return m, nil
}

// options arma las opciones de conexión; sin usuario no se autentica
func (c *Client) options() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(c.port),
		mail.WithTLSConfig(&tls.Config{ServerName: c.host}),
	}
	if c.port == implicitTLSPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	if c.timeout > 0 {
		opts = append(opts, mail.WithTimeout(c.timeout))
	}
	if c.user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(c.user),
			mail.WithPassword(c.password),
		)
	}
	return opts
}

// SendEmail envía un correo HTML. El envío se corta al cancelarse ctx
// o al vencer el timeout configurado.
func (c *Client) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	m, err := c.newMessage(to, subject, htmlBody)
	if err != nil {
		return err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	client, err := mail.NewClient(c.host, c.options()...)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP %s:%d: %w", c.host, c.port, err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("error al enviar aviso a %s vía %s:%d: %w", to, c.host, c.port, err)
	}

	return nil
}
