package smtp

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/orincore/glitzfusion/internal/config"
	mail "github.com/wneessen/go-mail"
)

// Attachment carries one binary artifact. A non-empty CID embeds the
// file inline (referenced as cid:{CID} from the HTML body); otherwise
// it is attached as a regular file.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
	CID         string
}

type Message struct {
	To      string
	From    string
	Subject string
	HTML    string
	Text    string

	// Assembly order is preserved on the wire: invoice PDF first,
	// then ticket images.
	Attachments []Attachment
}

// Sender is the transport seam the dispatcher depends on; tests swap
// in a recording double.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

type Client struct {
	from string
	mc   *mail.Client
}

// New builds the reusable SMTP client. The underlying client manages
// connection reuse safely for sequential sends.
func New(cfg config.SMTPConfig) (*Client, error) {
	const op = "smtp.New"

	if !cfg.Configured() {
		return nil, fmt.Errorf("%s:%w", op, ErrNotConfigured)
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(30 * time.Second),
	}

	if cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	mc, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &Client{from: cfg.From, mc: mc}, nil
}

func (c *Client) Send(ctx context.Context, m *Message) error {
	const op = "smtp.Send"

	msg := mail.NewMsg()

	from := m.From
	if from == "" {
		from = c.from
	}

	if err := msg.From(from); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	if err := msg.To(m.To); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, m.HTML)

	for _, a := range m.Attachments {
		var fileOpts []mail.FileOption
		if a.ContentType != "" {
			fileOpts = append(fileOpts, mail.WithFileContentType(mail.ContentType(a.ContentType)))
		}

		// go-mail uses the filename as the content-id, so inline
		// attachments carry their CID as filename.
		var err error
		if a.CID != "" {
			err = msg.EmbedReader(a.CID, bytes.NewReader(a.Content), fileOpts...)
		} else {
			err = msg.AttachReader(a.Filename, bytes.NewReader(a.Content), fileOpts...)
		}
		if err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}
	}

	if err := c.mc.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}
