package mail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/smtp"
	"strings"
	"time"
)

// Config holds mail provider settings.
type Config struct {
	Enable    bool   `json:"enable"`
	Host      string `json:"host"`
	Port      int    `json:"port"`
	User      string `json:"user"`
	Pass      string `json:"pass"`
	From      string `json:"from"`
	To        string `json:"to"`
	ReplyTo   string `json:"reply_to"`
	UseResend bool   `json:"use_resend"`
	ResendKey string `json:"resend_key"`
}

// Message is a single email to send.
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Sender sends emails via SMTP or Resend.
type Sender struct {
	cfg Config
}

func New(cfg Config) *Sender {
	return &Sender{cfg: cfg}
}

// Send dispatches an email. Uses Resend if configured, otherwise SMTP.
func (s *Sender) Send(msg Message) error {
	if !s.cfg.Enable {
		return nil
	}
	if s.cfg.UseResend && s.cfg.ResendKey != "" {
		return s.sendResend(msg)
	}
	return s.sendSMTP(msg)
}

// sendSMTP sends via net/smtp.
func (s *Sender) sendSMTP(msg Message) error {
	host := s.cfg.Host
	port := s.cfg.Port
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString(fmt.Sprintf("From: %s\r\n", from))
	body.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ", ")))
	body.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	body.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	if s.cfg.ReplyTo != "" {
		body.WriteString(fmt.Sprintf("Reply-To: %s\r\n", s.cfg.ReplyTo))
	}
	body.WriteString("\r\n")
	body.WriteString(msg.HTML)

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, host)
	return smtp.SendMail(addr, auth, from, msg.To, body.Bytes())
}

// sendResend sends via the Resend HTTP API.
func (s *Sender) sendResend(msg Message) error {
	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"from":    from,
		"to":      msg.To,
		"subject": msg.Subject,
		"html":    msg.HTML,
	})

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.ResendKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("resend error %d: %s", resp.StatusCode, errResp.Message)
	}
	return nil
}

const contactNotifyTpl = `<!DOCTYPE html>
<html>
<body style="font-family:ui-sans-serif,system-ui,-apple-system,BlinkMacSystemFont,Segoe UI,Roboto,Helvetica Neue,Arial,sans-serif;background:#f5f5f5;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border-radius:8px;padding:24px">
  <h2 style="color:#333;margin-top:0">New Contact Form Submission</h2>
  <p style="font-size:14px;line-height:24px;color:#333"><strong>Name:</strong> {{.Name}}</p>
  <p style="font-size:14px;line-height:24px;color:#333"><strong>Email:</strong> {{.Email}}</p>
  {{if .Phone}}<p style="font-size:14px;line-height:24px;color:#333"><strong>Phone:</strong> {{.Phone}}</p>{{end}}
  <p style="font-size:14px;line-height:24px;color:#333"><strong>Subject:</strong> {{.Subject}}</p>
  <p style="font-size:14px;line-height:24px;color:#333"><strong>Message:</strong></p>
  <div style="background:#f3f4f6;border-radius:8px;padding:12px 16px">
    <p style="font-size:13px;line-height:22px;margin:0;color:#333">{{.Message}}</p>
  </div>
  <hr style="width:100%;border:none;border-top:1px solid #eaeaea;margin:26px 0" />
  <p style="font-size:10px;line-height:24px;margin:0;text-align:center;color:#9ca3af">This message was sent automatically. Reply directly to reach the sender.<br />&copy;{{year}} {{.SiteName}}</p>
</div>
</body>
</html>`

// ContactNotifyData is the data for contact notification emails.
type ContactNotifyData struct {
	Name     string
	Email    string
	Phone    string
	Subject  string
	Message  string
	SiteName string
}

func renderTemplate(tpl string, data interface{}) (string, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"year": func() int {
			return time.Now().Year()
		},
	}).Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderContactNotify renders the contact notification body.
func RenderContactNotify(data ContactNotifyData) (string, error) {
	if strings.TrimSpace(data.SiteName) == "" {
		data.SiteName = "Portfolio"
	}
	return renderTemplate(contactNotifyTpl, data)
}

// SendContactNotify sends a contact form notification to the site owner.
func (s *Sender) SendContactNotify(data ContactNotifyData) error {
	to := strings.TrimSpace(s.cfg.To)
	if to == "" {
		to = s.cfg.User
	}
	html, err := RenderContactNotify(data)
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      []string{to},
		Subject: fmt.Sprintf("Portfolio Contact: %s", data.Subject),
		HTML:    html,
	})
}
