// internal/services/mailer.go
package services

import (
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"

	"github.com/boriwala/catalog-backend/internal/config"
	"github.com/boriwala/catalog-backend/internal/models"
)

// Mailer sends transactional email through SendGrid. Without an API key it
// degrades to a no-op that only logs, so local development needs no account.
type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) enabled() bool {
	return m.cfg.Email.SendGridAPIKey != ""
}

// NotifyEnquiry emails the company inbox about a new product enquiry.
// Callers run it in a goroutine; a failed email never fails the intake.
func (m *Mailer) NotifyEnquiry(e *models.Enquiry) {
	subject := "New Enquiry from " + e.Name
	if e.ProductName != "" {
		subject = fmt.Sprintf("New Enquiry: %s from %s", e.ProductName, e.Name)
	}

	rows := [][2]string{
		{"Name", e.Name},
		{"Phone", e.Phone},
		{"Email", e.Email},
		{"Company", e.CompanyName},
		{"Product", e.ProductName},
		{"Quantity", e.Quantity},
		{"Message", e.Message},
	}
	m.send(m.cfg.Email.EnquiryInbox, subject, detailTable("New Product Enquiry", rows))
}

// NotifySellerEnquiry emails the company inbox about a new sell-to-us lead.
func (m *Mailer) NotifySellerEnquiry(e *models.SellerEnquiry) {
	subject := fmt.Sprintf("New Seller Enquiry: %s from %s", e.MaterialType, e.Name)

	rows := [][2]string{
		{"Name", e.Name},
		{"Phone", e.Phone},
		{"Email", e.Email},
		{"Company", e.CompanyName},
		{"City", e.City},
		{"Material", e.MaterialType},
		{"Quantity", e.Quantity},
		{"Description", e.MaterialDescription},
	}
	m.send(m.cfg.Email.EnquiryInbox, subject, detailTable("New Seller Enquiry", rows))
}

func (m *Mailer) send(to, subject, htmlBody string) {
	if !m.enabled() {
		logrus.WithFields(logrus.Fields{"to": to, "subject": subject}).
			Info("email disabled, skipping send")
		return
	}

	from := mail.NewEmail(m.cfg.Email.FromName, m.cfg.Email.FromEmail)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), "", htmlBody)

	client := sendgrid.NewSendClient(m.cfg.Email.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		logrus.WithError(err).WithField("to", to).Error("failed to send email")
		return
	}
	if resp.StatusCode >= 400 {
		logrus.WithFields(logrus.Fields{
			"to":     to,
			"status": resp.StatusCode,
			"body":   resp.Body,
		}).Error("email provider rejected message")
	}
}

func detailTable(heading string, rows [][2]string) string {
	var b strings.Builder
	b.WriteString("<h2>" + html.EscapeString(heading) + "</h2><table>")
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		b.WriteString(fmt.Sprintf(
			"<tr><td><strong>%s</strong></td><td>%s</td></tr>",
			html.EscapeString(row[0]), html.EscapeString(row[1]),
		))
	}
	b.WriteString("</table>")
	return b.String()
}
