// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"html/template"
	"strings"
)

// ContactNotificationEmailData contains the data for the message sent to the
// company inbox when a visitor submits the contact form.
type ContactNotificationEmailData struct {
	CompanyName string
	Name        string
	Email       string
	Phone       string // empty when not provided
	Subject     string
	Message     string
	ReceivedAt  string // Formatted timestamp
}

// ContactNotificationSubject returns the subject line for a contact notification.
func ContactNotificationSubject(subject string) string {
	return "New Contact Form Submission: " + subject
}

// ContactNotificationEmail generates both plain text and HTML versions of the
// contact notification.
func ContactNotificationEmail(data ContactNotificationEmailData) (textBody, htmlBody string) {
	phone := data.Phone
	if strings.TrimSpace(phone) == "" {
		phone = "Not provided"
	}

	textBody = "New contact form submission from " + data.CompanyName + " website:\n\n" +
		"Name: " + data.Name + "\n" +
		"Email: " + data.Email + "\n" +
		"Phone: " + phone + "\n" +
		"Subject: " + data.Subject + "\n\n" +
		"Message:\n" + data.Message + "\n\n" +
		"---\n" +
		"Received at: " + data.ReceivedAt

	view := struct {
		ContactNotificationEmailData
		PhoneText string
	}{data, phone}

	var buf bytes.Buffer
	contactNotificationHTMLTmpl.Execute(&buf, view)
	htmlBody = buf.String()

	return textBody, htmlBody
}

// ContactAutoReplyEmailData contains the data for the acknowledgement sent to
// the visitor.
type ContactAutoReplyEmailData struct {
	CompanyName string
	Name        string
	Subject     string
}

// ContactAutoReplySubject returns the subject line for the acknowledgement.
func ContactAutoReplySubject(companyName string) string {
	return "Thank you for contacting " + companyName
}

// ContactAutoReplyEmail generates both plain text and HTML versions of the
// acknowledgement.
func ContactAutoReplyEmail(data ContactAutoReplyEmailData) (textBody, htmlBody string) {
	textBody = "Dear " + data.Name + ",\n\n" +
		"Thank you for contacting " + data.CompanyName + ". We have received your message regarding \"" + data.Subject + "\".\n\n" +
		"Our team will review your inquiry and get back to you as soon as possible.\n\n" +
		"Best regards,\n" +
		data.CompanyName + " Team\n\n" +
		"---\n" +
		"This is an automated response. Please do not reply to this email."

	var buf bytes.Buffer
	contactAutoReplyHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

var contactNotificationHTMLTmpl = template.Must(template.New("contact_notification").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Contact Form Submission</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f4f4f5;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 560px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <!-- Header -->
          <tr>
            <td style="padding: 32px 32px 24px 32px; text-align: center; border-bottom: 1px solid #e4e4e7;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #18181b;">{{.CompanyName}}</h1>
            </td>
          </tr>
          <!-- Content -->
          <tr>
            <td style="padding: 32px;">
              <h2 style="margin: 0 0 16px 0; font-size: 20px; font-weight: 600; color: #18181b;">New Contact Form Submission</h2>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="font-size: 15px; line-height: 1.6; color: #52525b;">
                <tr><td style="padding: 4px 0; width: 90px; font-weight: 600;">Name</td><td>{{.Name}}</td></tr>
                <tr><td style="padding: 4px 0; font-weight: 600;">Email</td><td><a href="mailto:{{.Email}}" style="color: #2563eb;">{{.Email}}</a></td></tr>
                <tr><td style="padding: 4px 0; font-weight: 600;">Phone</td><td>{{.PhoneText}}</td></tr>
                <tr><td style="padding: 4px 0; font-weight: 600;">Subject</td><td>{{.Subject}}</td></tr>
              </table>
              <p style="margin: 24px 0 8px 0; font-size: 15px; font-weight: 600; color: #18181b;">Message</p>
              <p style="margin: 0; font-size: 15px; line-height: 1.6; color: #52525b; white-space: pre-wrap;" dir="auto">{{.Message}}</p>
            </td>
          </tr>
          <!-- Footer -->
          <tr>
            <td style="padding: 24px 32px; background-color: #fafafa; border-top: 1px solid #e4e4e7; border-radius: 0 0 8px 8px;">
              <p style="margin: 0; font-size: 13px; color: #71717a; text-align: center;">Received at {{.ReceivedAt}}</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))

var contactAutoReplyHTMLTmpl = template.Must(template.New("contact_auto_reply").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Thank you for contacting {{.CompanyName}}</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f4f4f5;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f4f4f5;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1);">
          <!-- Header -->
          <tr>
            <td style="padding: 32px 32px 24px 32px; text-align: center; border-bottom: 1px solid #e4e4e7;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #18181b;">{{.CompanyName}}</h1>
            </td>
          </tr>
          <!-- Content -->
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 16px 0; font-size: 15px; line-height: 1.6; color: #52525b;">Dear {{.Name}},</p>
              <p style="margin: 0 0 16px 0; font-size: 15px; line-height: 1.6; color: #52525b;">
                Thank you for contacting {{.CompanyName}}. We have received your message regarding &ldquo;{{.Subject}}&rdquo;.
              </p>
              <p style="margin: 0 0 24px 0; font-size: 15px; line-height: 1.6; color: #52525b;">
                Our team will review your inquiry and get back to you as soon as possible.
              </p>
              <p style="margin: 0; font-size: 15px; line-height: 1.6; color: #52525b;">Best regards,<br>{{.CompanyName}} Team</p>
            </td>
          </tr>
          <!-- Footer -->
          <tr>
            <td style="padding: 24px 32px; background-color: #fafafa; border-top: 1px solid #e4e4e7; border-radius: 0 0 8px 8px;">
              <p style="margin: 0; font-size: 13px; color: #71717a; text-align: center;">
                This is an automated response. Please do not reply to this email.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`))
