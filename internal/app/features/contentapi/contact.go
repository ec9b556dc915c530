package contentapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/hydrasite/internal/app/store/ratelimit"
	"github.com/dalemusser/hydrasite/internal/app/system/htmlsanitize"
	"github.com/dalemusser/hydrasite/internal/app/system/inputval"
	"github.com/dalemusser/hydrasite/internal/app/system/jsonutil"
	"github.com/dalemusser/hydrasite/internal/app/system/mailer"
	"github.com/dalemusser/hydrasite/internal/app/system/normalize"
	"github.com/dalemusser/hydrasite/internal/app/system/timeouts"
	"github.com/dalemusser/hydrasite/internal/domain/models"
	"go.uber.org/zap"
)

const (
	maxContactBody = 64 << 10
	contactThanks  = "Thank you for your message. We will contact you soon!"
)

// contactData is the stored message echoed back to the caller.
type contactData struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Contact handles POST /contact.
//
// Request body:
//
//	{"name": "...", "email": "...", "phone": "...", "subject": "...", "message": "..."}
//
// Response (201 Created):
//
//	{"success": true, "message": "...", "data": {"id": 1, ...}}
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	client := h.proxies.ClientIP(r)

	if h.limiter != nil {
		if allowed, _, until := h.limiter.CheckAllowed(ctx, client); !allowed {
			var retry time.Duration
			if until != nil {
				retry = time.Until(*until)
			}
			h.logger.Warn("contact rate limited", zap.String("client", ratelimit.ClientKey(client)))
			jsonutil.TooManyRequests(w, "Too many messages. Please try again later.", retry)
			return
		}
	}

	var in models.ContactSubmission
	if err := jsonutil.DecodeLimited(w, r, &in, maxContactBody); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			jsonutil.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	in = cleanSubmission(in)
	if res := inputval.Validate(in); res.HasErrors() {
		fields := make(map[string]string)
		for field, msg := range res.Fields() {
			fields[strings.ToLower(field)] = msg
		}
		jsonutil.ValidationError(w, fields)
		return
	}

	if h.limiter != nil {
		h.limiter.Record(ctx, client)
	}

	msg, err := h.contacts.Create(ctx, models.ContactMessage{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Subject:  in.Subject,
		Message:  in.Message,
		ClientIP: ratelimit.ClientKey(client),
	})
	if err != nil {
		h.storeError(w, r, "create contact message", err)
		return
	}

	h.logger.Info("contact message stored",
		zap.Int64("id", msg.ID),
		zap.String("reference", msg.Reference),
	)
	h.notify(ctx, msg)

	jsonutil.Created(w, map[string]any{
		"success": true,
		"message": contactThanks,
		"data": contactData{
			ID:        msg.ID,
			Name:      msg.Name,
			Email:     msg.Email,
			Phone:     msg.Phone,
			Subject:   msg.Subject,
			Message:   msg.Message,
			CreatedAt: msg.CreatedAt,
		},
	})
}

// cleanSubmission strips markup and normalizes whitespace before validation.
func cleanSubmission(in models.ContactSubmission) models.ContactSubmission {
	return models.ContactSubmission{
		Name:    normalize.Name(htmlsanitize.StripTags(in.Name)),
		Email:   normalize.Email(in.Email),
		Phone:   normalize.Phone(htmlsanitize.StripTags(in.Phone)),
		Subject: strings.TrimSpace(htmlsanitize.StripTags(in.Subject)),
		Message: normalize.Message(htmlsanitize.StripTags(in.Message)),
	}
}

// notify e-mails the company inbox and, when enabled, the sender. Failures
// are logged and never reach the caller.
func (h *Handler) notify(ctx context.Context, msg models.ContactMessage) {
	if !h.mail.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	settings, err := h.settings.Get(ctx)
	if err != nil {
		h.logger.Warn("contact notify: load settings", zap.Error(err))
		settings = models.DefaultSiteSettings()
	}

	if settings.Email != "" {
		text, html := mailer.ContactNotificationEmail(mailer.ContactNotificationEmailData{
			CompanyName: settings.CompanyNameEN,
			Name:        msg.Name,
			Email:       msg.Email,
			Phone:       msg.Phone,
			Subject:     msg.Subject,
			Message:     msg.Message,
			ReceivedAt:  msg.CreatedAt.Format("2006-01-02 15:04:05 MST"),
		})
		if err := h.mail.Send(ctx, mailer.Email{
			To:       settings.Email,
			ReplyTo:  msg.Email,
			Subject:  mailer.ContactNotificationSubject(msg.Subject),
			TextBody: text,
			HTMLBody: html,
		}); err != nil {
			h.logger.Warn("contact notify: notification not sent", zap.Int64("id", msg.ID), zap.Error(err))
		}
	}

	if !h.autoReply {
		return
	}
	text, html := mailer.ContactAutoReplyEmail(mailer.ContactAutoReplyEmailData{
		CompanyName: settings.CompanyNameEN,
		Name:        msg.Name,
		Subject:     msg.Subject,
	})
	if err := h.mail.Send(ctx, mailer.Email{
		To:       msg.Email,
		Subject:  mailer.ContactAutoReplySubject(settings.CompanyNameEN),
		TextBody: text,
		HTMLBody: html,
	}); err != nil {
		h.logger.Warn("contact notify: auto-reply not sent", zap.Int64("id", msg.ID), zap.Error(err))
	}
}
