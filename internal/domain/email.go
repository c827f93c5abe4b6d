package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// NewWishEmailData holds data for the new-wish notification email.
type NewWishEmailData struct {
	To         string
	EventName  string
	EventSlug  string
	SenderName string
	Message    string
	AdminURL   string
}

// WishNotifier is told about every stored wish.
type WishNotifier interface {
	NotifyNewWish(ctx context.Context, event *Event, wish *Wish) error
}
