package services

import (
	"context"
	"fmt"
	"log/slog"

	"wishboard/internal/domain"
)

type wishNotifier struct {
	logger   *slog.Logger
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	to       string
	baseURL  string
}

// NewWishNotifier returns a WishNotifier that emails the organizer at to for each
// new wish using the "new_wish" template. An empty to disables sending.
// baseURL, when set, is used to link the admin page.
func NewWishNotifier(logger *slog.Logger, mailer domain.Mailer, renderer domain.EmailTemplateRenderer, to, baseURL string) domain.WishNotifier {
	return &wishNotifier{logger: logger, mailer: mailer, renderer: renderer, to: to, baseURL: baseURL}
}

func (n *wishNotifier) NotifyNewWish(ctx context.Context, event *domain.Event, wish *domain.Wish) error {
	if n.to == "" {
		return nil
	}
	if event == nil || wish == nil {
		return fmt.Errorf("new wish notification data is nil")
	}
	data := &domain.NewWishEmailData{
		To:         n.to,
		EventName:  event.Name,
		EventSlug:  event.Slug,
		SenderName: wish.SenderName,
		Message:    wish.Message,
	}
	if n.baseURL != "" {
		data.AdminURL = n.baseURL + "/admin/" + event.Slug
	}
	subject, htmlBody, textBody, err := n.renderer.Render("new_wish", data)
	if err != nil {
		return fmt.Errorf("failed to render new_wish template: %w", err)
	}
	if err := n.mailer.Send(ctx, n.to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send new wish email: %w", err)
	}
	n.logger.InfoContext(ctx, "new wish email sent", "to", n.to, "event", event.Slug)
	return nil
}
