package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"wishboard/internal/domain"
)

// CSVHeader is the first row of every wish export.
var CSVHeader = []string{"id", "sender_name", "message", "created_at"}

type exportService struct {
	eventRepo      domain.EventRepository
	wishRepo       domain.WishRepository
	contextTimeout time.Duration
}

// NewExportService returns a domain.ExportService.
func NewExportService(eventRepo domain.EventRepository, wishRepo domain.WishRepository, timeout time.Duration) domain.ExportService {
	return &exportService{
		eventRepo:      eventRepo,
		wishRepo:       wishRepo,
		contextTimeout: timeout,
	}
}

func (s *exportService) ExportWishesCSV(ctx context.Context, slug string) (*domain.Export, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := getEventBySlug(ctx, s.eventRepo, slug)
	if err != nil {
		return nil, err
	}
	wishes, err := s.wishRepo.ListByEventID(ctx, event.ID, domain.NewestFirst, 0)
	if err != nil {
		return nil, fmt.Errorf("list wishes: %w", err)
	}

	var buf bytes.Buffer
	if err := WriteWishesCSV(&buf, wishes); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return &domain.Export{
		Filename:    "wishes_" + event.Slug + ".csv",
		ContentType: "text/csv; charset=utf-8",
		Content:     buf.Bytes(),
	}, nil
}

// WriteWishesCSV writes the header row followed by one row per wish, in the given order.
func WriteWishesCSV(w io.Writer, wishes []*domain.Wish) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, wish := range wishes {
		if err := cw.Write([]string{
			strconv.FormatInt(wish.ID, 10),
			wish.SenderName,
			wish.Message,
			wish.CreatedAt.UTC().Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
