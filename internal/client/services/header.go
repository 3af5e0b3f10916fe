package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/whportal/internal/client/client"
	"github.com/dmitrijs2005/whportal/internal/client/ui"
	"github.com/dmitrijs2005/whportal/internal/common"
	"github.com/dmitrijs2005/whportal/internal/logging"
)

// HeaderService loads the shared header fragment.
type HeaderService interface {
	// Load fetches and parses header.html, then calls attach synchronously
	// with the result. attach is not called when loading fails.
	Load(ctx context.Context, attach func(*ui.Header)) error
}

type headerService struct {
	client client.Client
	log    logging.Logger
}

func NewHeaderService(c client.Client, log logging.Logger) HeaderService {
	return &headerService{client: c, log: log}
}

func (s *headerService) Load(ctx context.Context, attach func(*ui.Header)) error {
	b, err := s.client.FetchFragment(ctx, common.PageHeader)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", common.PageHeader, err)
	}

	h, err := ui.ParseHeader(b)
	if err != nil {
		return err
	}

	s.log.Debug(ctx, "header fragment parsed", "bytes", len(b))
	attach(h)
	return nil
}
