package worker

import (
	"context"
	"log/slog"

	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/usecase/commands"
)

// OfferSweeper periodically reclaims lapsed offers and refills the affected queues.
type OfferSweeper struct {
	*loop
	admission commands.AdmissionCommands
}

func NewOfferSweeper(admission commands.AdmissionCommands, cfg config.Config, logger *slog.Logger) *OfferSweeper {
	s := &OfferSweeper{admission: admission}
	s.loop = newLoop("offer-sweeper", cfg.Offer.SweepInterval, s.RunOnce, logger)
	return s
}

func (s *OfferSweeper) RunOnce(ctx context.Context) error {
	_, err := s.admission.ExpireOffers(ctx)
	return err
}
