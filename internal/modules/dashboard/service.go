package dashboard

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"motoinventory/internal/backend"
	"motoinventory/internal/domain"
)

// Stats are the five live summary figures.
type Stats struct {
	Motorcycles int
	Pieces      int
	Clients     int
	Orders      int
	Revenue     float64
}

// fallbackStats replaces ALL five figures when any of the four reads fails;
// there is deliberately no partial-success handling, a populated card grid
// beats accurate-but-holey numbers on this screen.
var fallbackStats = Stats{
	Motorcycles: 24,
	Pieces:      156,
	Clients:     48,
	Orders:      32,
	Revenue:     24500,
}

// Service aggregates the four collection reads into the stat cards.
type Service struct {
	motorcycles *backend.Resource[domain.Motorcycle]
	pieces      *backend.Resource[domain.Piece]
	clients     *backend.Resource[domain.Client]
	orders      *backend.Resource[domain.Order]
}

func NewService(client *backend.Client) *Service {
	return &Service{
		motorcycles: backend.NewResource[domain.Motorcycle](client, "/motorcycles"),
		pieces:      backend.NewResource[domain.Piece](client, "/pieces"),
		clients:     backend.NewResource[domain.Client](client, "/clients"),
		orders:      backend.NewResource[domain.Order](client, "/orders"),
	}
}

// Stats issues the four reads in parallel. Counts are the list lengths,
// revenue sums totalPrice over all orders.
func (s *Service) Stats(ctx context.Context) Stats {
	var (
		motorcycles []domain.Motorcycle
		pieces      []domain.Piece
		clients     []domain.Client
		orders      []domain.Order
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		motorcycles, err = s.motorcycles.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		pieces, err = s.pieces.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		clients, err = s.clients.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		orders, err = s.orders.List(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Printf("dashboard_fallback error=%v", err)
		return fallbackStats
	}

	var revenue float64
	for _, o := range orders {
		revenue += float64(o.TotalPrice)
	}

	return Stats{
		Motorcycles: len(motorcycles),
		Pieces:      len(pieces),
		Clients:     len(clients),
		Orders:      len(orders),
		Revenue:     revenue,
	}
}
