package core

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/asredigitalgroup-rgb/disti-board/internal/config"
	"github.com/asredigitalgroup-rgb/disti-board/internal/store"
)

// Service provides the dashboard's business logic over two tabular stores:
// the products store (one table per category) and the board store (users,
// favorites, audit log, category configuration).
//
// The backing store is shared and unlocked; concurrent mutations of the
// same row are last-writer-wins.
type Service struct {
	products store.Store
	board    store.Store
	cfg      *config.Config
	collator *collate.Collator
}

// NewService creates a Service over the given stores. The configuration is
// treated as immutable for the Service's lifetime.
func NewService(products, board store.Store, cfg *config.Config) *Service {
	tag, err := language.Parse(cfg.Inventory.Locale)
	if err != nil {
		tag = language.Und
	}
	return &Service{
		products: products,
		board:    board,
		cfg:      cfg,
		collator: collate.New(tag),
	}
}

// qtyLevel derives the stock indicator from a quantity. An absent quantity
// counts as zero.
func (s *Service) qtyLevel(qty Number) QtyLevel {
	v := 0.0
	if qty.Valid {
		v = qty.Value
	}
	switch {
	case v >= s.cfg.Inventory.QtyGreen:
		return QtyIn
	case v >= s.cfg.Inventory.QtyYellow:
		return QtyLow
	default:
		return QtyOut
	}
}
