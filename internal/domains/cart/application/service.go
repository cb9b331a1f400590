package application

import (
	"context"

	catalogdomain "github.com/slicelab/pizza-store-api/internal/domains/catalog/domain"
	"github.com/slicelab/pizza-store-api/internal/domains/cart/domain"
	"github.com/slicelab/pizza-store-api/internal/domains/cart/ports"
)

// Service orchestrates cart use cases. Unit prices are computed once at
// add-time from the catalog and snapshotted on the line item; later catalog
// changes never reprice items already in a cart.
type Service struct {
	menu  *catalogdomain.Menu
	store ports.Store
}

func NewService(menu *catalogdomain.Menu, store ports.Store) *Service {
	return &Service{menu: menu, store: store}
}

func (s *Service) AddItem(ctx context.Context, input ports.AddItemInput) (domain.LineItem, error) {
	if input.Quantity <= 0 {
		return domain.LineItem{}, ErrInvalidQuantity
	}
	pizza, ok := s.menu.PizzaByID(input.PizzaID)
	if !ok {
		return domain.LineItem{}, ErrUnknownPizza
	}
	unitPrice := s.menu.UnitPrice(pizza.BasePrice, input.Size, input.Toppings)

	cart, err := s.store.Get(ctx, input.SessionID)
	if err != nil {
		return domain.LineItem{}, err
	}
	item, _ := cart.AddItem(pizza.ID, pizza.Name, input.Size, input.Toppings, input.Quantity, unitPrice)
	if err := s.store.Save(ctx, input.SessionID, cart); err != nil {
		return domain.LineItem{}, err
	}
	return item, nil
}

func (s *Service) SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) error {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	cart.SetQuantity(itemID, quantity)
	return s.store.Save(ctx, sessionID, cart)
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	cart.RemoveItem(itemID)
	return s.store.Save(ctx, sessionID, cart)
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

func (s *Service) View(ctx context.Context, sessionID string) (ports.View, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return ports.View{}, err
	}
	return ports.View{Items: cart.Items(), Summary: cart.Summarize()}, nil
}

var _ ports.Service = (*Service)(nil)
