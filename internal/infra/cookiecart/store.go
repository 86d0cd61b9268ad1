package cookiecart

import (
	"context"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
)

// cartPayload is the JSON body of the signed cookie. Lines keep their
// first-added order, which is why this is a slice rather than a map.
type cartPayload struct {
	Lines []cookieLine `json:"lines"`
}

// cookieLine is one serialized cart line.
type cookieLine struct {
	ProductID int64   `json:"product_id"`
	OptionIDs []int64 `json:"option_ids"`
	Quantity  int32   `json:"quantity"`
	Price     int64   `json:"price"`
}

func (p *cartPayload) find(key string) int {
	for i := range p.Lines {
		if entity.LineKey(p.Lines[i].ProductID, p.Lines[i].OptionIDs) == key {
			return i
		}
	}

	return -1
}

// Store is the cookie-backed implementation of repository.CartLineStore. Each
// call reads the signed cookie from the request's Jar, applies the change and
// writes the cookie back. A malformed or tampered cookie is treated as an
// empty cart and overwritten on the next mutation.
type Store struct {
	codec      *codec
	cookieName string
	maxAge     int

	// refreshPriceOnRepeatAdd makes a repeat add overwrite the snapshotted
	// unit price with the current catalog price. The persistent backend
	// carries the same setting with the opposite value: it keeps the original
	// snapshot. The two constructors set the rule for their backend.
	refreshPriceOnRepeatAdd bool
}

// NewStore builds the cookie cart backend from the cart configuration.
func NewStore(cfg *config.CartConfig) *Store {
	return &Store{
		codec:                   newCodec(cfg.CookieSecret),
		cookieName:              cfg.CookieName,
		maxAge:                  int(cfg.CookieTTL.Seconds()),
		refreshPriceOnRepeatAdd: true,
	}
}

// Add inserts the line or, when a line with the same (product, option set)
// key exists, adds the quantity onto it and refreshes the snapshotted price.
func (s *Store) Add(ctx context.Context, _ entity.Identity, line *entity.CartLine) error {
	jar, payload, err := s.load(ctx)
	if err != nil {
		return err
	}

	normalized := line.OptionIDs.Normalize()
	key := entity.LineKey(line.ProductID, normalized)

	if i := payload.find(key); i >= 0 {
		payload.Lines[i].Quantity += line.Quantity
		if s.refreshPriceOnRepeatAdd {
			payload.Lines[i].Price = line.Price
		}
	} else {
		payload.Lines = append(payload.Lines, cookieLine{
			ProductID: line.ProductID,
			OptionIDs: normalized,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	return s.save(jar, payload)
}

// SetQuantity replaces the quantity of an existing line. A quantity of zero
// or less removes the line.
func (s *Store) SetQuantity(ctx context.Context, identity entity.Identity, productID int64, optionIDs entity.OptionSet, quantity int32) error {
	if quantity <= 0 {
		return s.Remove(ctx, identity, productID, optionIDs)
	}

	jar, payload, err := s.load(ctx)
	if err != nil {
		return err
	}

	i := payload.find(entity.LineKey(productID, optionIDs))
	if i < 0 {
		return repository.ErrCartLineNotFound
	}

	payload.Lines[i].Quantity = quantity

	return s.save(jar, payload)
}

// Remove deletes the line for the given (product, option set) key. Removing a
// line that does not exist is a no-op.
func (s *Store) Remove(ctx context.Context, _ entity.Identity, productID int64, optionIDs entity.OptionSet) error {
	jar, payload, err := s.load(ctx)
	if err != nil {
		return err
	}

	i := payload.find(entity.LineKey(productID, optionIDs))
	if i < 0 {
		return nil
	}

	payload.Lines = append(payload.Lines[:i], payload.Lines[i+1:]...)

	return s.save(jar, payload)
}

// Lines returns every line of the cookie cart in first-added order.
func (s *Store) Lines(ctx context.Context, _ entity.Identity) ([]entity.CartLine, error) {
	_, payload, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]entity.CartLine, 0, len(payload.Lines))
	for _, cl := range payload.Lines {
		lines = append(lines, entity.CartLine{
			ProductID: cl.ProductID,
			OptionIDs: cl.OptionIDs,
			Quantity:  cl.Quantity,
			Price:     cl.Price,
		})
	}

	return lines, nil
}

// Clear removes every line of the cookie cart.
func (s *Store) Clear(ctx context.Context, _ entity.Identity) error {
	jar, _, err := s.load(ctx)
	if err != nil {
		return err
	}

	return s.save(jar, &cartPayload{})
}

func (s *Store) load(ctx context.Context) (Jar, *cartPayload, error) {
	jar, ok := JarFrom(ctx)
	if !ok {
		return nil, nil, errors.New("no cookie jar in context")
	}

	value, ok := jar.Get(s.cookieName)
	if !ok {
		return jar, &cartPayload{}, nil
	}

	payload, err := s.codec.Decode(value)
	if err != nil {
		// A bad signature or malformed payload means an empty cart; the next
		// mutation replaces the cookie with a valid one.
		return jar, &cartPayload{}, nil
	}

	return jar, payload, nil
}

func (s *Store) save(jar Jar, payload *cartPayload) error {
	value, err := s.codec.Encode(payload)
	if err != nil {
		return err
	}

	jar.Set(s.cookieName, value, s.maxAge)

	return nil
}
