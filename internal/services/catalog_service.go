package services

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"lottery-system/internal/status"
	"lottery-system/internal/store"
	"lottery-system/models"
	"lottery-system/monitoring"
)

type CatalogOptions struct {
	Monitor *monitoring.Monitor
}

// CatalogService owns the draws, published results, sale inventory and FAQs.
// Inputs are trusted; updates and deletes of unknown ids leave the collection
// as it was but still persist it.
type CatalogService struct {
	store   store.Store
	monitor *monitoring.Monitor

	mu         sync.RWMutex
	draws      []models.LotteryDraw
	structures models.PrizeStructures
	inventory  []models.LotteryItem
	faqs       []models.FAQItem
}

func NewCatalogService(ctx context.Context, st store.Store, opts CatalogOptions) (*CatalogService, error) {
	c := &CatalogService{store: st, monitor: opts.Monitor}

	var err error
	if c.draws, err = loadOrSeed(ctx, st, c.monitor, store.KeyDraws, seedDraws); err != nil {
		return nil, err
	}
	if c.structures, err = loadOrSeed(ctx, st, c.monitor, store.KeyPrizeStructures, seedPrizeStructures); err != nil {
		return nil, err
	}
	if c.structures == nil {
		c.structures = models.PrizeStructures{}
	}
	if c.inventory, err = loadOrSeed(ctx, st, c.monitor, store.KeyInventory, seedInventory); err != nil {
		return nil, err
	}
	if c.faqs, err = loadOrSeed(ctx, st, c.monitor, store.KeyFAQs, seedFAQs); err != nil {
		return nil, err
	}

	return c, nil
}

func drawID(d models.LotteryDraw) string { return d.ID }
func itemID(i models.LotteryItem) string { return i.ID }
func faqID(f models.FAQItem) string      { return f.ID }

func replaceByID[T any](items []T, item T, idOf func(T) string) []T {
	out := slices.Clone(items)
	id := idOf(item)
	for i := range out {
		if idOf(out[i]) == id {
			out[i] = item
		}
	}
	return out
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, v := range items {
		if idOf(v) != id {
			out = append(out, v)
		}
	}
	return out
}

// AddDraw places draw at the front of the draw list.
func (c *CatalogService) AddDraw(ctx context.Context, draw models.LotteryDraw) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	draws := append([]models.LotteryDraw{draw}, c.draws...)
	if err := saveCollection(ctx, c.store, c.monitor, store.KeyDraws, draws); err != nil {
		return err
	}
	c.draws = draws

	slog.Info("Draw added", "draw_id", draw.ID, "code", draw.Code)
	return nil
}

func (c *CatalogService) UpdateDraw(ctx context.Context, draw models.LotteryDraw) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	draws := replaceByID(c.draws, draw, drawID)
	if err := saveCollection(ctx, c.store, c.monitor, store.KeyDraws, draws); err != nil {
		return err
	}
	c.draws = draws
	return nil
}

func (c *CatalogService) DeleteDraw(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	draws := removeByID(c.draws, id, drawID)
	if err := saveCollection(ctx, c.store, c.monitor, store.KeyDraws, draws); err != nil {
		return err
	}
	c.draws = draws

	slog.Info("Draw deleted", "draw_id", id)
	return nil
}

// UpdatePrizeStructure replaces the results for code. Other codes are untouched.
func (c *CatalogService) UpdatePrizeStructure(ctx context.Context, code string, tiers []models.PrizeTier) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tiers == nil {
		tiers = []models.PrizeTier{}
	}

	structures := cloneStructures(c.structures)
	structures[code] = cloneTiers(tiers)
	if err := saveCollection(ctx, c.store, c.monitor, store.KeyPrizeStructures, structures); err != nil {
		return err
	}
	c.structures = structures

	slog.Info("Prize structure updated", "code", code, "tiers", len(tiers))
	return nil
}

// AddLotteryItem appends item to the sale inventory.
func (c *CatalogService) AddLotteryItem(ctx context.Context, item models.LotteryItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	inventory := append(slices.Clone(c.inventory), item)
	if err := saveCollection(ctx, c.store, c.monitor, store.KeyInventory, inventory); err != nil {
		return err
	}
	c.inventory = inventory
	return nil
}

func (c *CatalogService) UpdateLotteryItem(ctx context.Context, item models.LotteryItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	inventory := replaceByID(c.inventory, item, itemID)
	if err := saveCollection(ctx, c.store, c.monitor, store.KeyInventory, inventory); err != nil {
		return err
	}
	c.inventory = inventory
	return nil
}

func (c *CatalogService) DeleteLotteryItem(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	inventory := removeByID(c.inventory, id, itemID)
	if err := saveCollection(ctx, c.store, c.monitor, store.KeyInventory, inventory); err != nil {
		return err
	}
	c.inventory = inventory
	return nil
}

func (c *CatalogService) AddFAQ(ctx context.Context, faq models.FAQItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	faqs := append(slices.Clone(c.faqs), faq)
	if err := saveCollection(ctx, c.store, c.monitor, store.KeyFAQs, faqs); err != nil {
		return err
	}
	c.faqs = faqs
	return nil
}

func (c *CatalogService) UpdateFAQ(ctx context.Context, faq models.FAQItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	faqs := replaceByID(c.faqs, faq, faqID)
	if err := saveCollection(ctx, c.store, c.monitor, store.KeyFAQs, faqs); err != nil {
		return err
	}
	c.faqs = faqs
	return nil
}

func (c *CatalogService) DeleteFAQ(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	faqs := removeByID(c.faqs, id, faqID)
	if err := saveCollection(ctx, c.store, c.monitor, store.KeyFAQs, faqs); err != nil {
		return err
	}
	c.faqs = faqs
	return nil
}

func (c *CatalogService) Draws() []models.LotteryDraw {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.draws)
}

func (c *CatalogService) Draw(id string) (models.LotteryDraw, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := slices.IndexFunc(c.draws, func(d models.LotteryDraw) bool { return d.ID == id })
	if idx < 0 {
		return models.LotteryDraw{}, false
	}
	return c.draws[idx], true
}

func (c *CatalogService) DrawByCode(code string) (models.LotteryDraw, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := slices.IndexFunc(c.draws, func(d models.LotteryDraw) bool { return d.Code == code })
	if idx < 0 {
		return models.LotteryDraw{}, false
	}
	return c.draws[idx], true
}

func (c *CatalogService) PrizeStructures() models.PrizeStructures {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneStructures(c.structures)
}

// PrizeStructure returns the tiers published for code, empty when pending.
func (c *CatalogService) PrizeStructure(code string) []models.PrizeTier {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tiers := cloneTiers(c.structures[code])
	if tiers == nil {
		return []models.PrizeTier{}
	}
	return tiers
}

func (c *CatalogService) Inventory() []models.LotteryItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.inventory)
}

func (c *CatalogService) LotteryItem(id string) (models.LotteryItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := slices.IndexFunc(c.inventory, func(i models.LotteryItem) bool { return i.ID == id })
	if idx < 0 {
		return models.LotteryItem{}, status.ErrItemNotFound
	}
	return c.inventory[idx], nil
}

func (c *CatalogService) FAQs() []models.FAQItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.faqs)
}
