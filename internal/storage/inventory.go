package storage

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"opsboard/internal/repository"
	"opsboard/internal/stock"
)

// StockItem is an inventory row annotated with its classification.
type StockItem struct {
	repository.InventoryItem
	StockLevel stock.Level `json:"stock_level"`
	Threshold  int         `json:"threshold"`
}

func annotate(items []repository.InventoryItem) []StockItem {
	out := make([]StockItem, 0, len(items))
	for _, item := range items {
		out = append(out, StockItem{
			InventoryItem: item,
			StockLevel:    stock.Classify(item.Quantity, item.MinQuantity),
			Threshold:     stock.Threshold(item.MinQuantity),
		})
	}
	return out
}

func (s *PostgresStorage) CreateItem(ctx context.Context, item *repository.InventoryItem) error {
	if item.Name == "" {
		return fmt.Errorf("item name is required: %w", ErrInvalidInput)
	}
	if item.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative: %w", ErrInvalidInput)
	}
	item.CreatedAt = time.Now().UTC()

	if err := s.inventory.Create(ctx, item); err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}
	zap.S().Infow("inventory item created", "item_id", item.ID, "name", item.Name)
	return nil
}

func (s *PostgresStorage) GetItem(ctx context.Context, id int64) (*repository.InventoryItem, error) {
	return s.inventory.GetByID(ctx, id)
}

func (s *PostgresStorage) GetItemByBarcode(ctx context.Context, barcode string) (*repository.InventoryItem, error) {
	if barcode == "" {
		return nil, fmt.Errorf("barcode is required: %w", ErrInvalidInput)
	}
	return s.inventory.GetByBarcode(ctx, barcode)
}

func (s *PostgresStorage) UpdateItem(ctx context.Context, item *repository.InventoryItem) error {
	if item.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative: %w", ErrInvalidInput)
	}
	return s.inventory.Update(ctx, item)
}

func (s *PostgresStorage) AdjustQuantity(ctx context.Context, id int64, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("quantity cannot be negative: %w", ErrInvalidInput)
	}
	return s.inventory.UpdateQuantity(ctx, id, quantity)
}

func (s *PostgresStorage) DeleteItem(ctx context.Context, id int64) error {
	return s.inventory.Delete(ctx, id)
}

func (s *PostgresStorage) ListItems(ctx context.Context) ([]StockItem, error) {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	return annotate(items), nil
}

// LowStockItems returns out-of-stock and low items, most urgent first.
func (s *PostgresStorage) LowStockItems(ctx context.Context) ([]StockItem, error) {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	low := stock.FilterLow(items)
	stock.SortByUrgency(low)
	return annotate(low), nil
}

func (s *PostgresStorage) GetInventoryStats(ctx context.Context) (*stock.Stats, error) {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := stock.Summarize(items)
	return &stats, nil
}
