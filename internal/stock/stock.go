// Package stock classifies inventory levels against a per-item minimum.
package stock

import (
	"sort"

	"opsboard/internal/repository"
)

// DefaultThreshold applies when an item has no min_quantity of its own.
const DefaultThreshold = 5

type Level string

const (
	LevelOut     Level = "out"
	LevelLow     Level = "low"
	LevelHealthy Level = "healthy"
)

// Threshold resolves the effective minimum for an item.
func Threshold(minQuantity *int) int {
	if minQuantity == nil {
		return DefaultThreshold
	}
	return *minQuantity
}

// Classify buckets a quantity: out at zero, low at or below the threshold,
// healthy above it.
func Classify(quantity int, minQuantity *int) Level {
	switch {
	case quantity == 0:
		return LevelOut
	case quantity <= Threshold(minQuantity):
		return LevelLow
	default:
		return LevelHealthy
	}
}

// Slack is quantity minus threshold; the most negative slack is the most
// urgent restock.
func Slack(item repository.InventoryItem) int {
	return item.Quantity - Threshold(item.MinQuantity)
}

// FilterLow keeps items at or below their threshold, including out-of-stock.
func FilterLow(items []repository.InventoryItem) []repository.InventoryItem {
	low := make([]repository.InventoryItem, 0)
	for _, item := range items {
		if Classify(item.Quantity, item.MinQuantity) != LevelHealthy {
			low = append(low, item)
		}
	}
	return low
}

// SortByUrgency orders items ascending by slack, most urgent first. The
// sort is stable so equally urgent items keep their incoming order.
func SortByUrgency(items []repository.InventoryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return Slack(items[i]) < Slack(items[j])
	})
}

// Stats summarizes a collection for the dashboard.
type Stats struct {
	Healthy int `json:"healthy"`
	Low     int `json:"low"`
	Out     int `json:"out"`
}

func Summarize(items []repository.InventoryItem) Stats {
	var s Stats
	for _, item := range items {
		switch Classify(item.Quantity, item.MinQuantity) {
		case LevelOut:
			s.Out++
		case LevelLow:
			s.Low++
		default:
			s.Healthy++
		}
	}
	return s
}
