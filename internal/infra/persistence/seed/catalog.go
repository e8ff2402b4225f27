// Package seed holds the demo catalog used by local runs and the seed command.
package seed

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type sampleItem struct {
	name        string
	description string
	price       int64
	category    entity.Category
	image       string
	stock       int
	rating      float64
	reviews     int
}

//nolint:gochecknoglobals
var sampleItems = []sampleItem{
	{"iPhone 15 Pro", "Latest iPhone with advanced camera system and A17 Pro chip", 999, entity.CategoryElectronics,
		"https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=300&h=300&fit=crop", 50, 4.8, 120},
	{"Samsung Galaxy S24", "Premium Android smartphone with AI-powered features", 899, entity.CategoryElectronics,
		"https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=300&h=300&fit=crop", 30, 4.7, 95},
	{"Nike Air Max 270", "Comfortable running shoes with Max Air cushioning", 150, entity.CategoryClothing,
		"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=300&h=300&fit=crop", 100, 4.5, 200},
	{"Adidas Ultraboost 22", "High-performance running shoes with Boost technology", 180, entity.CategoryClothing,
		"https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=300&h=300&fit=crop", 75, 4.6, 150},
	{"The Great Gatsby", "Classic American novel by F. Scott Fitzgerald", 12, entity.CategoryBooks,
		"https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=300&h=300&fit=crop", 200, 4.3, 500},
	{"To Kill a Mockingbird", "Harper Lee's masterpiece about justice and morality", 14, entity.CategoryBooks,
		"https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=300&fit=crop", 150, 4.7, 800},
	{"Coffee Maker Deluxe", "Programmable coffee maker with built-in grinder", 89, entity.CategoryHomeGarden,
		"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=300&h=300&fit=crop", 40, 4.4, 120},
	{"Yoga Mat Premium", "Non-slip yoga mat with carrying strap", 35, entity.CategorySports,
		"https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=300&h=300&fit=crop", 80, 4.2, 90},
	{"Skincare Set", "Complete skincare routine with cleanser, toner, and moisturizer", 65, entity.CategoryBeauty,
		"https://images.unsplash.com/photo-1570194065650-d99fb4bedf0a?w=300&h=300&fit=crop", 60, 4.5, 75},
	{"LEGO Creator Set", "Build and rebuild 3 different models with this creative set", 45, entity.CategoryToys,
		"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=300&h=300&fit=crop", 120, 4.8, 300},
}

// SampleItems returns fresh copies of the demo catalog, stamped with now.
func SampleItems(now time.Time) []*entity.Item {
	items := make([]*entity.Item, 0, len(sampleItems))
	for _, s := range sampleItems {
		items = append(items, &entity.Item{
			ID:          uuid.New(),
			Name:        s.name,
			Description: s.description,
			Price:       decimal.NewFromInt(s.price),
			Category:    s.category,
			Image:       s.image,
			Stock:       s.stock,
			Rating:      s.rating,
			Reviews:     s.reviews,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return items
}

// Catalog inserts the demo catalog through repo and returns the created items.
func Catalog(ctx context.Context, repo repository.ItemRepository, logger *slog.Logger) ([]*entity.Item, error) {
	items := SampleItems(time.Now().UTC())
	for _, item := range items {
		if err := repo.Create(ctx, item); err != nil {
			return nil, errors.Wrapf(err, "failed to seed item %q", item.Name)
		}
	}

	logger.Info("Seeded demo catalog", slog.Int("items", len(items)))

	return items, nil
}
