package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
// A cart is one row; its lines are a JSONB column written together with the total.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindByUserID retrieves the user's cart without locking it.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return repo.findByUserID(repo.db.WithContext(ctx), userID)
}

// FindByUserIDForUpdate retrieves the user's cart with SELECT ... FOR UPDATE.
func (repo *cartRepository) FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return repo.findByUserID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID)
}

func (repo *cartRepository) findByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := db.
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user ID")
	}

	return toCartDomain(&cartM), nil
}

// CreateIfNotExists inserts an empty cart, relying on the unique user_id to absorb races.
func (repo *cartRepository) CreateIfNotExists(ctx context.Context, userID uuid.UUID) error {
	cartM := &model.CartModel{
		ID:          uuid.New(),
		UserID:      userID,
		Items:       []model.CartLineModel{},
		TotalAmount: entity.NewEmptyCart(userID).TotalAmount(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(cartM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	return nil
}

// Save writes the line list and the recomputed total in one UPDATE.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	now := time.Now()
	cartM := &model.CartModel{
		Items:       fromCartLinesDomain(cart.Lines),
		TotalAmount: cart.TotalAmount(),
		UpdatedAt:   now,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("user_id = ?", cart.UserID).
		Select("items", "total_amount", "updated_at").
		Updates(cartM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	cart.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	lines := make(entity.CartLines, 0, len(data.Items))
	for _, line := range data.Items {
		lines = append(lines, entity.CartLine{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Lines:     lines,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartLinesDomain(lines entity.CartLines) []model.CartLineModel {
	data := make([]model.CartLineModel, 0, len(lines))
	for _, line := range lines {
		data = append(data, model.CartLineModel{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	return data
}
