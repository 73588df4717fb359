package repository

import (
	"context"
	"errors"

	"bookswap/internal/models"
	"bookswap/internal/observability"

	"gorm.io/gorm"
)

// ExchangeFilter holds the optional listing filters for exchanges,
// conjunctive when both are given. UserID matches the initiator exactly.
// OwnerID matches indirectly: exchanges whose book belongs to that owner.
type ExchangeFilter struct {
	UserID  *uint
	OwnerID *uint
}

// ExchangeRepository defines persistence operations for exchanges.
type ExchangeRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Exchange, error)
	List(ctx context.Context, filter ExchangeFilter) ([]models.Exchange, error)
	Create(ctx context.Context, exchange *models.Exchange) error
	Update(ctx context.Context, exchange *models.Exchange) error
	Delete(ctx context.Context, id uint) error
}

type exchangeRepository struct {
	db *gorm.DB
}

// NewExchangeRepository returns a new ExchangeRepository implementation.
func NewExchangeRepository(db *gorm.DB) ExchangeRepository {
	return &exchangeRepository{db: db}
}

func (r *exchangeRepository) GetByID(ctx context.Context, id uint) (*models.Exchange, error) {
	var exchange models.Exchange
	if err := r.db.WithContext(ctx).First(&exchange, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Exchange", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &exchange, nil
}

func (r *exchangeRepository) List(ctx context.Context, filter ExchangeFilter) ([]models.Exchange, error) {
	defer observability.TrackQuery("list", "exchanges")()

	query := r.db.WithContext(ctx)
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.OwnerID != nil {
		// An owner with no books yields an empty IN set and therefore an
		// empty result, not an error.
		sub := r.db.Model(&models.Book{}).Select("id").Where("owner_id = ?", *filter.OwnerID)
		query = query.Where("book_id IN (?)", sub)
	}

	var exchanges []models.Exchange
	if err := query.Find(&exchanges).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return exchanges, nil
}

func (r *exchangeRepository) Create(ctx context.Context, exchange *models.Exchange) error {
	defer observability.TrackQuery("create", "exchanges")()

	if err := r.db.WithContext(ctx).Create(exchange).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *exchangeRepository) Update(ctx context.Context, exchange *models.Exchange) error {
	if err := r.db.WithContext(ctx).Save(exchange).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *exchangeRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "exchanges")()

	if err := r.db.WithContext(ctx).Delete(&models.Exchange{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
