package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketplace-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

const listingsTable = "listings"

var listingColumns = []string{
	"account_id",
	"external_item_id",
	"title",
	"status",
	"price",
	"available_quantity",
	"sold_quantity",
	"shipping_modes",
	"logistic_types",
	"shipping_mode",
	"logistic_type",
	"inventory_id",
	"has_description",
	"has_pictures",
	"has_tax_data",
	"has_low_quality_photos",
	"min_photo_dimension",
	"photo_count",
	"quality_score",
	"synced_at",
}

//go:generate mockgen -source=listing.go -destination=mocks/listing_mocks.go -package=mocks
type ListingRepository interface {
	SaveOrUpdate(ctx context.Context, listing *domain.Listing) error
	ListByAccount(ctx context.Context, accountID string, statuses []domain.ListingStatus) ([]*domain.Listing, error)
	MarkInactiveExcept(ctx context.Context, accountID string, seenIDs []string) (int64, error)
}

type listingRepository struct {
	conn *postgres.Connection
}

func NewListingRepository(conn *postgres.Connection) ListingRepository {
	return &listingRepository{
		conn: conn,
	}
}

// SaveOrUpdate faz upsert pela chave natural (account_id, external_item_id)
func (r *listingRepository) SaveOrUpdate(ctx context.Context, listing *domain.Listing) error {
	query, args, err := squirrel.
		Insert(listingsTable).
		Columns(listingColumns...).
		Values(
			listing.AccountID,
			listing.ExternalItemID,
			listing.Title,
			string(listing.Status),
			listing.Price,
			listing.AvailableQuantity,
			listing.SoldQuantity,
			pq.Array(nonNilStrings(listing.ShippingModes)),
			pq.Array(nonNilStrings(listing.LogisticTypes)),
			listing.ShippingMode,
			listing.LogisticType,
			listing.InventoryID,
			listing.HasDescription,
			listing.HasPictures,
			listing.HasTaxData,
			listing.HasLowQualityPhotos,
			listing.MinPhotoDimension,
			listing.PhotoCount,
			listing.QualityScore,
			listing.SyncedAt,
		).
		Suffix(`ON CONFLICT (account_id, external_item_id) DO UPDATE SET
			title = EXCLUDED.title,
			status = EXCLUDED.status,
			price = EXCLUDED.price,
			available_quantity = EXCLUDED.available_quantity,
			sold_quantity = EXCLUDED.sold_quantity,
			shipping_modes = EXCLUDED.shipping_modes,
			logistic_types = EXCLUDED.logistic_types,
			shipping_mode = EXCLUDED.shipping_mode,
			logistic_type = EXCLUDED.logistic_type,
			inventory_id = EXCLUDED.inventory_id,
			has_description = EXCLUDED.has_description,
			has_pictures = EXCLUDED.has_pictures,
			has_tax_data = EXCLUDED.has_tax_data,
			has_low_quality_photos = EXCLUDED.has_low_quality_photos,
			min_photo_dimension = EXCLUDED.min_photo_dimension,
			photo_count = EXCLUDED.photo_count,
			quality_score = EXCLUDED.quality_score,
			synced_at = EXCLUDED.synced_at,
			updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return &domain.PersistenceError{Resource: domain.ResourceProducts, Key: listing.ExternalItemID, Err: wrapDBError(err)}
	}

	return nil
}

// ListByAccount lista anúncios da conta; statuses vazio retorna todos
func (r *listingRepository) ListByAccount(ctx context.Context, accountID string, statuses []domain.ListingStatus) ([]*domain.Listing, error) {
	builder := squirrel.
		Select(listingColumns...).
		From(listingsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("external_item_id").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, string(s))
		}
		builder = builder.Where(squirrel.Eq{"status": values})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	listings := make([]*domain.Listing, 0)
	for rows.Next() {
		l := &domain.Listing{}
		var status string
		var inventoryID sql.NullString

		if err := rows.Scan(
			&l.AccountID,
			&l.ExternalItemID,
			&l.Title,
			&status,
			&l.Price,
			&l.AvailableQuantity,
			&l.SoldQuantity,
			pq.Array(&l.ShippingModes),
			pq.Array(&l.LogisticTypes),
			&l.ShippingMode,
			&l.LogisticType,
			&inventoryID,
			&l.HasDescription,
			&l.HasPictures,
			&l.HasTaxData,
			&l.HasLowQualityPhotos,
			&l.MinPhotoDimension,
			&l.PhotoCount,
			&l.QualityScore,
			&l.SyncedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler anúncio: %w", err)
		}

		l.Status = domain.ListingStatus(status)
		if inventoryID.Valid {
			l.InventoryID = &inventoryID.String
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

// MarkInactiveExcept marca como inactive os anúncios ativos da conta fora de seenIDs
func (r *listingRepository) MarkInactiveExcept(ctx context.Context, accountID string, seenIDs []string) (int64, error) {
	builder := squirrel.
		Update(listingsTable).
		Set("status", string(domain.ListingStatusInactive)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"account_id": accountID, "status": string(domain.ListingStatusActive)}).
		PlaceholderFormat(squirrel.Dollar)

	if len(seenIDs) > 0 {
		builder = builder.Where(squirrel.NotEq{"external_item_id": seenIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, &domain.PersistenceError{Resource: domain.ResourceProducts, Key: accountID, Err: wrapDBError(err)}
	}

	return result.RowsAffected()
}
