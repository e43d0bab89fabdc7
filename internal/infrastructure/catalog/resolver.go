package catalog

import (
	"context"
	"errors"
	"fmt"

	"claimscope/internal/domain/entities"
	"claimscope/internal/infrastructure/logger"
	"claimscope/internal/usecase/interfaces"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const tablePriceListItems = "price_list_items"

// querier is the part of pgxpool.Pool the resolver uses.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresResolver prices repair codes from price_list_items.
type PostgresResolver struct {
	db querier
}

var _ interfaces.ICatalogResolver = (*PostgresResolver)(nil)

func NewPostgresResolver(db querier) *PostgresResolver {
	return &PostgresResolver{db: db}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// priceQuery selects the carrier row when one exists, else the regional default row.
func priceQuery(code, regionID string, carrierProfileID *string) (string, []any, error) {
	carrier := squirrel.Eq{"carrier_profile_id": nil}
	q := builder().
		Select("code", "description", "unit", "unit_price::text", "tax_rate::text").
		From(tablePriceListItems).
		Where(squirrel.Eq{"code": code, "region_id": regionID})
	if carrierProfileID != nil && *carrierProfileID != "" {
		q = q.Where(squirrel.Or{squirrel.Eq{"carrier_profile_id": *carrierProfileID}, carrier})
	} else {
		q = q.Where(carrier)
	}
	return q.OrderBy("carrier_profile_id NULLS LAST").Limit(1).ToSql()
}

func (r *PostgresResolver) ResolvePrice(ctx context.Context, code, regionID string, carrierProfileID *string) (entities.CatalogPrice, error) {
	sql, args, err := priceQuery(code, regionID, carrierProfileID)
	if err != nil {
		return entities.CatalogPrice{}, fmt.Errorf("build price query: %w", err)
	}

	var (
		p              entities.CatalogPrice
		price, taxRate string
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(&p.Code, &p.Description, &p.Unit, &price, &taxRate)
	if errors.Is(err, pgx.ErrNoRows) {
		logger.Debugf(ctx, "[catalog][repository] price not found code=%s region_id=%s", code, regionID)
		return entities.CatalogPrice{}, interfaces.ErrCatalogItemNotFound
	}
	if err != nil {
		logger.Errorf(ctx, "[catalog][repository] price query failed code=%s err=%v", code, err)
		return entities.CatalogPrice{}, err
	}

	if p.UnitPrice, err = decimal.NewFromString(price); err != nil {
		return entities.CatalogPrice{}, fmt.Errorf("parse unit_price of %s: %w", code, err)
	}
	if p.TaxRate, err = decimal.NewFromString(taxRate); err != nil {
		return entities.CatalogPrice{}, fmt.Errorf("parse tax_rate of %s: %w", code, err)
	}
	return p, nil
}
