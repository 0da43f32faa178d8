package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

var _ port.ProductsStorage = (*ProductsRepository)(nil)

type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

func (r ProductsRepository) ReadProducts(
	ctx context.Context, f domain.CatalogFilter,
) ([]domain.Product, error) {
	const op = "ProductsRepository.ReadProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query, args := buildProductsQuery(f)

	rows, err := r.sqldb.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query: %w", op, err)
	}
	defer rows.Close()

	var vs []domain.Product
	for rows.Next() {
		var (
			v         domain.Product
			priceS    string
			deliveryS string
		)
		err := rows.Scan(
			&v.ProductID, &v.Name, &v.Description, &priceS,
			&v.Image, &v.Category, &v.Brand, &v.Rating, &deliveryS,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan: %w", op, err)
		}

		v.Price, err = decimal.NewFromString(priceS)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		err = json.Unmarshal([]byte(deliveryS), &v.DeliveryOptions)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		vs = append(vs, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return vs, nil
}

func buildProductsQuery(f domain.CatalogFilter) (string, []any) {
	query := `
		SELECT
			product_id, name, description, price,
			image, category, brand, rating, delivery_options
		FROM products`

	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Category != "" {
		conds = append(conds, "category = "+arg(f.Category))
	}
	if f.Brand != "" {
		conds = append(conds, "brand = "+arg(f.Brand))
	}
	if f.MinRating > 0 {
		conds = append(conds, "rating >= "+arg(f.MinRating))
	}
	if !f.MinPrice.IsZero() {
		conds = append(conds, "price >= "+arg(f.MinPrice.String()))
	}
	if !f.MaxPrice.IsZero() {
		conds = append(conds, "price <= "+arg(f.MaxPrice.String()))
	}
	if f.Delivery != "" {
		conds = append(conds,
			"delivery_options::jsonb @> "+arg(fmt.Sprintf("%q", f.Delivery)))
	}

	if len(conds) != 0 {
		query += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\t\tORDER BY name ASC;"
	return query, args
}

func (r ProductsRepository) ReadFacets(
	ctx context.Context,
) (domain.CatalogFacets, error) {
	const op = "ProductsRepository.ReadFacets"

	if err := ctx.Err(); err != nil {
		return domain.CatalogFacets{}, fmt.Errorf("%s: %w", op, err)
	}

	var facets domain.CatalogFacets

	categories, err := r.readDistinct(ctx, "category")
	if err != nil {
		return domain.CatalogFacets{}, fmt.Errorf("%s: %w", op, err)
	}
	facets.Categories = categories

	brands, err := r.readDistinct(ctx, "brand")
	if err != nil {
		return domain.CatalogFacets{}, fmt.Errorf("%s: %w", op, err)
	}
	facets.Brands = brands

	return facets, nil
}

func (r ProductsRepository) readDistinct(
	ctx context.Context, column string,
) ([]string, error) {
	query := fmt.Sprintf(
		"SELECT DISTINCT %s FROM products ORDER BY %s ASC;", column, column,
	)

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vs []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, rows.Err()
}

// SeedDemo fills an empty products table with the demo catalog.
// A non-empty table is left as is.
func (r ProductsRepository) SeedDemo(
	ctx context.Context, vs []domain.Product,
) (seedErr error) {
	const op = "ProductsRepository.SeedDemo"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var count int
	err := r.sqldb.QueryRowContext(
		ctx, "SELECT COUNT(*) FROM products;",
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count != 0 {
		log.Info("products already exist", "count", count)
		return nil
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if seedErr == nil {
			if err := tx.Commit(); err != nil {
				seedErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	query := `
		INSERT INTO products (
			product_id, name, description, price,
			image, category, brand, rating, delivery_options
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare stmt: %w", op, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close prepared stmt", "err", err)
		}
	}()

	for _, v := range vs {
		deliveryB, err := json.Marshal(v.DeliveryOptions)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		_, err = stmt.ExecContext(ctx,
			v.ProductID, v.Name, v.Description, v.Price.String(),
			v.Image, v.Category, v.Brand, v.Rating, string(deliveryB),
		)
		if err != nil {
			return fmt.Errorf("%s: failed to exec: %w", op, err)
		}
	}

	log.Info("demo catalog seeded", "nProducts", len(vs))
	return nil
}
