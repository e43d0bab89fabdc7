package catalog

import (
	"context"
	"errors"
	"testing"

	"claimscope/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []string
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		*(d.(*string)) = r.values[i]
	}
	return nil
}

type fakeQuerier struct {
	row  fakeRow
	sql  string
	args []any
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql = sql
	q.args = args
	return q.row
}

func TestPriceQuery(t *testing.T) {
	t.Run("regional default only", func(t *testing.T) {
		sql, args, err := priceQuery("DRY-HANG", "region-1", nil)
		require.NoError(t, err)
		assert.Equal(t,
			"SELECT code, description, unit, unit_price::text, tax_rate::text FROM price_list_items "+
				"WHERE code = $1 AND region_id = $2 AND carrier_profile_id IS NULL "+
				"ORDER BY carrier_profile_id NULLS LAST LIMIT 1", sql)
		assert.Equal(t, []any{"DRY-HANG", "region-1"}, args)
	})

	t.Run("carrier first", func(t *testing.T) {
		carrier := "carrier-9"
		sql, args, err := priceQuery("DRY-HANG", "region-1", &carrier)
		require.NoError(t, err)
		assert.Contains(t, sql, "(carrier_profile_id = $3 OR carrier_profile_id IS NULL)")
		assert.Equal(t, []any{"DRY-HANG", "region-1", "carrier-9"}, args)
	})
}

func TestPostgresResolver_ResolvePrice(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{values: []string{"DRY-HANG", "Hang drywall", "SF", "2.5000", "0.080000"}}}
		p, err := NewPostgresResolver(q).ResolvePrice(context.Background(), "DRY-HANG", "region-1", nil)
		require.NoError(t, err)
		assert.Equal(t, "SF", p.Unit)
		assert.Equal(t, "2.5", p.UnitPrice.String())
		assert.Equal(t, "0.08", p.TaxRate.String())
	})

	t.Run("not found", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
		_, err := NewPostgresResolver(q).ResolvePrice(context.Background(), "NOPE", "region-1", nil)
		assert.ErrorIs(t, err, interfaces.ErrCatalogItemNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{err: errors.New("conn reset")}}
		_, err := NewPostgresResolver(q).ResolvePrice(context.Background(), "DRY-HANG", "region-1", nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, interfaces.ErrCatalogItemNotFound)
	})

	t.Run("bad numeric", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{values: []string{"X", "", "EA", "abc", "0"}}}
		_, err := NewPostgresResolver(q).ResolvePrice(context.Background(), "X", "region-1", nil)
		assert.ErrorContains(t, err, "parse unit_price")
	})
}

func TestConnect_MissingDSN(t *testing.T) {
	_, err := Connect(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingDSN)
}
