package db

import (
	"context"

	"github.com/unklstewy/airforcenone/internal/errors"
	"github.com/unklstewy/airforcenone/pkg/registry"
)

const upsertKnownAircraft = `INSERT INTO known_aircraft (
	icao, country, description, registration, type_code, operator,
	icao_type, cmpg, category, tag1, tag2, tag3, link, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, CURRENT_TIMESTAMP)
ON CONFLICT (icao) DO UPDATE SET
	country = excluded.country,
	description = excluded.description,
	registration = excluded.registration,
	type_code = excluded.type_code,
	operator = excluded.operator,
	icao_type = excluded.icao_type,
	cmpg = excluded.cmpg,
	category = excluded.category,
	tag1 = excluded.tag1,
	tag2 = excluded.tag2,
	tag3 = excluded.tag3,
	link = excluded.link,
	updated_at = CURRENT_TIMESTAMP`

const selectKnownAircraft = `SELECT icao, country, description, registration, type_code, operator,
	icao_type, cmpg, category, tag1, tag2, tag3, link
FROM known_aircraft
ORDER BY icao`

// CatalogRepository stores known aircraft records.
type CatalogRepository struct {
	db *DB
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Import upserts records in a single transaction and returns how many were written.
// Records with a malformed identifier are skipped.
func (r *CatalogRepository) Import(ctx context.Context, records []registry.Record) (n int, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, upsertKnownAircraft)
	if err != nil {
		return 0, errors.Wrap(err, "failed to prepare upsert")
	}
	defer stmt.Close()

	for _, rec := range records {
		icao := registry.NormalizeIdentifier(rec.ICAO)
		if !registry.ValidIdentifier(icao) {
			continue
		}
		tags := [3]string{}
		copy(tags[:], rec.Tags)

		if _, err = stmt.ExecContext(ctx,
			icao, rec.Country, rec.Description, rec.Registration, rec.TypeCode, rec.Operator,
			rec.ICAOType, rec.CMPG, rec.Category, tags[0], tags[1], tags[2], rec.Link,
		); err != nil {
			return 0, errors.Wrapf(err, "failed to upsert %s", icao)
		}
		n++
	}

	if err = tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "failed to commit catalog import")
	}
	return n, nil
}

// LoadAll returns every stored record ordered by identifier.
func (r *CatalogRepository) LoadAll(ctx context.Context) ([]registry.Record, error) {
	rows, err := r.db.QueryContext(ctx, selectKnownAircraft)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to query known aircraft"), registry.ErrCatalogLoad)
	}
	defer rows.Close()

	var records []registry.Record
	for rows.Next() {
		var rec registry.Record
		var tag1, tag2, tag3 string
		if err := rows.Scan(
			&rec.ICAO, &rec.Country, &rec.Description, &rec.Registration, &rec.TypeCode, &rec.Operator,
			&rec.ICAOType, &rec.CMPG, &rec.Category, &tag1, &tag2, &tag3, &rec.Link,
		); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "failed to scan known aircraft"), registry.ErrCatalogLoad)
		}
		for _, tag := range []string{tag1, tag2, tag3} {
			if tag != "" {
				rec.Tags = append(rec.Tags, tag)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to read known aircraft"), registry.ErrCatalogLoad)
	}
	return records, nil
}

// LoadRegistry builds a registry from the table. On failure it returns an
// empty registry and a fault marked registry.ErrCatalogLoad.
func (r *CatalogRepository) LoadRegistry(ctx context.Context) (*registry.Registry, error) {
	records, err := r.LoadAll(ctx)
	if err != nil {
		return registry.Empty(), err
	}
	return registry.New(records), nil
}

// Count returns the number of stored records.
func (r *CatalogRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM known_aircraft`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "failed to count known aircraft")
	}
	return n, nil
}
