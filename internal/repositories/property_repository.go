package repositories

import (
	"context"
	"database/sql"
	"time"

	"rentsight-backend/internal/models"
	"rentsight-backend/internal/query"
	"rentsight-backend/pkg/metrics"

	"github.com/jmoiron/sqlx"
)

type propertyRow struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Description sql.NullString  `db:"description"`
	Type        string          `db:"type"`
	Price       float64         `db:"price"`
	Rooms       int             `db:"rooms"`
	Bathrooms   int             `db:"bathrooms"`
	Roommates   sql.NullInt64   `db:"roommates"`
	Furnished   bool            `db:"furnished"`
	Address     sql.NullString  `db:"address"`
	City        sql.NullString  `db:"city"`
	PostalCode  sql.NullString  `db:"postal_code"`
	Country     sql.NullString  `db:"country"`
	Latitude    sql.NullFloat64 `db:"latitude"`
	Longitude   sql.NullFloat64 `db:"longitude"`
}

const propertyColumns = "id, name, description, type, price, rooms, bathrooms, roommates, furnished, address, city, postal_code, country, latitude, longitude"

type propertyRepository struct {
	db *sqlx.DB
}

func NewPropertyRepository(db *sqlx.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) FindByFilters(ctx context.Context, conds []query.Condition, limit, offset int) ([]models.Property, error) {
	where, args := query.WhereClause(conds)

	sqlQuery := "SELECT " + propertyColumns + " FROM properties " + where + " ORDER BY name DESC"
	if limit > 0 {
		sqlQuery += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	start := time.Now()
	var rows []propertyRow
	err := r.db.SelectContext(ctx, &rows, sqlQuery, args...)
	metrics.MySQLOperationDuration.WithLabelValues("select", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MySQLErrorsTotal.WithLabelValues("select", "properties").Inc()
		return nil, err
	}

	properties := make([]models.Property, len(rows))
	for i, row := range rows {
		properties[i] = row.toModel()
	}
	return properties, nil
}

func (r *propertyRepository) CountByFilters(ctx context.Context, conds []query.Condition) (int64, error) {
	where, args := query.WhereClause(conds)

	start := time.Now()
	var total int64
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM properties "+where, args...)
	metrics.MySQLOperationDuration.WithLabelValues("count", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MySQLErrorsTotal.WithLabelValues("count", "properties").Inc()
		return 0, err
	}
	return total, nil
}

func (row propertyRow) toModel() models.Property {
	p := models.Property{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description.String,
		Type:        models.PropertyType(row.Type),
		Price:       row.Price,
		Rooms:       row.Rooms,
		Bathrooms:   row.Bathrooms,
		Furnished:   row.Furnished,
		Address: models.Address{
			StreetAddress: row.Address.String,
			City:          row.City.String,
			PostalCode:    row.PostalCode.String,
			Country:       row.Country.String,
		},
	}
	if row.Roommates.Valid {
		roommates := int(row.Roommates.Int64)
		p.Roommates = &roommates
	}
	if row.Latitude.Valid && row.Longitude.Valid {
		p.Coordinates = &models.Coordinates{
			Latitude:  row.Latitude.Float64,
			Longitude: row.Longitude.Float64,
		}
	}
	return p
}
