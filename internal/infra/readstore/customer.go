package readstore

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pestdesk/internal/infra"
	"pestdesk/internal/infra/db"
	"pestdesk/internal/usecase/queries"
)

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(dbtx db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: dbtx}
}

const selectCustomerView = `
SELECT id, name, email, phone, address, service_plan, tags, latitude, longitude, created_at, updated_at
FROM customers`

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row := r.db.QueryRow(ctx, selectCustomerView+" WHERE id = $1", id)
	view, err := scanCustomerView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return view, nil
}

func (r *CustomerReadStore) Find(ctx context.Context, filter queries.CustomerFilter) ([]*queries.CustomerView, error) {
	var (
		conds []string
		args  []any
	)
	if filter.ServicePlan != "" {
		args = append(args, filter.ServicePlan)
		conds = append(conds, "service_plan = $"+strconv.Itoa(len(args)))
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		conds = append(conds, "$"+strconv.Itoa(len(args))+" = ANY(tags)")
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		conds = append(conds, "(name ILIKE $"+n+" OR email ILIKE $"+n+" OR address ILIKE $"+n+")")
	}

	query := selectCustomerView
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var views []*queries.CustomerView
	for rows.Next() {
		view, scanErr := scanCustomerView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customer rows", err)
	}
	return views, nil
}

func scanCustomerView(row pgx.Row) (*queries.CustomerView, error) {
	var v queries.CustomerView
	err := row.Scan(
		&v.ID, &v.Name, &v.Email, &v.Phone, &v.Address, &v.ServicePlan,
		&v.Tags, &v.Latitude, &v.Longitude, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
