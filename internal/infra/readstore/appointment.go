package readstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pestdesk/internal/domain/schedule"
	"pestdesk/internal/infra"
	"pestdesk/internal/infra/db"
	"pestdesk/internal/usecase/queries"
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

const selectAppointmentView = `
SELECT a.id, a.customer_id, c.name, a.start_time, a.status, a.service_type, a.notes,
       a.latitude, a.longitude, a.created_at, a.updated_at
FROM appointments a
JOIN customers c ON c.id = a.customer_id`

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row := r.db.QueryRow(ctx, selectAppointmentView+" WHERE a.id = $1", id)
	view, err := scanAppointmentView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return view, nil
}

func (r *AppointmentReadStore) FindByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*queries.AppointmentView, error) {
	rows, err := r.db.Query(ctx, selectAppointmentView+" WHERE a.start_time >= $1 AND a.start_time < $2 ORDER BY a.start_time", dayStart, dayEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by day", err)
	}
	return collectAppointmentViews(rows)
}

func (r *AppointmentReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.AppointmentView, error) {
	rows, err := r.db.Query(ctx, selectAppointmentView+" WHERE a.customer_id = $1 ORDER BY a.start_time DESC", customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by customer", err)
	}
	return collectAppointmentViews(rows)
}

func collectAppointmentViews(rows pgx.Rows) ([]*queries.AppointmentView, error) {
	defer rows.Close()

	var views []*queries.AppointmentView
	for rows.Next() {
		view, err := scanAppointmentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", err)
	}
	return views, nil
}

func scanAppointmentView(row pgx.Row) (*queries.AppointmentView, error) {
	var v queries.AppointmentView
	err := row.Scan(
		&v.ID, &v.CustomerID, &v.CustomerName, &v.StartTime, &v.Status, &v.ServiceType,
		&v.Notes, &v.Latitude, &v.Longitude, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.EndTime = v.StartTime.Add(schedule.AppointmentDuration)
	return &v, nil
}
