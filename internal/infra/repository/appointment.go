package repository

import (
	"context"
	"errors"
	"time"

	domappointment "pestdesk/internal/domain/appointment"
	"pestdesk/internal/infra"
	"pestdesk/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AppointmentRepository struct {
	db db.DBTX
}

func NewAppointmentRepository(dbtx db.DBTX) *AppointmentRepository {
	return &AppointmentRepository{db: dbtx}
}

const insertAppointment = `
INSERT INTO appointments (id, customer_id, start_time, status, service_type, notes, latitude, longitude)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *AppointmentRepository) Create(ctx context.Context, apt *domappointment.Appointment) error {
	_, err := r.db.Exec(ctx, insertAppointment,
		apt.ID(),
		apt.CustomerID(),
		apt.Start(),
		apt.Status().String(),
		apt.ServiceType().String(),
		notesParam(apt.Notes()),
		apt.Location().Lat(),
		apt.Location().Lng(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

const updateAppointment = `
UPDATE appointments
SET start_time = $2, status = $3, service_type = $4, notes = $5,
    latitude = $6, longitude = $7, updated_at = now()
WHERE id = $1`

func (r *AppointmentRepository) Update(ctx context.Context, apt *domappointment.Appointment) error {
	tag, err := r.db.Exec(ctx, updateAppointment,
		apt.ID(),
		apt.Start(),
		apt.Status().String(),
		apt.ServiceType().String(),
		notesParam(apt.Notes()),
		apt.Location().Lat(),
		apt.Location().Lng(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

const selectAppointment = `
SELECT id, customer_id, start_time, status, service_type, notes, latitude, longitude, created_at, updated_at
FROM appointments`

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domappointment.Appointment, error) {
	row := r.db.QueryRow(ctx, selectAppointment+" WHERE id = $1", id)
	apt, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return apt, nil
}

func (r *AppointmentRepository) ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*domappointment.Appointment, error) {
	rows, err := r.db.Query(ctx, selectAppointment+" WHERE start_time >= $1 AND start_time < $2 ORDER BY start_time", dayStart, dayEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by day", err)
	}
	defer rows.Close()

	var result []*domappointment.Appointment
	for rows.Next() {
		apt, scanErr := scanAppointment(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", scanErr)
		}
		result = append(result, apt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", err)
	}
	return result, nil
}

func scanAppointment(row pgx.Row) (*domappointment.Appointment, error) {
	var (
		id, customerID       uuid.UUID
		start                time.Time
		statusStr            string
		serviceTypeStr       string
		notes                *string
		lat, lng             float64
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &customerID, &start, &statusStr, &serviceTypeStr, &notes, &lat, &lng, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	status, err := domappointment.NewStatus(statusStr)
	if err != nil {
		return nil, err
	}
	serviceType, err := domappointment.NewServiceType(serviceTypeStr)
	if err != nil {
		return nil, err
	}
	noteText := ""
	if notes != nil {
		noteText = *notes
	}
	noteVO, err := domappointment.NewNotes(noteText)
	if err != nil {
		return nil, err
	}
	location, err := domappointment.NewLocation(lat, lng)
	if err != nil {
		return nil, err
	}

	return domappointment.ReconstructAppointment(id, customerID, start, status, serviceType, noteVO, location, createdAt, updatedAt), nil
}

func notesParam(n domappointment.Notes) *string {
	if n.IsEmpty() {
		return nil
	}
	s := n.String()
	return &s
}
