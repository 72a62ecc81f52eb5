package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/electristay/ES-ChargingService/internal/domain"
	"github.com/electristay/ES-ChargingService/pkg/dbmetrics"
	"github.com/electristay/ES-ChargingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс БД, поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor

var sessionColumns = []string{
	"id",
	"user_id",
	"hotel_id",
	"station_id",
	"session_date",
	"start_time",
	"duration_minutes",
	"energy_kwh",
	"cost",
	"renewable_pct",
	"peak_time",
	"co2_saved_kg",
	"location",
}

// Repository репозиторий завершённых зарядных сессий.
// Сессии пишутся станциями, сервис их только читает для аналитики.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает сессии пользователя, опционально от даты
func (r *Repository) GetByUserID(ctx context.Context, userID int64, since *time.Time) ([]*domain.ChargingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(sessionColumns...).
		From("charging_sessions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("session_date DESC, start_time DESC")

	if since != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"session_date": *since})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// GetByHotelID получает сессии отеля, опционально от даты
func (r *Repository) GetByHotelID(ctx context.Context, hotelID int64, since *time.Time) ([]*domain.ChargingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(sessionColumns...).
		From("charging_sessions").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("session_date ASC, start_time ASC")

	if since != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"session_date": *since})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) ([]*domain.ChargingSession, error) {
	sessions := make([]*domain.ChargingSession, 0)

	for rows.Next() {
		var s domain.ChargingSession
		err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.HotelID,
			&s.StationID,
			&s.SessionDate,
			&s.StartTime,
			&s.DurationMinutes,
			&s.EnergyKWh,
			&s.Cost,
			&s.RenewablePct,
			&s.PeakTime,
			&s.CO2SavedKg,
			&s.Location,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan session row: %v", ErrScanRow, err)
		}
		sessions = append(sessions, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate session rows: %v", ErrScanRow, err)
	}

	return sessions, nil
}
