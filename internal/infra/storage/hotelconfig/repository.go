package hotelconfig

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/electristay/ES-ChargingService/internal/domain"
	"github.com/electristay/ES-ChargingService/pkg/dbmetrics"
	"github.com/electristay/ES-ChargingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс БД, поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий энергетической конфигурации отелей.
// Недельный прогноз хранится JSONB колонкой.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByHotelID получает конфигурацию отеля
func (r *Repository) GetByHotelID(ctx context.Context, hotelID int64) (*domain.HotelEnergyConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"hotel_id",
		"hotel_name",
		"city",
		"occupancy_pct",
		"season",
		"charging_stations",
		"room_rate",
		"manager_user_id",
		"forecast",
		"created_at",
		"updated_at",
	).
		From("hotel_energy_configs").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelID - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.HotelEnergyConfig
	var season string
	var forecastRaw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.HotelID,
		&cfg.HotelName,
		&cfg.City,
		&cfg.OccupancyPct,
		&season,
		&cfg.ChargingStations,
		&cfg.RoomRate,
		&cfg.ManagerUserID,
		&forecastRaw,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelID - scan config: %v", ErrScanRow, err)
	}

	// Сезон из БД нормализуется в закрытый домен (неизвестный -> Shoulder)
	cfg.Season = domain.ParseSeason(season)
	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	if len(forecastRaw) > 0 {
		if err := json.Unmarshal(forecastRaw, &cfg.Forecast); err != nil {
			return nil, fmt.Errorf("%w: GetByHotelID - decode forecast: %v", ErrScanRow, err)
		}
	}

	return &cfg, nil
}

// Upsert создает или обновляет конфигурацию отеля
func (r *Repository) Upsert(ctx context.Context, cfg *domain.HotelEnergyConfig) (*domain.HotelEnergyConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	forecastRaw, err := json.Marshal(cfg.Forecast)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - marshal forecast: %v", ErrEncodeForecast, err)
	}

	query, args, err := psqlbuilder.Insert("hotel_energy_configs").
		Columns(
			"hotel_id",
			"hotel_name",
			"city",
			"occupancy_pct",
			"season",
			"charging_stations",
			"room_rate",
			"manager_user_id",
			"forecast",
		).
		Values(
			cfg.HotelID,
			cfg.HotelName,
			cfg.City,
			cfg.OccupancyPct,
			string(cfg.Season),
			cfg.ChargingStations,
			cfg.RoomRate,
			cfg.ManagerUserID,
			forecastRaw,
		).
		Suffix(`ON CONFLICT (hotel_id) DO UPDATE SET
			hotel_name = EXCLUDED.hotel_name,
			city = EXCLUDED.city,
			occupancy_pct = EXCLUDED.occupancy_pct,
			season = EXCLUDED.season,
			charging_stations = EXCLUDED.charging_stations,
			room_rate = EXCLUDED.room_rate,
			manager_user_id = EXCLUDED.manager_user_id,
			forecast = EXCLUDED.forecast,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

// UpdateForecast обновляет только сохранённый прогноз отеля.
// Используется при успешном ответе WeatherService.
func (r *Repository) UpdateForecast(ctx context.Context, hotelID int64, forecast []domain.ForecastEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	forecastRaw, err := json.Marshal(forecast)
	if err != nil {
		return fmt.Errorf("%w: UpdateForecast - marshal forecast: %v", ErrEncodeForecast, err)
	}

	query, args, err := psqlbuilder.Update("hotel_energy_configs").
		Set("forecast", forecastRaw).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"hotel_id": hotelID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateForecast - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateForecast - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateForecast - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrConfigNotFound
	}

	return nil
}
