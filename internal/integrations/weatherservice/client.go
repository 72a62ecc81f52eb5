package weatherservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/electristay/ES-ChargingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с внешним сервисом недельного прогноза погоды
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента WeatherService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetWeeklyForecast получает недельный прогноз для города
func (c *Client) GetWeeklyForecast(ctx context.Context, city string) ([]domain.ForecastEntry, error) {
	reqURL := fmt.Sprintf("%s/v1/forecast/weekly?city=%s", c.baseURL, url.QueryEscape(city))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrCityNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var forecast ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Нормализуем свободные строки условий в закрытый домен.
	// Неизвестные условия становятся нейтральной веткой, не ошибкой.
	entries := make([]domain.ForecastEntry, 0, len(forecast.Entries))
	for _, e := range forecast.Entries {
		entries = append(entries, domain.ForecastEntry{
			Day:       e.Day,
			TempC:     e.TempC,
			Condition: domain.ParseWeatherCondition(e.Condition),
		})
	}

	return entries, nil
}

// GetWeeklyForecastWithGracefulDegradation получает прогноз с graceful degradation.
// При недоступности WeatherService возвращает ErrServiceDegraded, что позволяет
// сервису котировок использовать сохранённый прогноз отеля.
func (c *Client) GetWeeklyForecastWithGracefulDegradation(ctx context.Context, city string) ([]domain.ForecastEntry, error) {
	c.log.Info("Fetching weekly forecast for city=%s", city)

	entries, err := c.GetWeeklyForecast(ctx, city)
	if err != nil {
		// Отсутствие города - бизнес-ответ, пробрасываем как есть
		if err == ErrCityNotFound {
			c.log.Info("No forecast found for city=%s", city)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("WeatherService unavailable, applying graceful degradation for city=%s: %v", city, err)
		return nil, fmt.Errorf("%w: city=%s, error=%v", ErrServiceDegraded, city, err)
	}

	c.log.Info("Successfully fetched forecast for city=%s, entries=%d", city, len(entries))
	return entries, nil
}
