package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/electristay/ES-ChargingService/internal/domain"
	"github.com/electristay/ES-ChargingService/pkg/metrics"
)

const quoteCacheName = "slot_quotes"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// QuoteCache кеш рассчитанных котировок слотов в Redis.
// Кеш опциональный: любая ошибка Redis трактуется как промах,
// расчёт всегда можно повторить из движка.
type QuoteCache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
	log     Logger
}

// NewQuoteCache создает новый экземпляр кеша котировок
func NewQuoteCache(client *redis.Client, ttl time.Duration, m *metrics.Metrics, log Logger) *QuoteCache {
	return &QuoteCache{
		client:  client,
		ttl:     ttl,
		metrics: m,
		log:     log,
	}
}

// observeCache пишет метрику попадания, если метрики включены
func (c *QuoteCache) observeCache(hit bool) {
	if c.metrics != nil {
		c.metrics.ObserveCache(quoteCacheName, hit)
	}
}

// QuoteKey детерминированный ключ котировки по входам расчёта.
// Дата входит днём, без времени: котировки считаются посуточно.
func QuoteKey(hotelID int64, window domain.StayWindow, tier domain.MembershipTier) string {
	return fmt.Sprintf("quotes:hotel:%d:%s:%s:%d:%s",
		hotelID,
		window.CheckIn.Format("2006-01-02"),
		window.CheckOut.Format("2006-01-02"),
		window.Guests,
		tier,
	)
}

// Get возвращает закешированные слоты, ok=false при промахе
func (c *QuoteCache) Get(ctx context.Context, key string) ([]domain.PricedSlot, bool) {
	if c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("Quote cache read failed, falling back to engine: key=%s: %v", key, err)
		}
		c.observeCache(false)
		return nil, false
	}

	var slots []domain.PricedSlot
	if err := json.Unmarshal(payload, &slots); err != nil {
		// Битая запись: удаляем и пересчитываем
		c.log.Warn("Quote cache entry corrupted, evicting: key=%s: %v", key, err)
		c.client.Del(ctx, key)
		c.observeCache(false)
		return nil, false
	}

	c.observeCache(true)
	return slots, true
}

// Set сохраняет рассчитанные слоты с TTL кеша
func (c *QuoteCache) Set(ctx context.Context, key string, slots []domain.PricedSlot) {
	if c.client == nil {
		return
	}

	payload, err := json.Marshal(slots)
	if err != nil {
		c.log.Warn("Quote cache marshal failed: key=%s: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("Quote cache write failed: key=%s: %v", key, err)
	}
}

// InvalidateHotel сбрасывает все котировки отеля.
// Вызывается при изменении энергетической конфигурации отеля.
func (c *QuoteCache) InvalidateHotel(ctx context.Context, hotelID int64) {
	if c.client == nil {
		return
	}

	pattern := fmt.Sprintf("quotes:hotel:%d:*", hotelID)

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			c.log.Warn("Quote cache invalidation scan failed: hotel_id=%d: %v", hotelID, err)
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.log.Warn("Quote cache invalidation delete failed: hotel_id=%d: %v", hotelID, err)
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
