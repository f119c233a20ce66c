package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Availability guarda respostas de disponibilidade (slots por barbeiro+data)
// por um TTL curto. Se o Redis não estiver acessível na subida, o cache opera
// desabilitado e as consultas vão direto ao banco.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(addr string) *Availability {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis indisponível (%v), cache de disponibilidade desativado", err)
		return &Availability{}
	}

	return &Availability{
		rdb: rdb,
		ttl: 30 * time.Second,
	}
}

func slotsKey(barberID uint, date string) string {
	return fmt.Sprintf("avail:slots:%d:%s", barberID, date)
}

func (c *Availability) GetSlots(ctx context.Context, barberID uint, date string) ([]string, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotsKey(barberID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *Availability) SetSlots(ctx context.Context, barberID uint, date string, slots []string) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, slotsKey(barberID, date), raw, c.ttl).Err(); err != nil {
		log.Printf("cache set falhou: %v", err)
	}
}

// Invalidate derruba a entrada de slots do (barbeiro, data) após uma escrita
// de agendamento. As respostas de datas disponíveis só têm TTL curto.
func (c *Availability) Invalidate(ctx context.Context, barberID uint, date string) {
	if c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, slotsKey(barberID, date)).Err(); err != nil {
		log.Printf("cache invalidate falhou: %v", err)
	}
}
