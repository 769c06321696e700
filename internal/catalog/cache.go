package catalog

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"leaflink/internal/model"
)

const cacheKey = "leaflink:catalogo"

// CachedSource guarda el catalogo serializado en Redis con TTL.
// Si Redis no responde, cae directo al origen.
type CachedSource struct {
	Client *redis.Client
	Origin Source
	TTL    time.Duration
}

func (c *CachedSource) Load(ctx context.Context) ([]model.Product, error) {
	val, err := c.Client.Get(ctx, cacheKey).Result()
	if err == nil {
		var products []model.Product
		if json.Unmarshal([]byte(val), &products) == nil {
			return products, nil
		}
	}

	products, err := c.Origin.Load(ctx)
	if err != nil {
		return nil, err
	}

	b, _ := json.Marshal(products)
	if err := c.Client.Set(ctx, cacheKey, b, c.TTL).Err(); err != nil {
		log.Printf("[Catalog] No se pudo guardar el catalogo en cache: %v", err)
	}

	return products, nil
}

// Invalidate borra la copia en cache; la siguiente carga vuelve al origen.
func (c *CachedSource) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, cacheKey).Err()
}
