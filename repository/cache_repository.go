package repository

import "time"

// CacheRepository cachea informes de simulación serializados, con clave
// determinista derivada de los parámetros.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
