package availability

import "errors"

var (
	// ErrCacheMiss возвращается, когда снимок доступности отсутствует в кэше
	ErrCacheMiss = errors.New("availability.cache: cache miss")

	// ErrCacheUnavailable возвращается при ошибке обращения к Redis
	ErrCacheUnavailable = errors.New("availability.cache: cache unavailable")
)
