package interfaces

// CacheStatus reports whether a price lookup was served from the local cache
type CacheStatus string

const (
	CacheStatusHit  CacheStatus = "hit"
	CacheStatusMiss CacheStatus = "miss"
)

func (cs CacheStatus) String() string {
	return string(cs)
}
