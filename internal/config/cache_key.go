package config

import (
	"fmt"

	"github.com/google/uuid"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key holding a user's active session JTI.
func (r *CacheKeyStruct) UserSessionKey(userID uuid.UUID) string {
	return fmt.Sprintf("login:%s", userID)
}

// UserEventsChannel returns the Redis PubSub channel carrying a user's
// record-change events.
func (r *CacheKeyStruct) UserEventsChannel(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s:events", userID)
}

var CacheKey = NewCacheKeyStruct()
