package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// SessionKey returns the cache key for a quiz session snapshot.
func (r *CacheKeyStruct) SessionKey(sessionID int) string {
	return fmt.Sprintf("session:%d", sessionID)
}

// SessionResultsKey returns the cache key for a session's result list.
func (r *CacheKeyStruct) SessionResultsKey(sessionID int) string {
	return fmt.Sprintf("session:%d:results", sessionID)
}

var CacheKey = NewCacheKeyStruct()
