// Package repository provides the result cache behind the HTTP layer.
// Calculations are idempotent, so a serialized response can be replayed
// for an identical request body.
package repository

type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
