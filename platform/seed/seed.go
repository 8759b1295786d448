// Package seed provides the stable hashing used to derive reproducible mock data.
//
// Seeds are the 64-bit xxHash of the UTF-8 key reduced modulo a range. The
// hash is stable across processes, platforms and releases, so a given key
// always yields the same synthetic values.
package seed

import "github.com/cespare/xxhash/v2"

// Hash returns the stable 64-bit hash of key.
func Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Mod returns Hash(key) mod n. n must be positive.
func Mod(key string, n uint64) int {
	return int(Hash(key) % n)
}
