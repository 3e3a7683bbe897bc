package util

import "github.com/twmb/murmur3"

// HashFunc ...
func HashFunc(s string) uint32 {
	return murmur3.Sum32([]byte(s))
}

// Partition maps a key to one of n partitions, the same key always gets the same partition
func Partition(key string, n int) int {
	if n <= 1 {
		return 0
	}
	return int(HashFunc(key) % uint32(n))
}
