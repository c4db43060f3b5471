package redis

import "fmt"

// Key prefix for all scoreboard data
const keyPrefix = "hearts"

// namespacedKey returns the Redis key for a store key within a namespace
func namespacedKey(namespace, key string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, namespace, key)
}

// namespaceIndexKey returns the Redis key for the SET of keys in a namespace
func namespaceIndexKey(namespace string) string {
	return fmt.Sprintf("%s:idx:keys:%s", keyPrefix, namespace)
}
