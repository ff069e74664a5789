package cache

import "fmt"

// cache key for a filtered property search result page.
func PropertySearchKey(filtersFingerprint string) string {
	return fmt.Sprintf("properties:search:%s", filtersFingerprint)
}
