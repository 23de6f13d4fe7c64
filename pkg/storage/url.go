package storage

import "strings"

// productsPrefix is the fixed object path products images live under.
const productsPrefix = "products/"

// ProductImageURL resolves a stored image reference into a public URL.
//
//   - An empty reference is returned unchanged; no URL is synthesized.
//   - A reference that already carries an HTTP(S) scheme is assumed
//     public and returned unchanged.
//   - Anything else is treated as a bare object name under products/
//     beneath baseURL.
//
// Pure and total; there is no error case.
func ProductImageURL(baseURL, ref string) string {
	if ref == "" {
		return ref
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimRight(baseURL, "/") + "/" + productsPrefix + ref
}
