package service

import "strings"

// PlaceholderImageURL is served for recipes without an image reference.
const PlaceholderImageURL = "https://via.placeholder.com/300?text=No+Image"

// ResolveForWrite decides the image reference to persist. An uploaded file
// reference always wins over a supplied URL string; the URL is stored
// verbatim otherwise, including when empty.
func ResolveForWrite(uploadedRef, suppliedURL string) string {
	if uploadedRef != "" {
		return uploadedRef
	}
	return suppliedURL
}

// ResolveForDisplay turns a stored image reference into a fully-qualified
// retrieval URL. Absent references yield the placeholder, absolute URLs pass
// through unchanged, and relative storage paths are normalized to forward
// slashes and joined onto the storage root. Idempotent: resolving its own
// output yields the same string.
func ResolveForDisplay(ref, storageRootURL string) string {
	if ref == "" {
		return PlaceholderImageURL
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	clean := strings.ReplaceAll(ref, `\`, "/")
	clean = strings.TrimPrefix(clean, "/")
	return strings.TrimSuffix(storageRootURL, "/") + "/" + clean
}
