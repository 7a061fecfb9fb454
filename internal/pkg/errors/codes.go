package errors

import "net/http"

var (
	ErrFetchFailure = New(
		"FETCH_FAILURE",
		"Failed to fetch map data from upstream",
		http.StatusBadGateway,
	)

	ErrGeocodeFailure = New(
		"GEOCODE_FAILURE",
		"Location search failed",
		http.StatusBadGateway,
	)

	ErrListingNotFound = New(
		"LISTING_NOT_FOUND",
		"Listing not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidZoom = New(
		"INVALID_ZOOM",
		"Invalid zoom level",
		http.StatusBadRequest,
	)

	ErrInvalidPriceRange = New(
		"INVALID_PRICE_RANGE",
		"Price range minimum exceeds maximum",
		http.StatusBadRequest,
	)

	ErrSnapshotUnavailable = New(
		"SNAPSHOT_UNAVAILABLE",
		"Map data has not been loaded yet",
		http.StatusServiceUnavailable,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
