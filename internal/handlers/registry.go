package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	CatalogHandler *CatalogHandler
	ListingHandler *ListingHandler
}
