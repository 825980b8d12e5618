package constants

// Listing events
const (
	ListingsExchange     = "listings_exchange"
	ListingsExchangeType = "topic"

	ListingCreatedRoutingKey = "listing.created"
	ListingUpdatedRoutingKey = "listing.updated"
	ListingDeletedRoutingKey = "listing.deleted"
	ListingAnyRoutingKey     = "listing.#"

	ListingEventsConsumerTag = "featured-cache-invalidator"
)

// Message headers
const (
	HeaderTraceID      = "x-trace-id"
	HeaderEventType    = "x-event-type"
	HeaderEventVersion = "x-event-version"
)
