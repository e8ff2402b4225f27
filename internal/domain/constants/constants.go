package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// HeaderXGuestCartID carries the guest cart identifier between client and server.
const HeaderXGuestCartID = "X-Guest-Cart-Id"
