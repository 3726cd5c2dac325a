package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers for order event dispatch.
// An empty provider dispatches inline inside the API process.
const (
	PubSubProviderInline = "inline"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Admin session cookie
const (
	AdminCookieName = "admin_token"
	AdminCookiePath = "/admin"
	AdminRole       = "admin"
)

// AdminCodeLength is the digit count of an admin one-time code.
const AdminCodeLength = 6

// DocumentsPath is the API route under which stored uploads are served.
const DocumentsPath = "/files"

// CurrencyAED is the only currency the shop charges in.
const CurrencyAED = "aed"
