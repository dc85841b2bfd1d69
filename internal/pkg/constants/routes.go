package constants

// API route constants
const (
	APIRoute   = "/api"
	APIv1Route = "/v1"

	LoginRoute       = "/login"
	LogoutRoute      = "/logout"
	EntriesRoute     = "/entries"
	ExitsRoute       = "/exits"
	ExitPreviewRoute = "/exits/preview"
	TicketsRoute     = "/tickets"
	OpenTicketsRoute = "/tickets/open"
	RatesRoute       = "/rates"
	StatusRoute      = "/status"
	ClassifyRoute    = "/plates/classify"
)
