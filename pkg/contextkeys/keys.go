package contextkeys

type contextKey string

const (
	CurrentUserKey contextKey = "CurrentUser"
)
