package app

import "net/http"

type sessionKey string

const (
	SessionKeyUsername = sessionKey("username")
	SessionKeyEmail    = sessionKey("email")
	SessionKeyEmployee = sessionKey("employee")
)

func (s sessionKey) String() string {
	return string(s)
}

// contextGetCustomer returns the customer identity placed in the request
// context by requireAuthentication.
func (app *Application) contextGetCustomer(r *http.Request) string {
	username, ok := r.Context().Value(SessionKeyUsername).(string)
	if !ok {
		panic("missing customer identity from context")
	}

	return username
}
