package keys

import (
	"fmt"
	"net/url"
)

// FormatConnectionString formats the provided connection details into the
// 'postgres://' URI for the database holding the service_secret table, with
// the password url-escaped and sslmode appended when non-empty. Pass the
// result to Open to get a Store.
func FormatConnectionString(host string, port int, dbname, user, password, sslmode string) string {
	urlencodedPassword := url.QueryEscape(password)
	s := fmt.Sprintf("postgres://%s:%s@%s:%d/%s", user, urlencodedPassword, host, port, dbname)
	if sslmode != "" {
		s += fmt.Sprintf("?sslmode=%s", sslmode)
	}
	return s
}
