// Package results is the remote append-only store for submitted sessions.
package results

import (
	"fmt"
	"net/url"
	"strings"
)

// defaultDBUser is used when the endpoint URL carries no user info.
const defaultDBUser = "stackdeck"

// BuildDSN combines the results endpoint URL with the access key into a
// connection string. The access key always wins over any password embedded in
// the endpoint, so credentials stay in one configuration knob.
func BuildDSN(endpoint, accessKey string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", fmt.Errorf("results endpoint cannot be empty")
	}
	if strings.TrimSpace(accessKey) == "" {
		return "", fmt.Errorf("results access key cannot be empty")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid results endpoint: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("results endpoint must use postgres:// scheme, got %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("results endpoint is missing a host")
	}

	user := defaultDBUser
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, accessKey)
	return u.String(), nil
}
