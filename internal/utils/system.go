package utils

import (
	"os"
	"os/user"
	"regexp"
	"strings"
)

var unsafeActorChars = regexp.MustCompile(`[^a-zA-Z0-9._\-@]`)

// GetUsername returns the current username.
func GetUsername() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// GetHostname returns the system hostname.
func GetHostname() (string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return "", err
	}
	return hostname, nil
}

// CurrentActor identifies who ran a command as user@host. Either half falls
// back to "unknown" when the system cannot provide it.
func CurrentActor() string {
	username, err := GetUsername()
	if err != nil || username == "" {
		username = "unknown"
	}
	hostname, err := GetHostname()
	if err != nil || hostname == "" {
		hostname = "unknown"
	}
	return SanitizeActor(username + "@" + hostname)
}

// SanitizeActor strips characters that do not belong in an audit identity.
// Windows account names such as DOMAIN\user keep only the user part.
func SanitizeActor(actor string) string {
	actor = strings.TrimSpace(actor)
	if i := strings.LastIndex(actor, `\`); i >= 0 {
		actor = actor[i+1:]
	}
	actor = strings.ReplaceAll(actor, " ", "-")
	return unsafeActorChars.ReplaceAllString(actor, "")
}
