package services

import "strings"

// Keys that mean "not actually configured": empty, or one of the sample
// values people leave behind when copying an env file. A provider seeing one
// of these skips the network entirely and answers with no results.
var placeholderKeys = map[string]struct{}{
	"":                    {},
	"changeme":            {},
	"your_yelp_api_key":   {},
	"your_google_api_key": {},
}

func isPlaceholderKey(key string) bool {
	_, ok := placeholderKeys[strings.ToLower(strings.TrimSpace(key))]
	return ok
}
