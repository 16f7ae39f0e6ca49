package query

import "net/url"

// rebuildURL clones the query string, sets one parameter, and reattaches it
// to the base path. The current request's other parameters (filters, page
// size) survive the toggle.
func rebuildURL(base string, query url.Values, key, value string) string {
	params := url.Values{}
	for k, vs := range query {
		params[k] = append([]string(nil), vs...)
	}
	if value == "" {
		params.Del(key)
	} else {
		params.Set(key, value)
	}
	if len(params) == 0 {
		return base
	}
	return base + "?" + params.Encode()
}
