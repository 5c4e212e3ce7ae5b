package helix

import (
	"net/http"
	"net/url"
	"strconv"
)

// APICallType selects which API family a call is sent to.
type APICallType int

const (
	// APICallTypeHelix targets the Helix REST API
	APICallTypeHelix APICallType = iota
	// APICallTypeAuth targets the OAuth2 API
	APICallTypeAuth
)

// String returns the string representation of an APICallType
func (t APICallType) String() string {
	switch t {
	case APICallTypeHelix:
		return "helix"
	case APICallTypeAuth:
		return "auth"
	default:
		return "unknown"
	}
}

// CallOptions describes a single API call. Multi-valued query parameters
// are sent as repeated parameters.
type CallOptions struct {
	Type   APICallType
	Method string
	URL    string
	Query  url.Values
}

func (o CallOptions) method() string {
	if o.Method == "" {
		return http.MethodGet
	}
	return o.Method
}

// withQuery returns a copy of o whose query is q merged over o.Query.
func (o CallOptions) withQuery(q url.Values) CallOptions {
	merged := make(url.Values, len(o.Query)+len(q))
	for k, v := range o.Query {
		merged[k] = append([]string(nil), v...)
	}
	for k, v := range q {
		merged[k] = append([]string(nil), v...)
	}
	o.Query = merged
	return o
}

// setOptional sets key only when value is non-empty.
func setOptional(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// setOptionalInt sets key only when value is positive.
func setOptionalInt(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}
