package ipam

import (
	"net/http"
	"strings"

	"github.com/gorilla/schema"
	"github.com/pkg/errors"
)

// parseQueryParams decodes the request query into the given filter and
// limit structs. Empty params are dropped, unknown ones ignored. Comma
// separated values are split into elements for the list valued filter
// fields; the uuid param is exempt since its value may only be a uuid or
// a uuid prefix wildcard.
func parseQueryParams(r *http.Request, values ...interface{}) error {
	params := r.URL.Query()

	// ignore the empty params
	for key, val := range params {
		for _, v := range val {
			if v == string("") {
				delete(params, key)
			}
		}
	}

	for key, vals := range params {
		if key == "uuid" {
			continue
		}
		var split []string
		for _, v := range vals {
			split = append(split, strings.Split(v, ",")...)
		}
		params[key] = split
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	for _, value := range values {
		if err := decoder.Decode(value, params); err != nil {
			return errors.Wrapf(err, "failed to decode %s parameter", value)
		}
	}

	return nil
}
