package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/authkit/pkg/httpx"
)

const maxBodyBytes = 1 << 20

// request is a JSON body that can validate itself.
type request interface {
	Validate() []string
	TypeMessage(field string) string
}

// decodeRequest strictly decodes the body into dst and validates it. On
// failure it writes a 400 and returns false. An empty body decodes as {} so
// the caller gets the per-field "should not be empty" messages.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst request) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		httpx.WriteError(w, http.StatusBadRequest, decodeMessages(err, dst))
		return false
	}

	if msgs := dst.Validate(); len(msgs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, msgs)
		return false
	}
	return true
}

func decodeMessages(err error, dst request) any {
	var (
		typeErr *json.UnmarshalTypeError
		maxErr  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &typeErr):
		if msg := dst.TypeMessage(typeErr.Field); msg != "" {
			return []string{msg}
		}
		return []string{"property " + typeErr.Field + " has the wrong type"}
	case errors.As(err, &maxErr):
		return "request body too large"
	}

	// encoding/json has no typed error for unknown fields.
	if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return []string{"property " + strings.Trim(field, `"`) + " should not exist"}
	}
	return "malformed JSON body"
}
