package handlertools

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/readerhub/libchat/internal"
	"github.com/readerhub/libchat/pkg/models"
)

var log = internal.GetLogger()

var validate = validator.New()

// EncodeJSON encodes data into JSON and writes it to the response writer.
func EncodeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

// DecodeJSON decodes a JSON request body into the provided data struct.
func DecodeJSON(r *http.Request, data interface{}) error {
	return json.NewDecoder(r.Body).Decode(data)
}

// DecodeAndValidate decodes the request body into data and validates it
// against its struct tags. Both failures are reported as bad requests.
func DecodeAndValidate(r *http.Request, data interface{}) error {
	if err := DecodeJSON(r, data); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return err
		}
		return models.NewBadRequestError(fmt.Sprintf("invalid request body: %s", err))
	}

	if err := validate.Struct(data); err != nil {
		return models.NewBadRequestError(err.Error())
	}

	return nil
}

// RenderError renders an error response.
func RenderError(w http.ResponseWriter, err error, status int) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		status = http.StatusRequestEntityTooLarge
		err = fmt.Errorf("request body too large. keep questions under %d bytes", maxBytesErr.Limit)
	}

	if errors.Is(err, models.ErrBadRequest) {
		status = http.StatusBadRequest
	}

	if status >= http.StatusInternalServerError {
		log.Error(err)
	} else {
		log.Debug(err)
	}

	http.Error(w, err.Error(), status)
}
