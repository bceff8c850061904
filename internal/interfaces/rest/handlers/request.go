package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/oapi-codegen/runtime"
)

const (
	maxBodyBytes  = 1 << 20
	maxFormMemory = 1 << 20
)

// processPaymentRequest is the body of POST /process-payment. The json tags
// name both the JSON keys and the form field names.
type processPaymentRequest struct {
	PaymentToken flexString `json:"payment_token"`
	BillingZip   flexString `json:"billing_zip"`
	Amount       flexString `json:"amount"`
}

// flexString accepts a JSON string or number, so {"amount": 10.5} and
// {"amount": "10.5"} decode alike.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = flexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*s = flexString(num.String())
	return nil
}

var errUnsupportedContentType = errors.New("unsupported content type")

// decodePaymentRequest reads the body as JSON, url-encoded or multipart form.
// A body that cannot be decoded yields an error and whatever fields were read;
// callers treat missing fields as a validation failure.
func decodePaymentRequest(w http.ResponseWriter, r *http.Request) (processPaymentRequest, error) {
	var req processPaymentRequest

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = ""
	}

	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
		if err := dec.Decode(&req); err != nil {
			return processPaymentRequest{}, fmt.Errorf("error decoding json body: %w", err)
		}
		return req, nil

	case mediaType == "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return req, fmt.Errorf("error parsing multipart form: %w", err)
		}
		if err := runtime.BindForm(&req, r.MultipartForm.Value, r.MultipartForm.File, nil); err != nil {
			return req, fmt.Errorf("error binding multipart form: %w", err)
		}
		return req, nil

	case mediaType == "application/x-www-form-urlencoded" || mediaType == "":
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			return req, fmt.Errorf("error parsing form: %w", err)
		}
		if err := runtime.BindForm(&req, r.PostForm, nil, nil); err != nil {
			return req, fmt.Errorf("error binding form: %w", err)
		}
		return req, nil

	default:
		return req, fmt.Errorf("%w: %s", errUnsupportedContentType, mediaType)
	}
}
