package response

import (
	"encoding/json"
	"net/http"

	"github.com/Mrithul03/vendroo-server/shared/constant"
	"github.com/Mrithul03/vendroo-server/shared/failure"
	"github.com/Mrithul03/vendroo-server/shared/logger"
)

type Envelope struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
	Data    any     `json:"data,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// WithSuccess sends a response wrapping the payload in the success envelope.
func WithSuccess(writer http.ResponseWriter, code int, data any) {
	response(writer, code, Envelope{Success: true, Data: data})
}

// WithSuccessMessage sends a success envelope carrying both a message and a payload.
func WithSuccessMessage(writer http.ResponseWriter, code int, message string, data any) {
	response(writer, code, Envelope{Success: true, Message: &message, Data: data})
}

// WithJSON sends the payload as-is, without the envelope.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithError sends a response with the error message mapped from the failure
// taxonomy. Errors without an explicit code surface as a generic 500 so that
// store internals never reach the caller.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := failure.GetMessage(err)

	response(writer, code, Envelope{Success: false, Error: &errMsg})
}

// WithText sends a plain-text response.
func WithText(writer http.ResponseWriter, code int, body string) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeTextPlain)
	writer.WriteHeader(code)

	if _, err := writer.Write([]byte(body)); err != nil {
		logger.ErrorWithStack(err)
	}
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
