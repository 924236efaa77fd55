package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	presentationProtocols "github.com/fintrix/fintrix-backend/internal/presentation/protocols"
)

// CreateResponse marshals body to JSON and wraps it in an HttpResponse.
func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	encoded, err := json.Marshal(body)
	if err != nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"error":"error encoding response"}`))),
			StatusCode: http.StatusInternalServerError,
		}
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(encoded)),
		StatusCode: statusCode,
	}
}

// CreateErrorResponse is CreateResponse for the error taxonomy: a human
// message plus a machine-readable code.
func CreateErrorResponse(message string, code string, statusCode int) *presentationProtocols.HttpResponse {
	return CreateResponse(&presentationProtocols.ErrorResponse{
		Error: message,
		Code:  code,
	}, statusCode)
}
