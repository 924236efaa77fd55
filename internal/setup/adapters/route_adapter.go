package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/fintrix/fintrix-backend/internal/presentation/protocols"
)

type Controller interface {
	Handle(presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse
}

// AdaptRoute bridges a controller to net/http: it packs the request into the
// presentation protocol, and unpacks the response's headers, cookies, status
// and body.
func AdaptRoute(controller Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		for key, values := range response.Headers {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}

		for _, cookie := range response.Cookies {
			http.SetCookie(w, cookie)
		}

		w.WriteHeader(response.StatusCode)

		if response.Body != nil {
			defer response.Body.Close()
			io.Copy(w, response.Body)
		}
	})
}
