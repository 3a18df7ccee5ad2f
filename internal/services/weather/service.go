package weather

import (
	"fmt"
	"net/http"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is what came back from the forecast endpoint, whatever the status.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// StatusError is returned by a strict client for any non-200 answer.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("yandex weather API error: status %d: %s", e.Code, e.Body)
}
