package handler

import "net/http"

type errorResponse struct {
	err error
}

// Render hands the error to the error handler configured in Wrap.
func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that renders nothing and reports err, so the
// error handler decides status, body and logging. A nil err reports
// ErrNilResponse.
func Error(err error) Response {
	if err == nil {
		err = ErrNilResponse
	}
	return errorResponse{err: err}
}
