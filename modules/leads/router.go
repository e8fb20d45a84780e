package leads

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chatbridge/leadcapture/handler"
)

// SubmissionPath is where the submission endpoint is mounted under the API router.
const SubmissionPath = "/audit-submission"

// Mountable is implemented by services that expose their own routes.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which services to mount in the leads module.
type RouterOptions struct {
	Submission Mountable
}

// Router creates the API router of the module.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/api", leads.Router(leads.RouterOptions{
//	    Submission: leads.NewHandler(dispatcher, leads.WithTranslator(tr)),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.NotFound(handler.NotFound)

	if opts.Submission != nil {
		r.Mount(SubmissionPath, opts.Submission.Handle())
	}

	return r
}
