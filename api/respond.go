package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"

	"github.com/rpupo63/studio-landing/errs"
	"github.com/rpupo63/studio-landing/models"
	"github.com/rpupo63/studio-landing/view"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, http.StatusOK, data)
}

func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	// Marshal first so a failure can still produce a clean 500
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// errorResponse builds the JSON body for err and returns the status to send.
func (r Responder) errorResponse(err error) (int, ErrorResponse) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		apiErr = errs.NewInternalErrorWithCause(http.StatusText(http.StatusInternalServerError), err)
	}

	// Causes of server-side failures are logged, never sent to the client
	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Err(err).Str("cause", apiErr.GetFullError()).Msg("internal error")
		return apiErr.StatusCode, ErrorResponse{
			Error:  apiErr.Error(),
			Status: "error",
		}
	}

	response := ErrorResponse{
		Error:   apiErr.Error(),
		Status:  "error",
		Field:   apiErr.Field,
		Details: apiErr.Details,
	}
	if apiErr.Cause != nil {
		response.Cause = apiErr.GetFullError()
	}
	return apiErr.StatusCode, response
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	status, response := r.errorResponse(err)
	r.WriteJSONStatus(w, status, response)
}

// WriteHTML renders component with the given status. Rendering happens into
// a buffer, so a failing component still yields a 500 rather than a
// truncated page.
func (r Responder) WriteHTML(w http.ResponseWriter, req *http.Request, status int, component templ.Component) {
	templ.Handler(component,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(req *http.Request, err error) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				r.logger.Error().Err(err).Str("path", req.URL.Path).Msg("error rendering page")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, req)
}

// WriteErrorPage is WriteError for HTML routes.
func (r Responder) WriteErrorPage(w http.ResponseWriter, req *http.Request, site models.Site, err error) {
	status, response := r.errorResponse(err)
	message := response.Details
	if message == "" {
		message = response.Error
	}
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	r.WriteHTML(w, req, status, view.ErrorPage(site, status, message))
}
