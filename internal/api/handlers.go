package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/anagram/pkg/errors"
	"github.com/matzehuels/anagram/pkg/io"
	"github.com/matzehuels/anagram/pkg/pipeline"
)

// defaultFormat is the response format when the request names none.
const defaultFormat = io.FormatJSON

// errorBody is the JSON body of a failed request.
type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

func (s *Server) handleAnagrams(w http.ResponseWriter, r *http.Request) {
	opts, err := s.parseOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType(result.Format))
	w.Header().Set("X-Anagram-Total", strconv.Itoa(result.Total))
	if result.CacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifact)
}

// parseOptions builds runner options from the path and query string.
func (s *Server) parseOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Letters:    chi.URLParam(r, "letters"),
		Format:     q.Get("format"),
		MaxLetters: s.cfg.MaxLetters,
	}
	if opts.Format == "" {
		opts.Format = defaultFormat
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidLimit, "invalid limit %q: must be a non-negative integer", v)
		}
		opts.Limit = n
	}
	return opts, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	body := errorBody{Code: errors.GetCode(err), Message: errors.UserMessage(err)}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
		body = errorBody{Code: errors.ErrCodeInternal, Message: "internal error"}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func contentType(format string) string {
	if format == io.FormatJSON {
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}
