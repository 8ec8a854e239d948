package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/davidcollom/dbcost/pkg/logger"
	"github.com/davidcollom/dbcost/pkg/search"
	"github.com/davidcollom/dbcost/pkg/table"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Query keys of the row endpoints, next to the search keys.
const (
	KeySort     = "sort"
	KeyOrder    = "order"
	KeyPage     = "page"
	KeyPageSize = "pageSize"
)

const defaultPageSize = 50

// RowsResponse is one page of a table view.
type RowsResponse struct {
	Config search.Config    `json:"config"`
	Sort   *table.SortOrder `json:"sort,omitempty"`
	Page   table.Page       `json:"page"`
}

// InstanceResponse is the detail view of one instance.
type InstanceResponse struct {
	Instance   *catalog.Instance `json:"instance"`
	Rows       RowsResponse      `json:"rows"`
	SameClass  []table.Related   `json:"sameClass"`
	SameFamily []table.Related   `json:"sameFamily"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server serves read-only table views over HTTP.
type Server struct {
	engine *table.Engine
}

func NewServer(engine *table.Engine) *Server {
	return &Server{engine: engine}
}

// Router returns the HTTP handler of the API.
func (s *Server) Router(timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/rows", s.handleRows)
		r.Get("/regions", s.handleRegions)
		r.Get("/regions/{name}", s.handleRegion)
		r.Get("/instances/{name}", s.handleInstance)
		r.Get("/compare", s.handleCompare)
	})
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.WithFields(logrus.Fields{
			"method":    r.Method,
			"path":      r.URL.Path,
			"status":    ww.Status(),
			"duration":  time.Since(start).String(),
			"requestID": middleware.GetReqID(r.Context()),
		}).Debug("Served request")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"instances": s.engine.Catalog().Len(),
	})
}

func (s *Server) handleRows(w http.ResponseWriter, r *http.Request) {
	s.serveRows(w, r, s.engine.Dashboard)
}

func (s *Server) handleRegion(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "name")
	s.serveRows(w, r, func(config search.Config) []table.Row {
		return s.engine.Region(name, config)
	})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	a, b := r.URL.Query().Get("a"), r.URL.Query().Get("b")
	if a == "" || b == "" {
		writeError(w, http.StatusBadRequest, errors.New("both a and b instance names are required"))
		return
	}
	s.serveRows(w, r, func(config search.Config) []table.Row {
		return s.engine.Compare(a, b, config)
	})
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Regions().Available(s.engine.Catalog()))
}

func (s *Server) handleInstance(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "name")
	instance, ok := s.engine.Catalog().Find(name)
	if !ok {
		writeError(w, http.StatusNotFound, errors.Errorf("unknown instance %q", name))
		return
	}

	rows, err := s.rows(r.URL.Query(), func(config search.Config) []table.Row {
		return s.engine.Instance(name, config)
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, InstanceResponse{
		Instance:   instance,
		Rows:       rows,
		SameClass:  s.engine.RelatedCosts(s.engine.Catalog().SameClass(name), rows.Config),
		SameFamily: s.engine.RelatedCosts(s.engine.Catalog().SameFamily(name), rows.Config),
	})
}

func (s *Server) serveRows(w http.ResponseWriter, r *http.Request, generate table.Generator) {
	rows, err := s.rows(r.URL.Query(), generate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) rows(values url.Values, generate table.Generator) (RowsResponse, error) {
	config, err := search.ParseQuery(values)
	if err != nil {
		return RowsResponse{}, err
	}
	pagination, err := parsePagination(values)
	if err != nil {
		return RowsResponse{}, err
	}

	t := table.New(generate, config)
	response := RowsResponse{Config: config}
	if field := values.Get(KeySort); field != "" {
		sortField, err := table.ParseSortField(field)
		if err != nil {
			return RowsResponse{}, err
		}
		order := table.SortOrder{Field: sortField, Ascending: values.Get(KeyOrder) != "desc"}
		t.Sort(order)
		response.Sort = &order
	}
	response.Page = table.Paginate(t.Rows(), pagination, config.IsFiltering())
	return response, nil
}

func parsePagination(values url.Values) (table.Pagination, error) {
	p := table.Pagination{Current: 1, PageSize: defaultPageSize}
	if v := values.Get(KeyPage); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, errors.Errorf("invalid %s %q", KeyPage, v)
		}
		p.Current = n
	}
	if v := values.Get(KeyPageSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return p, errors.Errorf("invalid %s %q", KeyPageSize, v)
		}
		p.PageSize = n
	}
	return p, nil
}

// pathParam returns a decoded URL parameter. chi matches on the raw path when
// it is set, e.g. for region names with spaces and parentheses.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("Could not encode response: %s", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
