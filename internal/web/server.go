// Package web serves the catalog and detail pages over HTTP.
package web

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/thoreinstein/mcpreg/internal/catalog"
	"github.com/thoreinstein/mcpreg/internal/errors"
	"github.com/thoreinstein/mcpreg/internal/logging"
	"github.com/thoreinstein/mcpreg/internal/view"
)

// Options configures a Server.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Server renders the catalog over HTTP.
type Server struct {
	echo     *echo.Echo
	resolver *view.Resolver
	opts     Options
	logger   *slog.Logger
}

// detailData is the detail template input.
type detailData struct {
	view.DetailPage

	// Path is the request path, reused for tab and client links.
	Path string
}

type notFoundData struct {
	Title   string
	Message string
	Link    string
}

var notFound = notFoundData{
	Title:   view.NotFoundTitle,
	Message: view.NotFoundMessage,
	Link:    view.NotFoundLink,
}

var pageNotFound = notFoundData{
	Title:   view.PageNotFoundTitle,
	Message: view.PageNotFoundMessage,
	Link:    view.NotFoundLink,
}

// notFoundFor picks the integration fallback for detail paths and the
// generic page for everything else.
func notFoundFor(path string) notFoundData {
	if path+"/" == catalog.DetailPrefix || strings.HasPrefix(path, catalog.DetailPrefix) {
		return notFound
	}
	return pageNotFound
}

// New builds a Server and registers its routes.
func New(resolver *view.Resolver, opts Options, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Server.ReadTimeout = opts.ReadTimeout

	s := &Server{echo: e, resolver: resolver, opts: opts, logger: logger}
	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:     true,
		LogURI:        true,
		LogStatus:     true,
		LogLatency:    true,
		LogValuesFunc: s.logRequest,
	}))
	s.Register(e)
	return s, nil
}

// Register adds the page routes to e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/", s.Catalog)
	e.GET(catalog.DetailPrefix+"*", s.Detail)
	e.GET("/healthz", s.Health)
	e.StaticFS("/static", staticAssets())
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Catalog renders the landing page.
func (s *Server) Catalog(c echo.Context) error {
	return c.Render(http.StatusOK, templateCatalog, s.resolver.CatalogPage())
}

// Detail renders an integration page. Any path whose last segment is a
// known identifier resolves; everything else gets the not-found page.
func (s *Server) Detail(c echo.Context) error {
	path := c.Request().URL.Path
	st := view.StateFromQuery(c.QueryParams())

	page, ok := s.resolver.Detail(catalog.Segments(path), st)
	if !ok {
		return c.Render(http.StatusNotFound, templateNotFound, notFound)
	}
	return c.Render(http.StatusOK, templateDetail, detailData{DetailPage: page, Path: path})
}

// Health reports liveness.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	if code == http.StatusNotFound {
		err = c.Render(code, templateNotFound, notFoundFor(c.Request().URL.Path))
	} else {
		s.logger.Error("request failed", "error", err, "path", c.Request().URL.Path)
		err = c.String(code, http.StatusText(code))
	}
	if err != nil {
		s.logger.Error("writing error response", "error", err)
	}
}

func (s *Server) logRequest(c echo.Context, v middleware.RequestLoggerValues) error {
	level := slog.LevelInfo
	if v.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.logger.LogAttrs(c.Request().Context(), level, "request",
		slog.String("method", v.Method),
		slog.String("uri", v.URI),
		slog.Int(logging.StatusKey, v.Status),
		slog.Duration("latency", v.Latency),
	)
	return nil
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", s.opts.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.echo.Listener = ln
	s.logger.Info("serving catalog", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start("")
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "serving")
	case <-ctx.Done():
	}

	timeout := s.opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	s.logger.Info("shutting down")
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutting down")
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serving")
	}
	return nil
}
