package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/91xusir/boxpacker3d/internal/events"
	"github.com/91xusir/boxpacker3d/internal/packconfig"
	"github.com/91xusir/boxpacker3d/internal/packer"
)

// Server wires the engine behind an echo.Echo instance.
type Server struct {
	Echo *echo.Echo

	defaultConfig packconfig.Config
	log           *logrus.Logger
}

// NewServer builds a Server that runs every request from defaultConfig,
// with routes registered. log, when non-nil, receives one entry per pack
// request, tagged with a correlation ID; a nil log disables request logging.
func NewServer(defaultConfig packconfig.Config, log *logrus.Logger) *Server {
	s := &Server{Echo: echo.New(), defaultConfig: defaultConfig, log: log}
	s.Echo.HideBanner = true

	s.Echo.Use(s.correlationIDMiddleware)

	s.Echo.GET("/healthz", s.handleHealth)
	s.Echo.POST("/v1/pack", s.handlePackBatch)
	s.Echo.POST("/v1/pack/stream", s.handlePackStream)
	return s
}

const correlationIDHeader = "X-Correlation-ID"
const correlationIDKey = "correlation_id"

func (s *Server) correlationIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(correlationIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(correlationIDKey, id)
		c.Response().Header().Set(correlationIDHeader, id)
		return next(c)
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePackBatch(c echo.Context) error {
	var req PackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed request body"})
	}

	validated, err := IntoValidated(req, s.defaultConfig.AllowItemRotation)
	if err != nil {
		return s.respondValidationFailure(c, err)
	}

	cfg := ConfigFor(s.defaultConfig, validated)
	result := packer.Pack(validated.Templates, validated.Items, cfg, events.NullSink{})

	s.logRequest(c, len(validated.Items), len(result.Unplaced))
	return c.JSON(http.StatusOK, BuildResponse(result))
}

func (s *Server) handlePackStream(c echo.Context) error {
	var req PackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed request body"})
	}

	validated, err := IntoValidated(req, s.defaultConfig.AllowItemRotation)
	if err != nil {
		return s.respondValidationFailure(c, err)
	}
	cfg := ConfigFor(s.defaultConfig, validated)

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)

	ch := make(chan events.Event)
	done := make(chan struct{})
	go func() {
		defer close(done)
		packer.Pack(validated.Templates, validated.Items, cfg, events.NewChannelSink(ch))
		close(ch)
	}()

	for ev := range ch {
		if err := writeSSEEvent(resp, ev); err != nil {
			return err
		}
	}
	<-done

	s.logRequest(c, len(validated.Items), -1)
	return nil
}

func writeSSEEvent(resp *echo.Response, ev events.Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := resp.Write([]byte("data: ")); err != nil {
		return err
	}
	if _, err := resp.Write(b); err != nil {
		return err
	}
	if _, err := resp.Write([]byte("\n\n")); err != nil {
		return err
	}
	resp.Flush()
	return nil
}

func (s *Server) respondValidationFailure(c echo.Context, err error) error {
	if vf, ok := err.(*ValidationFailure); ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": vf.Code, "message": vf.Message})
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid_request", "message": err.Error()})
}

func (s *Server) logRequest(c echo.Context, itemCount, unplacedCount int) {
	if s.log == nil {
		return
	}
	entry := s.log.WithField(correlationIDKey, c.Get(correlationIDKey))
	if unplacedCount >= 0 {
		entry = entry.WithField("unplaced", unplacedCount)
	}
	entry.WithField("items", itemCount).Info("pack request handled")
}
