package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"

	"evacuation/internal/domain/lifecycle"
	"evacuation/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
	"golang.org/x/sync/errgroup"
)

// EchoServer runs an echo instance as a Delivery and shuts it down when the
// fx application stops.
type EchoServer struct {
	name   string
	addr   string
	echo   *echo.Echo
	h2c    *http2.Server
	logger *slog.Logger
}

// NewEchoServer listens on every interface at port. A non-nil h2c enables
// cleartext HTTP/2.
func NewEchoServer(lc fx.Lifecycle, name string, port int, e *echo.Echo, h2c *http2.Server, logger *slog.Logger) *EchoServer {
	s := &EchoServer{
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(port)),
		echo:   e,
		h2c:    h2c,
		logger: logger.With(slog.String("server", name)),
	}
	lc.Append(fx.StopHook(s.shutdown))

	return s
}

func (s *EchoServer) Serve(context.Context) error {
	s.logger.Info("Listening", slog.String("addr", s.addr))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(s.addr, s.h2c)
	} else {
		err = s.echo.Start(s.addr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.Wrapf(err, "%s server", s.name)
}

func (s *EchoServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}

// RunParams collects every Delivery registered in the "deliveries" group.
type RunParams struct {
	fx.In

	Ctx        context.Context
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Run serves all deliveries in the background. The first one to fail shuts
// the application down, which runs the OnStop hooks of the others.
func Run(params RunParams) {
	group, groupCtx := errgroup.WithContext(params.Ctx)
	for _, d := range params.Deliveries {
		group.Go(func() error {
			return d.Serve(groupCtx)
		})
	}
	go func() { _ = group.Wait() }()

	go func() {
		<-groupCtx.Done()
		err := context.Cause(groupCtx)
		if errors.Is(err, context.Canceled) {
			return
		}

		params.Logger.Error("Server stopped unexpectedly", slog.Any("error", err))
		if shutdownErr := params.Shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
			params.Logger.Error("Failed to shut down gracefully", slog.Any("error", shutdownErr))
			os.Exit(1)
		}
	}()
}
