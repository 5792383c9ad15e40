package delivery

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"evacuation/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type deliveryFunc func(ctx context.Context) error

func (f deliveryFunc) Serve(ctx context.Context) error { return f(ctx) }

type recordingShutdowner struct {
	called chan struct{}
}

func (s *recordingShutdowner) Shutdown(...fx.ShutdownOption) error {
	close(s.called)

	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_ShutsDownOnFailure(t *testing.T) {
	shutdowner := &recordingShutdowner{called: make(chan struct{})}
	healthy := deliveryFunc(func(ctx context.Context) error {
		<-ctx.Done()

		return nil
	})
	broken := deliveryFunc(func(context.Context) error {
		return errors.New("address already in use")
	})

	Run(RunParams{
		Ctx:        context.Background(),
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Deliveries: []Delivery{healthy, broken},
	})

	select {
	case <-shutdowner.called:
	case <-time.After(time.Second):
		t.Fatal("shutdown was not requested")
	}
}

func TestRun_GracefulStopDoesNotShutDown(t *testing.T) {
	shutdowner := &recordingShutdowner{called: make(chan struct{})}

	Run(RunParams{
		Ctx:        context.Background(),
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Deliveries: []Delivery{deliveryFunc(func(context.Context) error { return nil })},
	})

	select {
	case <-shutdowner.called:
		t.Fatal("graceful stop must not shut the application down")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEchoServer_ServeAndStop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	srv := NewEchoServer(lc, "test", 0, e, nil, discardLogger())

	done := make(chan error, 1)
	go func() { done <- srv.Serve(context.Background()) }()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, time.Second, 10*time.Millisecond)
	lc.RequireStart()
	lc.RequireStop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}
