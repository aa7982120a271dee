package console_test

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"prioritize/infrastructure/config"
	"prioritize/infrastructure/di"
	"prioritize/interfaces/console"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDriver(t *testing.T, script string) (*console.Driver, *bytes.Buffer) {
	t.Helper()
	return newDriverReading(t, strings.NewReader(script))
}

func newDriverReading(t *testing.T, in io.Reader) (*console.Driver, *bytes.Buffer) {
	t.Helper()

	cfg := config.Default()
	cfg.Environment = "test"
	cfg.LogLevel = "error"
	cfg.RequestTimeout = 2 * time.Second

	server, err := di.InitializeServer(cfg)
	require.NoError(t, err)
	ts := httptest.NewServer(server.Router.Setup())
	t.Cleanup(ts.Close)
	cfg.ServiceURL = ts.URL

	out := &bytes.Buffer{}
	renderer := console.NewRenderer(out)
	ed, err := di.InitializeEditor(cfg, renderer, renderer)
	require.NoError(t, err)
	require.NoError(t, ed.Session.Open(context.Background()))

	return console.NewDriver(ed.Session, renderer, in, zap.NewNop()), out
}

func TestDriver_Run(t *testing.T) {
	script := strings.Join([]string{
		"help",
		"add a",
		"add b",
		"add",
		"edge 3 2",
		"rename 2",
		"rename 9 x",
		"rmedge 1",
		"rm 3",
		"bogus",
		"quit",
		"add never",
	}, "\n")
	driver, out := newDriver(t, script)

	require.NoError(t, driver.Run(context.Background()))

	text := out.String()
	for _, want := range []string{
		"commands:",
		`added "a"`,
		`added "b"`,
		"add cancelled",
		"added b -> a",
		"rename cancelled",
		"! UNKNOWN_HANDLE",
		"removed b -> a",
		`removed "b"`,
		`unknown command "bogus"`,
	} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "never")
}

func TestDriver_EndOfInput(t *testing.T) {
	driver, out := newDriver(t, "add a\n")

	require.NoError(t, driver.Run(context.Background()))
	assert.Contains(t, out.String(), "[2] a")
}

func TestDriver_BadArguments(t *testing.T) {
	driver, out := newDriver(t, "")
	ctx := context.Background()

	assert.False(t, driver.Execute(ctx, "edge 1"))
	assert.False(t, driver.Execute(ctx, "edge x y"))
	assert.False(t, driver.Execute(ctx, "rm"))
	assert.False(t, driver.Execute(ctx, "rmedge z"))
	assert.False(t, driver.Execute(ctx, "rename"))
	assert.True(t, driver.Execute(ctx, "exit"))

	text := out.String()
	assert.Contains(t, text, "usage: edge <from> <to>")
	assert.Contains(t, text, "handles are numbers")
	assert.Contains(t, text, "usage: rm <handle>")
	assert.Contains(t, text, "usage: rmedge <edge>")
	assert.Contains(t, text, "usage: rename <handle> [label]")
}

func TestDriver_CancelledContext(t *testing.T) {
	driver, _ := newDriver(t, "add a\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, driver.Run(ctx), context.Canceled)
}

func TestDriver_CancelWhileWaitingForInput(t *testing.T) {
	in, feed := io.Pipe()
	defer feed.Close()

	driver, _ := newDriverReading(t, in)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- driver.Run(ctx) }()

	cancel()

	select {
	case err := <-result:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run kept waiting for input after cancellation")
	}
}
