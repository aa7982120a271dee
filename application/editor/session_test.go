package editor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"prioritize/application/editor"
	"prioritize/domain/core/entities"
	"prioritize/domain/core/valueobjects"
	"prioritize/infrastructure/config"
	"prioritize/infrastructure/di"
	pkgerrors "prioritize/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is the renderer and error signal of the session under test
type recorder struct {
	mu       sync.Mutex
	snapshot *entities.Snapshot
	redraws  int
	signals  []error
}

func (r *recorder) SetData(s *entities.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = s
}

func (r *recorder) Redraw() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redraws++
}

func (r *recorder) redrawCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.redraws
}

func (r *recorder) Signal(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.signals = append(r.signals, err)
}

// requestLog counts requests per method and path
type requestLog struct {
	mu    sync.Mutex
	calls map[string]int
}

func (l *requestLog) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l.mu.Lock()
		l.calls[r.Method+" "+r.URL.Path]++
		l.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (l *requestLog) count(endpoint string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[endpoint]
}

type fixture struct {
	session  *editor.Session
	recorder *recorder
	requests *requestLog
	server   *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := config.Default()
	cfg.Environment = "test"
	cfg.LogLevel = "error"
	cfg.AppName = "backlog"
	cfg.RequestTimeout = 2 * time.Second

	server, err := di.InitializeServer(cfg)
	require.NoError(t, err)

	requests := &requestLog{calls: map[string]int{}}
	ts := httptest.NewServer(requests.wrap(server.Router.Setup()))
	t.Cleanup(ts.Close)

	cfg.ServiceURL = ts.URL
	rec := &recorder{}
	ed, err := di.InitializeEditor(cfg, rec, rec)
	require.NoError(t, err)

	require.NoError(t, ed.Session.Open(context.Background()))

	return &fixture{
		session:  ed.Session,
		recorder: rec,
		requests: requests,
		server:   ts,
	}
}

func (f *fixture) createNode(t *testing.T, label string) editor.Result[entities.Node] {
	t.Helper()
	done := editor.NewCompletion[entities.Node](nil)
	_ = f.session.CreateNode(context.Background(), entities.Node{Handle: -1}, label, done)
	require.True(t, done.Settled())
	return done.Result()
}

func (f *fixture) createEdge(t *testing.T, from, to string) editor.Result[entities.Edge] {
	t.Helper()
	s := f.session.Snapshot()
	fromNode, ok := s.NodeByLabel(from)
	require.True(t, ok)
	toNode, ok := s.NodeByLabel(to)
	require.True(t, ok)

	done := editor.NewCompletion[entities.Edge](nil)
	_ = f.session.CreateEdge(context.Background(), entities.Edge{Handle: -1, From: fromNode.Handle, To: toNode.Handle}, done)
	require.True(t, done.Settled())
	return done.Result()
}

func (f *fixture) handleOf(t *testing.T, label string) valueobjects.Handle {
	t.Helper()
	node, ok := f.session.Snapshot().NodeByLabel(label)
	require.True(t, ok, "no node labelled %q", label)
	return node.Handle
}

func labels(s *entities.Snapshot) []string {
	var out []string
	for _, n := range s.Nodes() {
		out = append(out, n.Label)
	}
	return out
}

func TestSession_CreateNodeThenDelete(t *testing.T) {
	f := newFixture(t)

	result := f.createNode(t, "y")
	require.Equal(t, editor.Confirmed, result.Outcome)
	assert.Contains(t, labels(f.session.Snapshot()), "y")

	done := editor.NewCompletion[entities.Node](nil)
	err := f.session.DeleteNode(context.Background(), f.handleOf(t, "y"), done)

	require.NoError(t, err)
	assert.Equal(t, editor.Confirmed, done.Result().Outcome)
	assert.NotContains(t, labels(f.session.Snapshot()), "y")
}

func TestSession_CreateNode_CancelledPromptMakesNoCall(t *testing.T) {
	f := newFixture(t)
	before := f.session.Snapshot()

	result := f.createNode(t, "")

	assert.Equal(t, editor.Cancelled, result.Outcome)
	assert.Zero(t, f.requests.count("PUT /item/put"))
	assert.Same(t, before, f.session.Snapshot())
	assert.Empty(t, f.recorder.signals)
}

func TestSession_SelfLoopMakesNoCall(t *testing.T) {
	f := newFixture(t)
	f.createNode(t, "x")
	before := f.session.Snapshot()
	fetches := f.requests.count("GET /item/vis")
	x := f.handleOf(t, "x")

	done := editor.NewCompletion[entities.Edge](nil)
	err := f.session.CreateEdge(context.Background(), entities.Edge{Handle: -1, From: x, To: x}, done)

	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, editor.Cancelled, done.Result().Outcome)
	assert.Zero(t, f.requests.count("PUT /item/put-edge"))
	assert.Equal(t, fetches, f.requests.count("GET /item/vis"))
	assert.Same(t, before, f.session.Snapshot())
}

func TestSession_UnchangedRenameMakesNoCall(t *testing.T) {
	for _, proposed := range []string{"x", " x ", "", "   "} {
		t.Run("proposed "+strconv.Quote(proposed), func(t *testing.T) {
			f := newFixture(t)
			f.createNode(t, "x")
			before := f.session.Snapshot()
			fetches := f.requests.count("GET /item/vis")

			done := editor.NewCompletion[entities.Node](nil)
			err := f.session.RenameNode(context.Background(), f.handleOf(t, "x"), proposed, done)

			assert.True(t, pkgerrors.IsValidation(err))
			assert.Equal(t, editor.Cancelled, done.Result().Outcome)
			assert.Zero(t, f.requests.count("PATCH /item/rename"))
			assert.Equal(t, fetches, f.requests.count("GET /item/vis"))
			assert.Same(t, before, f.session.Snapshot())
			assert.Empty(t, f.recorder.signals)
		})
	}
}

func TestSession_CompletionSettlesBeforeRefresh(t *testing.T) {
	f := newFixture(t)
	before := f.session.Snapshot()
	redraws := f.recorder.redrawCount()

	var atSettle *entities.Snapshot
	var redrawsAtSettle int
	done := editor.NewCompletion(func(editor.Result[entities.Node]) {
		atSettle = f.session.Snapshot()
		redrawsAtSettle = f.recorder.redrawCount()
	})

	err := f.session.CreateNode(context.Background(), entities.Node{Handle: -1}, "y", done)

	require.NoError(t, err)
	assert.Equal(t, editor.Confirmed, done.Result().Outcome)
	assert.Same(t, before, atSettle)
	assert.Equal(t, redraws, redrawsAtSettle)
	assert.NotSame(t, before, f.session.Snapshot())
	assert.Equal(t, redraws+1, f.recorder.redrawCount())
	assert.Contains(t, labels(f.session.Snapshot()), "y")
}

func TestSession_RenameRewritesEdges(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.createNode(t, "A")
	f.createNode(t, "C")
	f.createNode(t, "D")
	require.Equal(t, editor.Confirmed, f.createEdge(t, "A", "C").Outcome)
	require.Equal(t, editor.Confirmed, f.createEdge(t, "D", "A").Outcome)

	// Act
	done := editor.NewCompletion[entities.Node](nil)
	err := f.session.RenameNode(context.Background(), f.handleOf(t, "A"), "B", done)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "B", done.Result().Value.Label)

	s := f.session.Snapshot()
	names := labels(s)
	assert.NotContains(t, names, "A")
	count := 0
	for _, name := range names {
		if name == "B" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.True(t, s.HasEdge("B", "C"))
	assert.True(t, s.HasEdge("D", "B"))
	assert.Equal(t, 2, s.EdgeCount())
}

func TestSession_RenameRejectedKeepsLabel(t *testing.T) {
	f := newFixture(t)
	f.createNode(t, "x")
	f.createNode(t, "taken")

	done := editor.NewCompletion[entities.Node](nil)
	err := f.session.RenameNode(context.Background(), f.handleOf(t, "x"), "taken", done)

	assert.True(t, pkgerrors.IsRemoteRejected(err))
	assert.Equal(t, http.StatusConflict, pkgerrors.GetAppError(err).HTTPStatus)
	assert.Equal(t, editor.Cancelled, done.Result().Outcome)
	assert.ElementsMatch(t, []string{"x", "taken"}, labels(f.session.Snapshot()))
	assert.Len(t, f.recorder.signals, 1)
}

func TestSession_DuplicateEdgeRejected(t *testing.T) {
	f := newFixture(t)
	f.createNode(t, "a")
	f.createNode(t, "b")
	require.Equal(t, editor.Confirmed, f.createEdge(t, "a", "b").Outcome)

	result := f.createEdge(t, "a", "b")

	assert.Equal(t, editor.Cancelled, result.Outcome)
	assert.Equal(t, 1, f.session.Snapshot().EdgeCount())
}

func TestSession_DeleteNodeDropsIncidentEdges(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"a", "b", "c"} {
		f.createNode(t, name)
	}
	f.createEdge(t, "a", "b")
	f.createEdge(t, "b", "c")
	f.createEdge(t, "a", "c")

	done := editor.NewCompletion[entities.Node](nil)
	require.NoError(t, f.session.DeleteNode(context.Background(), f.handleOf(t, "b"), done))

	s := f.session.Snapshot()
	assert.Equal(t, 1, s.EdgeCount())
	assert.True(t, s.HasEdge("a", "c"))
	for _, e := range s.Edges() {
		assert.NotEqual(t, "b", e.FromLabel)
		assert.NotEqual(t, "b", e.ToLabel)
	}
}

func TestSession_DeleteEdge(t *testing.T) {
	f := newFixture(t)
	f.createNode(t, "a")
	f.createNode(t, "b")
	f.createEdge(t, "a", "b")
	edge := f.session.Snapshot().Edges()[0]

	done := editor.NewCompletion[entities.Edge](nil)
	err := f.session.DeleteEdge(context.Background(), edge.Handle, done)

	require.NoError(t, err)
	assert.Zero(t, f.session.Snapshot().EdgeCount())
	assert.Equal(t, 2, f.session.Snapshot().NodeCount())
}

func TestSession_RefreshIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.createNode(t, "a")
	f.createNode(t, "b")
	f.createEdge(t, "a", "b")

	require.NoError(t, f.session.Refresh(context.Background()))
	first := f.session.Snapshot()
	require.NoError(t, f.session.Refresh(context.Background()))
	second := f.session.Snapshot()

	assert.Equal(t, first.Nodes(), second.Nodes())
	assert.Equal(t, first.Edges(), second.Edges())
}

func TestSession_NetworkFailureKeepsSnapshot(t *testing.T) {
	f := newFixture(t)
	f.createNode(t, "a")
	before := f.session.Snapshot()
	f.server.Close()

	done := editor.NewCompletion[entities.Node](nil)
	err := f.session.CreateNode(context.Background(), entities.Node{Handle: -1}, "b", done)

	assert.True(t, pkgerrors.IsNetwork(err))
	assert.Equal(t, editor.Cancelled, done.Result().Outcome)
	assert.Same(t, before, f.session.Snapshot())
	// the intent failure and the failed refresh
	assert.Len(t, f.recorder.signals, 2)
}

func TestSession_Title(t *testing.T) {
	f := newFixture(t)

	title, err := f.session.Title(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "backlog | prioritize", title)
}
