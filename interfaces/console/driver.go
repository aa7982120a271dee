package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"prioritize/application/editor"
	"prioritize/domain/core/entities"
	"prioritize/domain/core/valueobjects"

	"go.uber.org/zap"
)

const usage = `commands:
  add [label]              create an item (no label cancels)
  edge <from> <to>         make item <from> depend on item <to>
  rm <handle>              delete an item and its edges
  rmedge <edge>            delete an edge
  rename <handle> [label]  rename an item (no label cancels)
  refresh                  fetch the graph again
  help                     show this text
  quit                     leave`

// Driver turns typed commands into edit intents. It plays the part of the
// interactive graph editor: tentative items and edges get negative handles
// until the session confirms or cancels them.
type Driver struct {
	session  *editor.Session
	renderer *Renderer
	in       io.Reader
	logger   *zap.Logger

	nextTentative int
}

// NewDriver creates a driver reading commands from in
func NewDriver(session *editor.Session, renderer *Renderer, in io.Reader, logger *zap.Logger) *Driver {
	return &Driver{
		session:  session,
		renderer: renderer,
		in:       in,
		logger:   logger,
	}
}

// Run reads commands until quit, end of input or ctx is done. Input is read
// on its own goroutine so a cancelled ctx ends Run while it waits for a line.
func (d *Driver) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(d.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return ctx.Err()
				}
			}
			if d.Execute(ctx, line) {
				return nil
			}
		}
	}
}

// Execute runs a single command line and reports whether the user asked to quit
func (d *Driver) Execute(ctx context.Context, line string) bool {
	verb, rest := splitVerb(line)

	switch verb {
	case "":
	case "quit", "exit":
		return true
	case "help":
		d.renderer.Notice(usage)
	case "refresh":
		_ = d.session.Refresh(ctx)
	case "add":
		d.add(ctx, rest)
	case "edge":
		d.edge(ctx, rest)
	case "rm":
		d.remove(ctx, rest)
	case "rmedge":
		d.removeEdge(ctx, rest)
	case "rename":
		d.rename(ctx, rest)
	default:
		d.logger.Debug("Unknown console command", zap.String("verb", verb))
		d.renderer.Notice("unknown command %q, try help", verb)
	}
	return false
}

func (d *Driver) add(ctx context.Context, label string) {
	tentative := entities.Node{Handle: d.tentativeHandle()}
	done := editor.NewCompletion(func(r editor.Result[entities.Node]) {
		if r.Outcome == editor.Confirmed {
			d.renderer.Notice("added %q", r.Value.Label)
			return
		}
		d.renderer.Notice("add cancelled")
	})
	_ = d.session.CreateNode(ctx, tentative, label, done)
}

func (d *Driver) edge(ctx context.Context, args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		d.renderer.Notice("usage: edge <from> <to>")
		return
	}
	from, err1 := parseHandle(fields[0])
	to, err2 := parseHandle(fields[1])
	if err1 != nil || err2 != nil {
		d.renderer.Notice("handles are numbers")
		return
	}

	tentative := entities.Edge{Handle: valueobjects.EdgeHandle(d.tentativeHandle()), From: from, To: to}
	done := editor.NewCompletion(func(r editor.Result[entities.Edge]) {
		if r.Outcome == editor.Confirmed {
			d.renderer.Notice("added %s -> %s", r.Value.FromLabel, r.Value.ToLabel)
			return
		}
		d.renderer.Notice("edge cancelled")
	})
	_ = d.session.CreateEdge(ctx, tentative, done)
}

func (d *Driver) remove(ctx context.Context, args string) {
	h, err := parseHandle(strings.TrimSpace(args))
	if err != nil {
		d.renderer.Notice("usage: rm <handle>")
		return
	}

	done := editor.NewCompletion(func(r editor.Result[entities.Node]) {
		if r.Outcome == editor.Confirmed {
			d.renderer.Notice("removed %q", r.Value.Label)
			return
		}
		d.renderer.Notice("remove cancelled")
	})
	_ = d.session.DeleteNode(ctx, h, done)
}

func (d *Driver) removeEdge(ctx context.Context, args string) {
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		d.renderer.Notice("usage: rmedge <edge>")
		return
	}

	done := editor.NewCompletion(func(r editor.Result[entities.Edge]) {
		if r.Outcome == editor.Confirmed {
			d.renderer.Notice("removed %s -> %s", r.Value.FromLabel, r.Value.ToLabel)
			return
		}
		d.renderer.Notice("remove cancelled")
	})
	_ = d.session.DeleteEdge(ctx, valueobjects.EdgeHandle(n), done)
}

func (d *Driver) rename(ctx context.Context, args string) {
	first, label := splitVerb(args)
	h, err := parseHandle(first)
	if err != nil {
		d.renderer.Notice("usage: rename <handle> [label]")
		return
	}

	done := editor.NewCompletion(func(r editor.Result[entities.Node]) {
		if r.Outcome == editor.Confirmed {
			d.renderer.Notice("renamed to %q", r.Value.Label)
			return
		}
		d.renderer.Notice("rename cancelled")
	})
	_ = d.session.RenameNode(ctx, h, label, done)
}

// tentativeHandle hands out negative handles, which never occur in a snapshot
func (d *Driver) tentativeHandle() valueobjects.Handle {
	d.nextTentative--
	return valueobjects.Handle(d.nextTentative)
}

func splitVerb(line string) (verb, rest string) {
	line = strings.TrimSpace(line)
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i], strings.TrimSpace(line[i+1:])
	}
	return line, ""
}

func parseHandle(s string) (valueobjects.Handle, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid handle %q: %w", s, err)
	}
	return valueobjects.Handle(n), nil
}
