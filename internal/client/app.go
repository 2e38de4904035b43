package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/eapd/pkg/apd"
	"github.com/dmitrymomot/eapd/pkg/logger"
	"github.com/dmitrymomot/eapd/pkg/session"
	"github.com/dmitrymomot/eapd/pkg/tokenstore"
)

// API is the remote surface used by the commands.
type API interface {
	session.APIClient
	ListAPDs(ctx context.Context, token string) ([]apd.Summary, error)
}

// App runs eapd commands. Each Run owns a fresh session store whose
// transitions are printed as they happen.
type App struct {
	api          API
	tokens       tokenstore.Store
	in           *bufio.Reader
	out          io.Writer
	logger       *slog.Logger
	checkTimeout time.Duration
}

// Option configures an App.
type Option func(*App)

// WithIO sets the input read for prompts and the output for results.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		if in != nil {
			a.in = bufio.NewReader(in)
		}
		if out != nil {
			a.out = out
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithCheckTimeout bounds the session check of every command that needs one. Non-positive waits for the server.
func WithCheckTimeout(d time.Duration) Option {
	return func(a *App) { a.checkTimeout = d }
}

func New(api API, tokens tokenstore.Store, opts ...Option) *App {
	a := &App{
		api:          api,
		tokens:       tokens,
		in:           bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		logger:       slog.New(slog.DiscardHandler),
		checkTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type command struct {
	name  string
	usage string
	run   func(r *runner, ctx context.Context, args []string) error
}

var commands = []command{
	{"login", "login -u USERNAME [-p PASSWORD]   log in; the password is read from stdin when -p is omitted", (*runner).login},
	{"logout", "logout                            end the session and forget the stored token", (*runner).logout},
	{"whoami", "whoami                            verify the stored token and show the profile", (*runner).whoami},
	{"check", "check                             verify the stored token; exits non-zero when signed out", (*runner).checkCmd},
	{"edit-profile", "edit-profile [-name N] [-email E] [-position P] [-phone P] [-state S]", (*runner).editProfile},
	{"progress", "progress [-status STATUS]         show APD progress, for one status or the user's documents", (*runner).progress},
}

// Usage writes the command summary to w.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "usage: eapd <command> [flags]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintln(w, "  "+c.usage)
	}
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		Usage(a.out)
		return ErrUsage
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		Usage(a.out)
		return nil
	}
	for _, c := range commands {
		if c.name == name {
			r := a.newRunner(ctx)
			defer r.close()
			return c.run(r, ctx, args[1:])
		}
	}

	Usage(a.out)
	return fmt.Errorf("%w: unknown command %q", ErrUsage, name)
}

// runner is the per-invocation session: a store, a controller feeding it
// and a printer draining its snapshots.
type runner struct {
	app   *App
	store *session.Store
	ctrl  *session.Controller
	done  sync.WaitGroup
	mu    sync.Mutex // serializes writes to app.out

	lastMu sync.Mutex
	last   session.Event

	// Documents of the signed-in state, loaded once the session is authenticated.
	apdsMu     sync.Mutex
	apds       []apd.Summary
	apdsErr    error
	apdsLoaded bool
}

func (a *App) newRunner(ctx context.Context) *runner {
	r := &runner{app: a}
	r.store = session.NewStore(session.WithStoreLogger(a.logger))
	r.ctrl = session.NewController(a.api, a.tokens, r.dispatch,
		session.WithLogger(a.logger),
		session.WithOnAuthenticated(r.loadAPDs),
	)

	sub := r.store.Subscribe(context.WithoutCancel(ctx))
	r.done.Add(1)
	go func() {
		defer r.done.Done()
		for msg := range sub.Receive(ctx) {
			if line := transitionLine(msg.Data); line != "" {
				r.printf("%s\n", line)
			}
		}
	}()
	return r
}

func (r *runner) dispatch(ctx context.Context, evt session.Event) {
	r.lastMu.Lock()
	r.last = evt
	r.lastMu.Unlock()
	r.store.Dispatch(ctx, evt)
}

// loadAPDs fetches the documents of the authenticated user's state.
func (r *runner) loadAPDs(ctx context.Context, p session.Profile) {
	log := r.app.logger.With(slog.String("state", p.State))

	docs, err := func() ([]apd.Summary, error) {
		token, err := r.app.tokens.Get(ctx, tokenstore.TokenKey)
		if err != nil {
			return nil, err
		}
		return r.app.api.ListAPDs(ctx, token)
	}()
	if err != nil {
		log.WarnContext(ctx, "failed to load apds", logger.Error(err))
	} else {
		log.DebugContext(ctx, "apds loaded", slog.Int("count", len(docs)))
	}

	r.apdsMu.Lock()
	defer r.apdsMu.Unlock()
	r.apds, r.apdsErr, r.apdsLoaded = docs, err, true
}

// loadedAPDs returns what loadAPDs fetched. ok is false when no
// authenticated event triggered a load.
func (r *runner) loadedAPDs() (docs []apd.Summary, ok bool, err error) {
	r.apdsMu.Lock()
	defer r.apdsMu.Unlock()
	return r.apds, r.apdsLoaded, r.apdsErr
}

// lastEvent returns the most recent event emitted by the controller.
func (r *runner) lastEvent() session.Event {
	r.lastMu.Lock()
	defer r.lastMu.Unlock()
	return r.last
}

// close stops publishing and waits until every snapshot has been printed.
// Commands call it before printing results so those follow the transitions.
func (r *runner) close() {
	_ = r.store.Close()
	r.done.Wait()
}

func (r *runner) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.app.out, format, args...)
}

func (r *runner) readLine(prompt string) (string, error) {
	r.printf("%s", prompt)
	line, err := r.app.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(strings.TrimSpace(prompt), ":"), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
