// Package accessor reads the map-data server's metadata and statistics
// endpoints.
//
// A call runs in three steps: the invocation options select a strategy, the
// interactive strategy resolves missing credentials through a prompt, and a
// single GET is dispatched with whatever credentials the ConnectionContext
// holds. Programmatic callers receive (err, result) through a callback;
// scripted and interactive callers get the result printed to stdout and the
// error returned for the command layer to report.
package accessor

import (
	"context"
	"io"
	"os"

	"github.com/tansive/hecate/internal/common/httpclient"
	"github.com/tansive/hecate/internal/prompt"
)

// PromptLabel prefixes every prompt line.
const PromptLabel = "$"

// Callback receives the outcome of a programmatic call. Exactly one of err
// and result is set.
type Callback func(err error, result Payload)

// Accessor issues endpoint calls against one ConnectionContext.
type Accessor struct {
	conn      *ConnectionContext
	transport httpclient.Transport
	prompter  prompt.Prompter
	stdout    io.Writer
	promptOut io.Writer
}

// Option configures an Accessor.
type Option func(*Accessor)

// WithTransport replaces the default HTTP client.
func WithTransport(t httpclient.Transport) Option {
	return func(a *Accessor) { a.transport = t }
}

// WithPrompter replaces the stdin prompter used in interactive mode.
func WithPrompter(p prompt.Prompter) Option {
	return func(a *Accessor) { a.prompter = p }
}

// WithStdout sets where scripted and interactive results are printed.
func WithStdout(w io.Writer) Option {
	return func(a *Accessor) { a.stdout = w }
}

// WithPromptOutput sets where prompts are written. Defaults to stderr so
// that stdout stays clean for piping.
func WithPromptOutput(w io.Writer) Option {
	return func(a *Accessor) { a.promptOut = w }
}

// New creates an Accessor bound to conn. Credentials resolved by interactive
// calls are stored in conn and reused by later calls.
func New(conn *ConnectionContext, opts ...Option) *Accessor {
	a := &Accessor{
		conn:      conn,
		stdout:    os.Stdout,
		promptOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.transport == nil {
		a.transport = httpclient.NewClient(conn)
	}
	if a.prompter == nil {
		a.prompter = prompt.NewStdin()
	}
	return a
}

// Connection returns the shared connection context.
func (a *Accessor) Connection() *ConnectionContext {
	return a.conn
}

// Get fetches server metadata.
func (a *Accessor) Get(ctx context.Context, opts *Options, cb Callback) error {
	return a.Fetch(ctx, MetaEndpoint, opts, cb)
}

// Stats fetches server statistics.
func (a *Accessor) Stats(ctx context.Context, opts *Options, cb Callback) error {
	return a.Fetch(ctx, StatsEndpoint, opts, cb)
}

// Call runs the selector, resolver and dispatcher for ep and returns the
// outcome without delivering it anywhere. Exactly one request is sent unless
// the prompt fails first.
func (a *Accessor) Call(ctx context.Context, ep Endpoint, opts *Options) (Payload, error) {
	return a.call(ctx, ep, selectStrategy(opts))
}

func (a *Accessor) call(ctx context.Context, ep Endpoint, s strategy) (Payload, error) {
	if s.prompt {
		if err := a.resolve(ep); err != nil {
			return nil, err
		}
	}
	return a.dispatch(ctx, ep)
}

// Fetch calls ep and delivers the outcome according to opts.
//
// In programmatic mode cb is invoked exactly once and Fetch returns nil. In
// scripted and interactive modes cb is ignored: a successful result is
// printed to stdout with four space indentation and any error is returned.
func (a *Accessor) Fetch(ctx context.Context, ep Endpoint, opts *Options, cb Callback) error {
	s := selectStrategy(opts)
	result, err := a.call(ctx, ep, s)
	if !s.console {
		if cb != nil {
			cb(err, result)
		}
		return nil
	}
	if err != nil {
		return err
	}
	out, err := result.Indent()
	if err != nil {
		return err
	}
	_, err = a.stdout.Write(out)
	return err
}
