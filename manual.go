package resume2pdf

import (
	"context"
	"fmt"
	"os/exec"
)

// ManualRendererName identifies the browser hand-off in results and logs.
const ManualRendererName = "browser"

// commander is implemented by openers that can report their launcher command.
type commander interface {
	Command(target string) (name string, args []string, err error)
}

// Compile-time interface check.
var _ Renderer = (*browserRenderer)(nil)

// browserRenderer opens the source in the default browser and leaves the
// print-to-PDF step to the user. It never writes a PDF itself.
type browserRenderer struct {
	opener   Opener
	lookPath func(string) (string, error)
}

func newBrowserRenderer(opener Opener) *browserRenderer {
	return &browserRenderer{opener: opener, lookPath: exec.LookPath}
}

func (r *browserRenderer) Strategy() Strategy { return StrategyBrowser }
func (r *browserRenderer) Name() string       { return ManualRendererName }

// Available checks that the platform launcher exists.
func (r *browserRenderer) Available(_ context.Context) error {
	if r.opener == nil {
		return fmt.Errorf("%w: no opener configured", ErrRendererUnavailable)
	}

	c, ok := r.opener.(commander)
	if !ok {
		return nil
	}
	name, _, err := c.Command("about:blank")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRendererUnavailable, err)
	}
	if r.lookPath != nil {
		if _, err := r.lookPath(name); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrRendererUnavailable, name, err)
		}
	}
	return nil
}

// Render opens the source page so the user can print it from the browser.
func (r *browserRenderer) Render(ctx context.Context, job Job) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.opener.Open(ctx, FileURL(job.Source)); err != nil {
		return nil, err
	}
	return &Result{
		Renderer: ManualRendererName,
		Strategy: StrategyBrowser,
		Manual:   true,
	}, nil
}

// Close is a no-op.
func (r *browserRenderer) Close() error {
	return nil
}
