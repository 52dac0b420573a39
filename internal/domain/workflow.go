package domain

import (
	"context"
	"fmt"

	"github.com/mouse-blink/litsplice/internal/adapter"
	"github.com/mouse-blink/litsplice/internal/controller"
	"github.com/mouse-blink/litsplice/internal/ctxlog"
	m "github.com/mouse-blink/litsplice/internal/model"
	"golang.org/x/sync/errgroup"
)

// RunArgs holds the targets of a run or check.
type RunArgs struct {
	Targets []m.Target
	// Threads bounds how many host documents are processed at once.
	Threads int
}

// EncodeArgs selects the asset printed by Encode.
type EncodeArgs struct {
	Target m.Target
}

// ListArgs holds the targets shown by List.
type ListArgs struct {
	Targets []m.Target
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	// Run embeds every target and rewrites the host documents that changed.
	Run(ctx context.Context, args RunArgs) error
	// Check runs the pipeline without writing and fails with ErrStale when a
	// host document would change.
	Check(ctx context.Context, args RunArgs) error
	// Encode prints the literal for a single asset.
	Encode(ctx context.Context, args EncodeArgs) error
	// List shows the configured targets.
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
	embedder  Embedder
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, ui controller.UI, embedder Embedder) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
		embedder:  embedder,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	results, err := w.process(ctx, args, ModeWrite)
	if len(results) > 0 {
		if displayErr := w.ui.DisplayResults(results); displayErr != nil && err == nil {
			err = displayErr
		}
	}

	return err
}

func (w *workflow) Check(ctx context.Context, args RunArgs) error {
	results, err := w.process(ctx, args, ModeCheck)
	if len(results) > 0 {
		if displayErr := w.ui.DisplayResults(results); displayErr != nil && err == nil {
			err = displayErr
		}
	}

	if err != nil {
		return err
	}

	stale := 0

	for _, res := range results {
		if res.Status == m.StatusStale {
			stale++
		}
	}

	if stale > 0 {
		return fmt.Errorf("%w: %d of %d targets need regenerating", ErrStale, stale, len(results))
	}

	return nil
}

func (w *workflow) Encode(ctx context.Context, args EncodeArgs) error {
	text, _, err := w.embedder.Literal(ctx, args.Target.WithDefaults())
	if err != nil {
		return err
	}

	return w.ui.DisplayLiteral(text)
}

func (w *workflow) List(_ context.Context, args ListArgs) error {
	return w.ui.DisplayTargets(args.Targets)
}

// hostGroup holds the indexes of targets sharing one host document, in
// declaration order.
type hostGroup struct {
	host    m.Path
	indexes []int
}

// process embeds all targets. Targets sharing a host document run one after
// another so each sees the previous one's output; distinct host documents
// run in parallel, bounded by args.Threads. The first failure cancels the
// remaining work. Results of completed targets are returned in declaration
// order alongside the error.
func (w *workflow) process(ctx context.Context, args RunArgs, mode Mode) ([]m.RunResult, error) {
	if len(args.Targets) == 0 {
		return nil, fmt.Errorf("%w: no targets to process", ErrInvalidTarget)
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	targets := make([]m.Target, len(args.Targets))
	for i, target := range args.Targets {
		targets[i] = target.WithDefaults()
	}

	groups := w.groupByHost(targets)

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Processing targets.", "targets", len(targets), "hosts", len(groups), "threads", threads)

	results := make([]m.RunResult, len(targets))
	done := make([]bool, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for _, group := range groups {
		group := group
		g.Go(func() error {
			for _, idx := range group.indexes {
				if err := gctx.Err(); err != nil {
					return err
				}

				target := targets[idx]

				res, err := w.embedder.Embed(gctx, target, mode)
				if err != nil {
					return fmt.Errorf("target %s: %w", target.Name, err)
				}

				results[idx] = res
				done[idx] = true
			}

			return nil
		})
	}

	err := g.Wait()

	completed := make([]m.RunResult, 0, len(results))

	for i, res := range results {
		if done[i] {
			completed = append(completed, res)
		}
	}

	return completed, err
}

func (w *workflow) groupByHost(targets []m.Target) []*hostGroup {
	byHost := make(map[m.Path]*hostGroup)

	var groups []*hostGroup

	for i, target := range targets {
		key, err := w.fsAdapter.AbsPath(target.Host)
		if err != nil {
			key = target.Host
		}

		group, ok := byHost[key]
		if !ok {
			group = &hostGroup{host: key}
			byHost[key] = group
			groups = append(groups, group)
		}

		group.indexes = append(group.indexes, i)
	}

	return groups
}
