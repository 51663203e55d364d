package cli

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/fatih/color"

	"github.com/nerrad567/ha-entity-renamer/internal/hub"
	"github.com/nerrad567/ha-entity-renamer/internal/infrastructure/config"
	"github.com/nerrad567/ha-entity-renamer/internal/infrastructure/logging"
	"github.com/nerrad567/ha-entity-renamer/internal/plan"
	"github.com/nerrad567/ha-entity-renamer/internal/render"
)

// Outcome styling for per-item apply results. fatih/color disables
// itself automatically when stdout is not a terminal.
var (
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed, color.Bold)
)

// Options captures the validated command-line selections for one run.
type Options struct {
	ConfigPath string
	InputFile  string
	Search     string
	Replace    string
	HasReplace bool
	OutputFile string
	AssumeYes  bool
}

// runner executes one list → plan → preview → apply cycle. The
// confirmation provider and output stream are injected for testing.
type runner struct {
	confirm Confirmer
	stdout  io.Writer
}

// run drives the whole flow. It returns nil for "nothing to do"
// outcomes (no matches, declined confirmation, preview-only run);
// errors are reserved for failures.
func (r *runner) run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Logging, version)
	client := hub.NewClient(cfg.Hub, logger.With("component", "hub"))

	// Build the plan: verbatim from file, or from the live listing.
	var rows []plan.Row
	mutating := false

	if opts.InputFile != "" {
		rows, err = plan.ReadFile(opts.InputFile)
		if err != nil {
			return err
		}
		mutating = true
	} else {
		search, err := regexp.Compile(opts.Search)
		if err != nil {
			return fmt.Errorf("invalid --search pattern: %w", err)
		}

		entities, err := client.ListEntities(ctx, search)
		if err != nil {
			return err
		}
		if len(entities) == 0 {
			fmt.Fprintln(r.stdout, "No entities found matching the search regex.")
			return nil
		}

		if opts.HasReplace {
			rows = plan.Substitute(entities, search, opts.Replace)
			mutating = true
		} else {
			rows = plan.Preview(entities)
		}
	}

	fmt.Fprint(r.stdout, render.Table(rows))

	if opts.OutputFile != "" {
		if err := plan.WriteFile(rows, opts.OutputFile); err != nil {
			return err
		}
		fmt.Fprintf(r.stdout, "(Table written to %s)\n", opts.OutputFile)
	}

	// Preview-only runs never touch the control channel.
	if !mutating {
		return nil
	}

	if !opts.AssumeYes {
		if !r.confirm.Confirm("\nDo you want to proceed with renaming the entities? (y/N): ") {
			fmt.Fprintln(r.stdout, "Renaming process aborted.")
			return nil
		}
	}

	updates := make([]hub.Update, 0, len(rows))
	for _, row := range rows {
		updates = append(updates, hub.Update{
			EntityID:     row.EntityID,
			NewEntityID:  row.NewEntityID,
			FriendlyName: row.FriendlyName,
		})
	}

	results, applyErr := client.ApplyPlan(ctx, updates)
	for _, res := range results {
		if res.Success {
			_, _ = successColor.Fprintln(r.stdout, res.Message)
		} else {
			_, _ = failureColor.Fprintln(r.stdout, res.Message)
		}
	}

	// Per-item failures are already reported above; applyErr is the
	// fatal connection/protocol class. Renames applied before the
	// failure stand.
	return applyErr
}
