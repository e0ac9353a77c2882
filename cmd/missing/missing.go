package missing

import (
	"fmt"
	"io"

	"github.com/dreamerjackson/htstask/audit"
	"github.com/dreamerjackson/htstask/cmd/internal/setup"
	"github.com/dreamerjackson/htstask/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var MissingCmd = &cobra.Command{
	Use:   "missing",
	Short: "report task files not yet downloaded.",
	Long:  "report which task target files do not exist under the base path.\nreads config.toml in the working directory unless --config is given.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, closer, err := setup.Setup(cmd, &flags)
		if err != nil {
			return err
		}
		defer closer.Close()
		defer logger.Sync()

		return Run(cmd.OutOrStdout(), cfg, logger, list)
	},
}

var flags setup.Flags
var list bool

func init() {
	setup.AddFlags(MissingCmd, &flags)

	MissingCmd.Flags().BoolVar(
		&list, "list", false, "print every missing task")
}

func Run(w io.Writer, cfg *config.Config, logger *zap.Logger, list bool) error {
	g, err := setup.NewGenerator(cfg, logger)
	if err != nil {
		return err
	}

	r, err := audit.Missing(g.Generate(), logger.Named("audit"))
	if err != nil {
		return err
	}

	logger.Info("audit finished",
		zap.Int("total", r.Total()),
		zap.Int("present", len(r.Present)),
		zap.Int("missing", len(r.Missing)),
	)

	fmt.Fprintf(w, "%d of %d files present under %s\n", len(r.Present), r.Total(), cfg.BasePath)
	for _, c := range r.BySource {
		fmt.Fprintf(w, "%-8s present %3d  missing %3d\n", c.Source, c.Present, c.Missing)
	}

	if list {
		for _, t := range r.Missing {
			fmt.Fprintf(w, "%s -> %s\n", t.URL, t.TargetPath)
		}
	}

	return nil
}
