package generate

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dreamerjackson/htstask/cmd/internal/setup"
	"github.com/dreamerjackson/htstask/config"
	"github.com/dreamerjackson/htstask/task"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate download tasks.",
	Long:  "generate download tasks for every chapter and source, optionally creating the target directories.\nreads config.toml in the working directory unless --config is given.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, closer, err := setup.Setup(cmd, &flags)
		if err != nil {
			return err
		}
		defer closer.Close()
		defer logger.Sync()

		return Run(cmd.OutOrStdout(), cfg, logger, output)
	},
}

// Output 控制任务列表的输出方式
type Output struct {
	Format  string // text 或 json
	Preview int
	Prepare bool
}

var flags setup.Flags
var output Output

func init() {
	setup.AddFlags(GenerateCmd, &flags)

	GenerateCmd.Flags().StringVar(
		&output.Format, "output", "text", "output format, text or json")

	GenerateCmd.Flags().IntVar(
		&output.Preview, "preview", 6, "number of tasks shown in text output")

	GenerateCmd.Flags().BoolVar(
		&output.Prepare, "prepare", false, "create target directories")
}

func Run(w io.Writer, cfg *config.Config, logger *zap.Logger, o Output) error {
	if o.Format != "text" && o.Format != "json" {
		return fmt.Errorf("unknown output format %q", o.Format)
	}

	g, err := setup.NewGenerator(cfg, logger)
	if err != nil {
		return err
	}

	tasks := g.Generate()
	logger.Info("generated tasks",
		zap.Int("count", len(tasks)),
		zap.Int("first", cfg.First),
		zap.Int("last", cfg.Last),
	)

	if o.Prepare {
		n, err := task.Prepare(tasks)
		if err != nil {
			logger.Error("prepare destinations failed", zap.Error(err))
			return err
		}
		logger.Info("prepared destinations", zap.Int("dirs", n), zap.String("base", cfg.BasePath))
	}

	if o.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(tasks)
	}

	fmt.Fprintf(w, "Generated %d download tasks for chapters %d-%d\n", len(tasks), cfg.First, cfg.Last)
	fmt.Fprintln(w, "Sample tasks:")
	for _, line := range task.Preview(tasks, o.Preview) {
		fmt.Fprintln(w, line)
	}

	return nil
}
