package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gosolid/config"
	"gosolid/logging"
)

func runCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <principle>... | all",
		Short: "Run one or more principle demos",
		Example: strings.Join([]string{
			"  solid run srp",
			"  solid run isp --fax --fax-transport redis",
			"  solid run dip --store sqlite",
			"  solid run all",
		}, "\n"),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			selected, err := selectPrinciples(args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			env := newEnvironment(opts.cfg)
			defer func() {
				if cerr := env.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()

			w := cmd.OutOrStdout()
			for i, p := range selected {
				if i > 0 {
					fmt.Fprintln(w)
				}
				env.logger.Debug(ctx, "running demo", logging.String("principle", p.name))
				if err := p.run(ctx, w, env); err != nil {
					return fmt.Errorf("%s: %w", p.name, err)
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.fax, "fax", false, "send a fax at the end of the isp demo")
	flags.StringVar(&opts.faxTransport, "fax-transport", config.TransportSync, "fax line: sync, redis or nats")
	flags.StringVar(&opts.store, "store", config.StoreMemory, "relationship store for the dip demo: memory or sqlite")
	return cmd
}
