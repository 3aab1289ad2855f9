package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"gosolid/config"
	"gosolid/errors"
	"gosolid/logging"
)

// options 根命令及子命令共享的标志与运行期配置
type options struct {
	configPath   string
	logLevel     string
	fax          bool
	faxTransport string
	store        string

	cfg config.Config
}

// ExitCode 输入或配置错误返回 2，其余失败返回 1
func ExitCode(err error) int {
	switch errors.GetErrorCode(err) {
	case "":
		return 0
	case errors.ErrCodeValidation, errors.ErrCodeConfig, errors.ErrCodeNotFound, errors.ErrCodeInvalidInput:
		return 2
	default:
		return 1
	}
}

func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}

// NewRootCommand 构建 solid 命令树，out 接收演示输出，errOut 接收日志
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "solid",
		Short:        "Run the SOLID principle demos",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd, errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(listCmd(), runCmd(opts))
	return root
}

// load 读取配置文件，再以显式设置的标志覆盖
func (o *options) load(cmd *cobra.Command, errOut io.Writer) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if changed("fax") {
		cfg.Fax.Enabled = o.fax
	}
	if changed("fax-transport") {
		cfg.Fax.Transport = o.faxTransport
	}
	if changed("store") {
		cfg.Relationships.Store = o.store
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, ok := logging.ParseLevel(cfg.LogLevel)
	if !ok {
		return errors.Newf(errors.ErrCodeConfig, "unknown log level %q", cfg.LogLevel)
	}
	logging.SetLogger(logging.NewStdLoggerTo(errOut, "", level))

	o.cfg = cfg
	return nil
}
