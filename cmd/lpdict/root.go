package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/askiada/lpdict"
	"github.com/askiada/lpdict/internal/lpio"
)

const (
	exitOK = iota
	exitError
	exitMaxIterations
)

type config struct {
	MaxIterations int    `mapstructure:"max-iterations"`
	LogLevel      string `mapstructure:"log-level"`
	Output        string `mapstructure:"output"`
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd, err := newRootCmd(viper.New(), stdin)
	if err != nil {
		fmt.Fprintln(stderr, "lpdict:", err)
		return exitError
	}
	// cobra falls back to os.Args on nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "lpdict:", err)
		if errors.Is(err, lpdict.ErrMaxIterations) {
			return exitMaxIterations
		}
		return exitError
	}
	return exitOK
}

func newRootCmd(v *viper.Viper, stdin io.Reader) (*cobra.Command, error) {
	var configPath string
	cmd := &cobra.Command{
		Use:   "lpdict [file]",
		Short: "Solve maximize c*x subject to A*x <= b, x >= 0",
		Long: `lpdict solves a linear problem with the dictionary simplex method.

The first line holds the objective coefficients c1 .. cn, every following
line one constraint a1 .. an b. The problem is read from file, or from stdin
when no file is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, configPath)
			if err != nil {
				return err
			}
			in := stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "opening problem")
				}
				defer f.Close()
				in = f
			}
			return solve(cfg, in, cmd.OutOrStdout(), setupLogger(cfg.LogLevel, cmd.ErrOrStderr()))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML configuration file")
	flags.Int("max-iterations", lpdict.DefaultMaxIterations, "maximum number of pivots, 0 for no limit")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.StringP("output", "o", string(lpio.Text), "output format: text, json or yaml")
	if err := bindFlags(v, flags, "max-iterations", "log-level", "output"); err != nil {
		return nil, err
	}
	v.SetEnvPrefix("LPDICT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return cmd, nil
}

// bindFlags makes every named flag the source of the viper key of the same name.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "binding flag %q", name)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper, path string) (*config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "reading config")
		}
	}
	cfg := &config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return cfg, nil
}

func solve(cfg *config, in io.Reader, out io.Writer, logger *logrus.Logger) error {
	format, err := lpio.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	p, err := lpio.Read(in)
	if err != nil {
		return err
	}
	t, err := p.Tableau()
	if err != nil {
		return err
	}
	m, n := t.Dims()
	logger.WithFields(logrus.Fields{"constraints": m, "variables": n}).Info("problem loaded")

	res, err := lpdict.Solve(t,
		lpdict.WithMaxIterations(cfg.MaxIterations),
		lpdict.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"status":     res.Status,
		"iterations": res.Iterations,
		"rule":       res.Rule,
	}).Info("solved")
	return lpio.Write(out, format, res)
}

func setupLogger(level string, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "info":
		logger.SetLevel(logrus.InfoLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}
