package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/inoxlang/typedlist/internal/config"
	"github.com/inoxlang/typedlist/internal/utils"
	"github.com/inoxlang/typedlist/schema"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	SCHEMA_FLAG_NAME    = "schema"
	LOG_LEVEL_FLAG_NAME = "log-level"
	CONFIG_FLAG_NAME    = "config"
	VARIANT_FLAG_NAME   = "variant"
	PATH_FLAG_NAME      = "path"
	SORT_FLAG_NAME      = "sort"
)

// cli holds the state shared by the subcommands of a single run.
type cli struct {
	outW, errW io.Writer

	viper  *viper.Viper
	logger zerolog.Logger

	configFile string
}

func run(args []string, outW, errW io.Writer) (exitCode int) {
	defer func() {
		if e := recover(); e != nil {
			fmt.Fprintln(errW, utils.ConvertPanicValueToError(e))
			exitCode = ERROR_STATUS_CODE
		}
	}()

	c := &cli{
		outW:   outW,
		errW:   errW,
		viper:  viper.New(),
		logger: zerolog.Nop(),
	}

	root := c.newRootCommand()
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}
	return SUCCESS_STATUS_CODE
}

func (c *cli) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           config.TYPEDLIST_APP_NAME,
		Short:         "Check JSON documents against typed list variants",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
	}
	root.SetOut(c.outW)
	root.SetErr(c.errW)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, CONFIG_FLAG_NAME, "", "config file (default: $XDG_CONFIG_HOME/typedlist/config.yaml)")
	flags.String(SCHEMA_FLAG_NAME, "", "schema file declaring the variants (default: $XDG_CONFIG_HOME/typedlist/schema.yaml)")
	flags.String(LOG_LEVEL_FLAG_NAME, config.DEFAULT_LOG_LEVEL, "log level (debug, info, warn, error)")

	utils.PanicIfErr(c.viper.BindPFlag(SCHEMA_FLAG_NAME, flags.Lookup(SCHEMA_FLAG_NAME)))
	utils.PanicIfErr(c.viper.BindPFlag(LOG_LEVEL_FLAG_NAME, flags.Lookup(LOG_LEVEL_FLAG_NAME)))

	root.AddCommand(c.newCheckCommand(), c.newDescribeCommand())
	return root
}

// initConfig reads the configuration file and the TYPEDLIST_* environment variables, flags have precedence.
func (c *cli) initConfig() error {
	v := c.viper
	v.SetEnvPrefix(config.ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if c.configFile != "" {
		v.SetConfigFile(c.configFile)
	} else {
		v.SetConfigName(config.CONFIG_FILE_NAME)
		v.SetConfigType("yaml")
		for _, dir := range config.ConfigDirs() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	logger, err := newLogger(c.errW, v.GetString(LOG_LEVEL_FLAG_NAME))
	if err != nil {
		return err
	}
	c.logger = logger

	if used := v.ConfigFileUsed(); used != "" {
		c.logger.Debug().Str("file", used).Msg("config file loaded")
	}
	return nil
}

func (c *cli) loadSchema() (*schema.Schema, error) {
	path := c.viper.GetString(SCHEMA_FLAG_NAME)
	if path == "" {
		defaultPath, err := config.GetDefaultSchemaPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get the default schema: %w", err)
		}
		path = defaultPath
	}

	c.logger.Debug().Str("file", path).Msg("loading schema")

	return schema.LoadFile(path, schema.LoadConfig{Logger: c.logger})
}
