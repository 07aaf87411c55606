/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vscentrum/accountpagectl/internal/config"
	"github.com/vscentrum/accountpagectl/internal/dispatch"
	internalhttp "github.com/vscentrum/accountpagectl/internal/http"
	"github.com/vscentrum/accountpagectl/internal/logging"
	"github.com/vscentrum/accountpagectl/internal/query"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	version      string
	date         string
	cfgFile      string
	apiURL       string
	debug        bool
	token        string
	outputFormat string
	noColor      bool
	timeout      time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "accountpagectl",
	Short:         "VSC account page command line interface (CLI)",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(dispatch.ExitCode(err))
	}
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("accountpagectl:\nversion %s\ndate: %s\n", version, date))

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "OAuth bearer token")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or dotenv; default is ./.env when present)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "base URL of the account page API (overrides API_URL)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", string(dispatch.FormatJSON), "output format: json or table")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "never colorize output")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", config.DefaultTimeout, "request timeout, 0 for none")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", query.ErrInvalidArgument, err)
	})
}

// runQuery checks the filters first so a usage error never prompts for a
// token or touches the network.
func runQuery(cmd *cobra.Command, c dispatch.Command) error {
	if _, err := dispatch.Resolve(c); err != nil {
		return err
	}

	format, err := dispatch.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	log, err := logging.BuildProduction(debug)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer log.Sync()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	tokenFile, err := internalhttp.TokenFile()
	if err != nil {
		log.Debug("no token file location", zap.Error(err))
	}

	cfg.Token, err = internalhttp.TokenSource{
		Flag:   token,
		Config: cfg.Token,
		File:   tokenFile,
		Prompt: promptToken,
	}.Resolve()
	if err != nil {
		return err
	}

	if expiry, ok := internalhttp.TokenExpiry(cfg.Token); ok && expiry.Before(time.Now()) {
		log.Warn("bearer token has expired", zap.Time("expiry", expiry))
	}

	d, err := dispatch.New(*cfg,
		dispatch.WithLogger(log),
		dispatch.WithFormat(format),
		dispatch.WithColor(!noColor && !color.NoColor),
		dispatch.WithVersion(version),
	)
	if err != nil {
		return err
	}

	out, err := d.Run(cmd.Context(), c)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	parser := config.NewConfigParser()
	v := parser.Viper()

	if err := v.BindPFlag("api_url", cmd.Flags().Lookup("api-url")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("timeout", cmd.Flags().Lookup("timeout")); err != nil {
		return nil, err
	}

	cfg, err := parser.Parse(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func promptToken() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil
	}

	var answer string
	err := survey.AskOne(&survey.Password{
		Message: "Bearer token:",
	}, &answer, survey.WithValidator(survey.Required), survey.WithStdio(os.Stdin, os.Stderr, os.Stderr))

	return answer, err
}
