package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/redmine-timecheck-go/pkg/version"

	"github.com/diillson/redmine-timecheck-go/internal/adapter/driven/redmine"
	"github.com/diillson/redmine-timecheck-go/internal/application/usecase"
	"github.com/diillson/redmine-timecheck-go/internal/domain/repository"
	"github.com/diillson/redmine-timecheck-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// UseCaseFactory builds the time check use case once the configuration is known.
type UseCaseFactory func(config *types.Config) *usecase.TimeCheckUseCase

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd        *cobra.Command
	configRepo     repository.ConfigRepository
	console        types.ConsoleInterface
	useCaseFactory UseCaseFactory
	version        string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository, console types.ConsoleInterface) *CLIApp {
	app := &CLIApp{
		version:    versionStr,
		configRepo: configRepo,
		console:    console,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:   "redmine-timecheck [api-key]",
		Short: "Check Redmine time entries and report who has not logged hours",
		Long: "Looks up the last check ticket, fetches the project members and the time entries of the\n" +
			"next unchecked date, and creates a Redmine ticket listing who logged hours and who did not.\n" +
			"The optional api-key argument overrides the configured Redmine API key.",
		Version:       formattedVersion,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Redmine Time Check version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("env-file", "e", "", "Path to a .env file loaded before reading the environment")
	rootCmd.PersistentFlags().StringP("date", "D", "", "Check this date (YYYY-MM-DD) instead of the day after the last check ticket")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Print the ticket instead of creating it")
	rootCmd.PersistentFlags().Bool("insecure", false, "Skip TLS certificate verification when talking to Redmine")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetArgs substitui os argumentos da linha de comando; usado nos testes.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// SetUseCaseFactory sets the factory used to build the time check use case.
func (app *CLIApp) SetUseCaseFactory(factory UseCaseFactory) {
	app.useCaseFactory = factory
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(positional []string) (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()
	configFile, _ := flags.GetString("config-file")
	envFile, _ := flags.GetString("env-file")
	dateStr, _ := flags.GetString("date")
	dryRun, _ := flags.GetBool("dry-run")
	insecure, _ := flags.GetBool("insecure")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")

	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	var date *time.Time
	if dateStr != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, dateStr, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD: %w", dateStr, err)
		}
		date = &parsed
	}

	var apiKey string
	if len(positional) > 0 {
		apiKey = positional[0]
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		EnvFile:    envFile,
		APIKey:     apiKey,
		Date:       date,
		DryRun:     dryRun,
		Insecure:   insecure,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
	}, nil
}

// loadConfig monta a configuração: padrões, arquivo, ambiente e, por fim, a CLI.
func (app *CLIApp) loadConfig(args *types.CLIArgs) (*types.Config, error) {
	config := types.DefaultConfig()

	if args.ConfigFile != "" {
		fileConfig, err := app.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		config.Merge(fileConfig)
	}

	if args.EnvFile != "" {
		if err := app.configRepo.LoadEnvFile(args.EnvFile); err != nil {
			return nil, err
		}
	}

	if err := app.configRepo.ApplyEnvironment(config); err != nil {
		return nil, err
	}

	if args.APIKey != "" {
		config.APIKey = args.APIKey
	}
	if args.Insecure {
		config.InsecureSkipVerify = true
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
//
// Falhas de rede não alteram o código de saída: a execução é best-effort e a
// próxima execução agendada funciona como nova tentativa.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	cliArgs, err := app.parseArgs(args)
	if err != nil {
		return err
	}

	config, err := app.loadConfig(cliArgs)
	if err != nil {
		return err
	}

	if app.useCaseFactory == nil {
		return errors.New("time check use case is not configured")
	}
	timeCheck := app.useCaseFactory(config)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, err = timeCheck.RunTimeCheck(ctx, cliArgs)
	switch {
	case errors.Is(err, types.ErrFetchFailed):
		app.console.LogError("No data available for the target date, nothing was created")
	case errors.Is(err, types.ErrCreateFailed):
		app.console.LogError("The check ticket could not be created")
	case err != nil:
		app.console.LogError("Time check failed: %s", err)
	}
	if err != nil {
		app.logRedmineHint(err, config)
	}
	return nil
}

// logRedmineHint sugere a configuração provavelmente errada para respostas 401/403/404.
func (app *CLIApp) logRedmineHint(err error, config *types.Config) {
	switch {
	case redmine.IsUnauthorized(err):
		app.console.LogWarning("Redmine rejected the request, check the API key")
	case redmine.IsNotFound(err):
		app.console.LogWarning("Redmine returned 404, check project_id '%s' and redmine_url '%s'",
			config.ProjectID, config.RedmineURL)
	}
}
