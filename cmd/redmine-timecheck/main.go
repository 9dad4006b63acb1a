package main

import (
	"os"

	"github.com/diillson/redmine-timecheck-go/internal/adapter/driven/config"
	"github.com/diillson/redmine-timecheck-go/internal/adapter/driven/export"
	"github.com/diillson/redmine-timecheck-go/internal/adapter/driven/redmine"
	"github.com/diillson/redmine-timecheck-go/internal/adapter/driving/cli"
	"github.com/diillson/redmine-timecheck-go/internal/application/usecase"
	"github.com/diillson/redmine-timecheck-go/internal/shared/types"
	"github.com/diillson/redmine-timecheck-go/pkg/console"
	"github.com/diillson/redmine-timecheck-go/pkg/version"
)

func main() {
	consoleImpl := console.NewConsole()
	configRepo := config.NewConfigRepository()

	app := cli.NewCLIApp(version.Version, configRepo, consoleImpl)

	// O cliente Redmine e o export dependem da configuração final (URL, chave, TLS, fonte),
	// por isso o caso de uso é montado só depois do parse dos argumentos.
	app.SetUseCaseFactory(func(cfg *types.Config) *usecase.TimeCheckUseCase {
		redmineRepo := redmine.NewRedmineRepository(cfg)
		return usecase.NewTimeCheckUseCase(
			cfg,
			redmineRepo,
			redmineRepo,
			export.NewExportRepository(cfg.PDFFontPath),
			consoleImpl,
		)
	})

	if err := app.Execute(); err != nil {
		consoleImpl.LogError("%s", err)
		os.Exit(1)
	}
}
