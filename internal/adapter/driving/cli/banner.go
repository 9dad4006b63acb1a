package cli

import (
	"fmt"

	"github.com/diillson/redmine-timecheck-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
  ___         _       _           _____ _           ___ _           _   
 | _ \___ __| |_ __ (_)_ _  ___  |_   _(_)_ __  ___ / __| |_  ___ __| |__
 |   / -_) _' | '  \| | ' \/ -_)   | | | | '  \/ -_) (__| ' \/ -_) _| / /
 |_|_\___\__,_|_|_|_|_|_||_\___|   |_| |_|_|_|_\___|\___|_||_\___\__|_\_\
`
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	formattedVersion := version.FormatVersion()
	if versionStr != "" && versionStr != version.Version {
		formattedVersion = versionStr
	}
	fmt.Println(blue(fmt.Sprintf("Redmine Time Check CLI (v%s)", formattedVersion)))
}
