package cli

import (
	"fmt"

	"github.com/diillson/invoice-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
  ___                 _            ____            _     _                         _
 |_ _|_ ____   _____ (_) ___ ___  |  _ \  __ _ ___| |__ | |__   ___   __ _ _ __ __| |
  | || '_ \ \ / / _ \| |/ __/ _ \ | | | |/ _` + "`" + ` / __| '_ \| '_ \ / _ \ / _` + "`" + ` | '__/ _` + "`" + ` |
  | || | | \ V / (_) | | (_|  __/ | |_| | (_| \__ \ | | | |_) | (_) | (_| | | | (_| |
 |___|_| |_|\_/ \___/|_|\___\___| |____/ \__,_|___/_| |_|_.__/ \___/ \__,_|_|  \__,_|
`
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Invoice Dashboard CLI (v%s)", formattedVersion)))
}
