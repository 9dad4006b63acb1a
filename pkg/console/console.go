package console

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/diillson/redmine-timecheck-go/internal/shared/types"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct {
	interactive bool
}

// NewConsole cria um novo Console.
// Quando a saída padrão não é um terminal (cron, CI), spinners e cores são desativados.
func NewConsole() *Console {
	fd := os.Stdout.Fd()
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if !interactive {
		pterm.DisableColor()
	}
	return &Console{interactive: interactive}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	if !c.interactive {
		pterm.Info.Println(message)
		return &statusHandle{}
	}
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner == nil {
		pterm.Info.Println(message)
		return
	}
	h.spinner.UpdateText(message)
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayHoursBars exibe um gráfico de barras com as horas por projeto.
func (c *Console) DisplayHoursBars(projectHours []types.ProjectHours) {
	// Encontra o valor máximo para escala
	maxHours := 0.0
	totalHours := 0.0
	for _, ph := range projectHours {
		if ph.Hours > maxHours {
			maxHours = ph.Hours
		}
		totalHours += ph.Hours
	}

	if maxHours == 0 {
		pterm.Warning.Println("No hours were logged for this date")
		return
	}

	tableData := pterm.TableData{
		{"Project", "Hours", "", "Share"},
	}

	for _, ph := range projectHours {
		barLength := int(math.Round((ph.Hours / maxHours) * 40))
		bar := strings.Repeat("█", barLength)

		share := (ph.Hours / totalHours) * 100.0
		barColor := pterm.FgBlue.Sprint(bar)
		if share >= 50 {
			barColor = pterm.FgCyan.Sprint(bar)
		}

		tableData = append(tableData, []string{
			ph.Project,
			fmt.Sprintf("%.2f", ph.Hours),
			barColor,
			fmt.Sprintf("%.1f%%", share),
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Hours by Project").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}
