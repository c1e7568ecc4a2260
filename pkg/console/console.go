package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"

	"github.com/diillson/invoice-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// barWidth is the length of the longest bar in a trend chart.
const barWidth = 40

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
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
	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
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

// DisplayCards exibe os indicadores principais lado a lado.
func (c *Console) DisplayCards(title string, cards []types.Card) {
	panels := make([]pterm.Panel, 0, len(cards))
	for _, card := range cards {
		body := fmt.Sprintf("%s\n%s", pterm.FgGray.Sprint(card.Label), BrightCyan(card.Value))
		boxed := pterm.DefaultBox.WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(body)
		panels = append(panels, pterm.Panel{Data: boxed})
	}

	rendered, err := pterm.DefaultPanel.WithPanels(pterm.Panels{panels}).WithPadding(2).Srender()
	if err != nil {
		// Fallback para uma linha por indicador
		for _, card := range cards {
			rendered += fmt.Sprintf("%s: %s\n", card.Label, card.Value)
		}
	}

	fmt.Println("\n" + BrightMagenta(title))
	fmt.Println(rendered)
}

// DisplayTrendBars exibe gráficos de barras para análise de tendências.
func (c *Console) DisplayTrendBars(title string, values []types.MonthlyValue) {
	maxValue := 0.0
	for _, v := range values {
		if v.Value > maxValue {
			maxValue = v.Value
		}
	}

	if maxValue == 0 {
		pterm.Warning.Printfln("%s: all values are $0.00 for this period", title)
		return
	}

	tableData := pterm.TableData{
		{"Month", "Spend", "", "MoM Change"},
	}

	var prev *float64

	for _, mv := range values {
		barLength := int((mv.Value / maxValue) * barWidth)
		if barLength < 0 {
			barLength = 0
		}
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		change := ""

		if prev != nil {
			label, style := monthOverMonth(*prev, mv.Value)
			change = style.Sprint(label)
			barColor = style.Sprint(bar)
		}

		tableData = append(tableData, []string{
			mv.Month,
			fmt.Sprintf("$%.2f", mv.Value),
			barColor,
			change,
		})

		current := mv.Value
		prev = &current
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// monthOverMonth classifica a variação entre dois meses consecutivos.
// Aumento de gasto é vermelho, queda é verde.
func monthOverMonth(prev, current float64) (string, pterm.Color) {
	if prev < 0.01 {
		if current < 0.01 {
			return "0%", pterm.FgYellow
		}
		return "N/A", pterm.FgRed
	}

	changePercent := ((current - prev) / prev) * 100.0

	switch {
	case math.Abs(changePercent) < 0.01:
		return "0%", pterm.FgYellow
	case changePercent > 999:
		return ">+999%", pterm.FgRed
	case changePercent < -999:
		return ">-999%", pterm.FgGreen
	case changePercent > 0:
		return fmt.Sprintf("+%.2f%%", changePercent), pterm.FgRed
	default:
		return fmt.Sprintf("%.2f%%", changePercent), pterm.FgGreen
	}
}
