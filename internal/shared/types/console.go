package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplayCards(title string, cards []Card)
	DisplayTrendBars(title string, values []MonthlyValue)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// Card is a single headline figure on the overview panel.
type Card struct {
	Label string
	Value string
}

// MonthlyValue representa um valor para um mês específico, usado para gráficos de tendência.
type MonthlyValue struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}
