package server

// Данный сервер просто объединяет специфичные HTTP сервера, отвечающие за
// обработку конкретных сущностей. Сейчас сущность одна — калькулятор.
type Server struct {
	CalculatorServer
}

func NewServer(
	calculatorServer CalculatorServer,
) Server {
	return Server{
		CalculatorServer: calculatorServer,
	}
}
