package economy

// Initial indicator and policy values of a fresh simulation.
const (
	InitialGDP          = 100
	InitialInflation    = 50
	InitialUnemployment = 50
	InitialRate         = 5.0
	InitialMoneySupply  = 100
)

// State is the current value of every indicator plus the last applied policy.
type State struct {
	Day          int
	GDP          float64
	Inflation    float64
	Unemployment float64
	InterestRate float64
	MoneySupply  float64
}

// InitialState returns the day-zero state.
func InitialState() State {
	return State{
		GDP:          InitialGDP,
		Inflation:    InitialInflation,
		Unemployment: InitialUnemployment,
		InterestRate: InitialRate,
		MoneySupply:  InitialMoneySupply,
	}
}

// Record returns the history snapshot for s.
func (s State) Record() Record {
	return Record{
		Day:          s.Day,
		GDP:          s.GDP,
		Inflation:    s.Inflation,
		Unemployment: s.Unemployment,
	}
}

// Record is one day of indicator history.
type Record struct {
	Day          int
	GDP          float64
	Inflation    float64
	Unemployment float64
}

// Policy is a parsed pair of policy levers.
type Policy struct {
	Rate  float64
	Money float64
}
