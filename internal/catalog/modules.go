package catalog

// Module is an entry of the fixed curriculum.
type Module struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	LessonsCount int    `json:"lessons_count"`
	Order        int    `json:"order"`
	IsLocked     bool   `json:"is_locked"`
}

var modules = []Module{
	{
		ID:           "money-basics",
		Title:        "Money Basics",
		Description:  "Understanding money, budgeting fundamentals, and financial goals",
		Icon:         "💰",
		LessonsCount: 8,
		Order:        1,
		IsLocked:     false,
	},
	{
		ID:           "budgeting-bills",
		Title:        "Budgeting & Bills",
		Description:  "Creating budgets, managing bills, and tracking expenses",
		Icon:         "📊",
		LessonsCount: 6,
		Order:        2,
		IsLocked:     false,
	},
	{
		ID:           "banking-products",
		Title:        "Banking Products",
		Description:  "Savings, current, fixed deposit accounts and banking services",
		Icon:         "🏦",
		LessonsCount: 7,
		Order:        3,
		IsLocked:     false,
	},
	{
		ID:           "credit-debt",
		Title:        "Credit & Debt",
		Description:  "Credit scores, credit cards, loans, and debt management",
		Icon:         "💳",
		LessonsCount: 8,
		Order:        4,
		IsLocked:     true,
	},
	{
		ID:           "savings-vehicles",
		Title:        "Savings Vehicles",
		Description:  "Emergency funds, saving strategies, and goal-based savings",
		Icon:         "🎯",
		LessonsCount: 5,
		Order:        5,
		IsLocked:     true,
	},
	{
		ID:           "investing-fundamentals",
		Title:        "Investing Fundamentals",
		Description:  "Mutual funds, SIPs, stocks, ETFs, and investment basics",
		Icon:         "📈",
		LessonsCount: 10,
		Order:        6,
		IsLocked:     true,
	},
	{
		ID:           "market-mechanics",
		Title:        "Market Mechanics",
		Description:  "How markets work, orders, indices, and trading basics",
		Icon:         "🎢",
		LessonsCount: 8,
		Order:        7,
		IsLocked:     true,
	},
	{
		ID:           "advanced-investing",
		Title:        "Advanced Investing",
		Description:  "Portfolio construction, diversification, and risk management",
		Icon:         "🎓",
		LessonsCount: 9,
		Order:        8,
		IsLocked:     true,
	},
	{
		ID:           "taxes-legal",
		Title:        "Taxes & Legal",
		Description:  "Tax basics, filing returns, legal saving instruments, and retirement",
		Icon:         "📋",
		LessonsCount: 7,
		Order:        9,
		IsLocked:     true,
	},
}

// Modules returns the curriculum in display order.
func Modules() []Module {
	out := make([]Module, len(modules))
	copy(out, modules)
	return out
}

// FindModule returns the module with the given id.
func FindModule(id string) (Module, bool) {
	for _, m := range modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}
