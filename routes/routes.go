package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"financas-api/handlers"
	"financas-api/services"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/auth/signup", authHandler.Signup)
	rg.POST("/auth/login", authHandler.Login)
	rg.POST("/auth/refresh", authHandler.Refresh)
}

// SetupFinanceRoutes sets up the protected record CRUD, sync/clone and
// summary routes.
func SetupFinanceRoutes(rg *gin.RouterGroup, db *sql.DB) {
	expenseService := services.NewExpenseService(db)

	incomeHandler := &handlers.IncomeHandler{DB: db}
	rg.GET("/incomes", incomeHandler.GetIncomes)
	rg.POST("/incomes", incomeHandler.CreateIncome)
	rg.PUT("/incomes/:id", incomeHandler.UpdateIncome)
	rg.DELETE("/incomes/:id", incomeHandler.DeleteIncome)

	fixedHandler := &handlers.FixedExpenseHandler{DB: db, Expenses: expenseService}
	rg.GET("/fixed-expenses", fixedHandler.GetFixedExpenses)
	rg.POST("/fixed-expenses", fixedHandler.CreateFixedExpense)
	rg.POST("/fixed-expenses/clone", fixedHandler.CloneFixedExpenses)
	rg.PUT("/fixed-expenses/:id", fixedHandler.UpdateFixedExpense)
	rg.DELETE("/fixed-expenses/:id", fixedHandler.DeleteFixedExpense)

	variableHandler := &handlers.VariableExpenseHandler{DB: db, Expenses: expenseService}
	rg.GET("/variable-expenses", variableHandler.GetVariableExpenses)
	rg.POST("/variable-expenses", variableHandler.CreateVariableExpense)
	rg.PUT("/variable-expenses/:id", variableHandler.UpdateVariableExpense)
	rg.DELETE("/variable-expenses/:id", variableHandler.DeleteVariableExpense)
	rg.POST("/variable-expenses/:id/sync", variableHandler.SyncVariableExpense)

	savingsHandler := &handlers.SavingsGoalHandler{DB: db}
	rg.GET("/savings-goals", savingsHandler.GetSavingsGoals)
	rg.POST("/savings-goals", savingsHandler.CreateSavingsGoal)
	rg.PUT("/savings-goals/:id", savingsHandler.UpdateSavingsGoal)

	settingsHandler := &handlers.SettingsHandler{DB: db}
	rg.GET("/settings/:key", settingsHandler.GetSetting)
	rg.POST("/settings/:key", settingsHandler.UpsertSetting)

	summaryHandler := &handlers.SummaryHandler{DB: db}
	rg.GET("/summary", summaryHandler.GetSummary)

	financingHandler := &handlers.FinancingHandler{}
	rg.POST("/financing/installment", financingHandler.ComputeInstallment)
}
