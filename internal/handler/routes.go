package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, incomeHandler *IncomeHandler, fixedExpenseHandler *FixedExpenseHandler, transactionHandler *TransactionHandler, goalHandler *GoalHandler, payrollHandler *PayrollHandler, periodHandler *PeriodHandler, dashboardHandler *DashboardHandler, snapshotHandler *SnapshotHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Income routes
	incomes := api.Group("/incomes")
	incomes.POST("", incomeHandler.CreateIncome)
	incomes.GET("", incomeHandler.GetIncomes)
	incomes.DELETE("/:id", incomeHandler.DeleteIncome)

	// Fixed expense routes
	fixedExpenses := api.Group("/fixed-expenses")
	fixedExpenses.POST("", fixedExpenseHandler.CreateFixedExpense)
	fixedExpenses.GET("", fixedExpenseHandler.GetFixedExpenses)
	fixedExpenses.DELETE("/:id", fixedExpenseHandler.DeleteFixedExpense)

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Goal routes
	goals := api.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	// Payroll routes
	payroll := api.Group("/payroll")
	payroll.GET("/net-pay", payrollHandler.GetNetPay)

	// Period routes
	period := api.Group("/period")
	period.GET("/current", periodHandler.GetCurrent)
	period.GET("", periodHandler.GetPeriod)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)

	// Snapshot routes
	snapshot := api.Group("/snapshot")
	snapshot.GET("/export", snapshotHandler.Export)
	snapshot.POST("/import", snapshotHandler.Import)
}
