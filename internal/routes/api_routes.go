// upkraft-crm/internal/routes/api_routes.go
package routes

import (
	"upkraft-crm/internal/handlers"
	"upkraft-crm/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все маршруты API, требующие аутентификации.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	apiGroup := api.Group("/api")
	{
		// --- ПЛАТЕЖИ ---
		transactions := apiGroup.Group("/transactions")
		transactions.Use(middleware.PermissionMiddleware("transactions_view"))
		{
			transactions.GET("", handlers.ListTransactionsHandler)
			transactions.POST("", middleware.PermissionMiddleware("transactions_create"), handlers.CreateTransactionHandler)
			transactions.GET("/:id", handlers.GetTransactionHandler)
			transactions.PUT("/:id", middleware.PermissionMiddleware("transactions_edit"), handlers.UpdateTransactionHandler)
			transactions.DELETE("/:id", middleware.PermissionMiddleware("transactions_delete"), handlers.DeleteTransactionHandler)
			transactions.GET("/:id/receipt", handlers.GetReceiptHandler)
		}

		// --- ПАНЕЛЬ ВЫРУЧКИ ---
		revenue := apiGroup.Group("/revenue")
		revenue.Use(middleware.PermissionMiddleware("revenue_view"))
		{
			revenue.GET("/report", handlers.GetRevenueReportHandler)
			revenue.GET("/export", handlers.ExportRevenueReportHandler)
		}

		// Поток платежных событий для живого обновления панели.
		apiGroup.GET("/dashboard/ws", handlers.DashboardWSEndpoint)

		// --- РЕПЕТИТОРЫ ---
		tutors := apiGroup.Group("/tutors")
		tutors.Use(middleware.PermissionMiddleware("tutors_view"))
		{
			tutors.GET("", handlers.ListTutorsHandler)
			tutors.POST("", middleware.PermissionMiddleware("tutors_edit"), handlers.CreateTutorHandler)
			tutors.GET("/:id", handlers.GetTutorHandler)
			tutors.PUT("/:id", middleware.PermissionMiddleware("tutors_edit"), handlers.UpdateTutorHandler)
			tutors.DELETE("/:id", middleware.PermissionMiddleware("tutors_edit"), handlers.DeleteTutorHandler)
		}

		// --- КУРСЫ И ЗАНЯТИЯ ---
		courses := apiGroup.Group("/courses")
		courses.Use(middleware.PermissionMiddleware("courses_view"))
		{
			courses.GET("", handlers.ListCoursesHandler)
			courses.POST("", middleware.PermissionMiddleware("courses_edit"), handlers.CreateCourseHandler)
			courses.GET("/:id", handlers.GetCourseHandler)
			courses.PUT("/:id", middleware.PermissionMiddleware("courses_edit"), handlers.UpdateCourseHandler)
			courses.DELETE("/:id", middleware.PermissionMiddleware("courses_edit"), handlers.DeleteCourseHandler)

			courses.POST("/:id/classes", middleware.PermissionMiddleware("courses_edit"), handlers.CreateClassHandler)
			courses.POST("/:id/files", middleware.PermissionMiddleware("courses_edit"), handlers.UploadCourseFileHandler)
			courses.GET("/:id/files", handlers.ListCourseFilesHandler)
		}

		classes := apiGroup.Group("/classes")
		classes.Use(middleware.PermissionMiddleware("courses_view"))
		{
			classes.DELETE("/:classId", middleware.PermissionMiddleware("courses_edit"), handlers.DeleteClassHandler)
			classes.GET("/:classId/attendance", handlers.GetAttendanceHandler)
			classes.POST("/:classId/attendance", middleware.PermissionMiddleware("courses_edit"), handlers.MarkAttendanceHandler)
		}

		// --- НАСТРОЙКИ АКАДЕМИИ ---
		settings := apiGroup.Group("/settings")
		settings.Use(middleware.PermissionMiddleware("settings_view"))
		{
			settings.GET("/payment-methods", handlers.GetPaymentMethodsHandler)
			settings.PUT("/payment-methods", middleware.PermissionMiddleware("settings_edit"), handlers.UpdatePaymentMethodsHandler)
			settings.PUT("/commission-formula", middleware.PermissionMiddleware("settings_edit"), handlers.UpdateCommissionFormulaHandler)
		}
	}
}
