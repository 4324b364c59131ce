package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"Sistem-HR-Marketplace/config/middleware"
	_ "Sistem-HR-Marketplace/docs"
	"Sistem-HR-Marketplace/handlers"
	"Sistem-HR-Marketplace/repository"
)

func SetupRoutes(app *fiber.App) {
	log.Println("Memulai pendaftaran rute aplikasi...")

	// Inisialisasi Repositories
	userRepo := repository.NewUserRepository()
	deptRepo := repository.NewDepartmentRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	leaveRepo := repository.NewLeaveRequestRepository()
	bookingRepo := repository.NewBookingRepository()
	scheduleRepo := repository.NewWorkScheduleRepository()

	// Inisialisasi Handlers
	authHandler := handlers.NewAuthHandler(userRepo)
	userHandler := handlers.NewUserHandler(userRepo)
	deptHandler := handlers.NewDepartmentHandler(deptRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo, leaveRepo)
	leaveHandler := handlers.NewLeaveRequestHandler(leaveRepo, attendanceRepo)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, userRepo)
	scheduleHandler := handlers.NewWorkScheduleHandler(scheduleRepo)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Sistem HR Marketplace API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Static("/uploads", "./uploads")

	// API v1 group
	api := app.Group("/api/v1")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", middleware.AuthMiddleware(), middleware.RequirePermission(middleware.OpUsersManage), authHandler.Register)
	authGroup.Post("/register-worker", authHandler.RegisterWorker)
	authGroup.Post("/register-customer", authHandler.RegisterCustomer)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middleware.AuthMiddleware(), authHandler.Logout)

	// User routes (cek kepemilikan dilakukan di handler)
	protectedUserGroup := api.Group("/users", middleware.AuthMiddleware())
	protectedUserGroup.Post("/change-password", authHandler.ChangePassword)
	protectedUserGroup.Get("/:id", userHandler.GetUserByID)
	protectedUserGroup.Put("/:id", userHandler.UpdateUser)

	// Admin routes
	adminGroup := api.Group("/admin", middleware.AuthMiddleware())
	adminGroup.Get("/users", middleware.RequirePermission(middleware.OpUsersRead), userHandler.GetAllUsers)
	adminGroup.Delete("/users/:id", middleware.RequirePermission(middleware.OpUsersManage), userHandler.DeleteUser)
	adminGroup.Get("/dashboard-stats", middleware.RequirePermission(middleware.OpDashboardRead), userHandler.GetDashboardStats)
	adminGroup.Put("/workers/:id/application-status", middleware.RequirePermission(middleware.OpWorkersApprove), userHandler.UpdateApplicationStatus)

	// Department routes
	api.Get("/departments", middleware.AuthMiddleware(), middleware.RequirePermission(middleware.OpDepartmentsRead), deptHandler.GetAllDepartments)
	api.Get("/departments/:id", middleware.AuthMiddleware(), middleware.RequirePermission(middleware.OpDepartmentsRead), deptHandler.GetDepartmentByID)
	adminGroup.Post("/departments", middleware.RequirePermission(middleware.OpDepartmentsManage), deptHandler.CreateDepartment)
	adminGroup.Put("/departments/:id", middleware.RequirePermission(middleware.OpDepartmentsManage), deptHandler.UpdateDepartment)
	adminGroup.Delete("/departments/:id", middleware.RequirePermission(middleware.OpDepartmentsManage), deptHandler.DeleteDepartment)

	// Rute Kehadiran Karyawan
	attendanceGroup := api.Group("/attendance", middleware.AuthMiddleware(), middleware.RequirePermission(middleware.OpAttendanceSelf))
	attendanceGroup.Post("/check-in", attendanceHandler.CheckIn)
	attendanceGroup.Post("/check-out", attendanceHandler.CheckOut)
	attendanceGroup.Post("/scan", attendanceHandler.ScanQRCode)
	attendanceGroup.Get("/today-progress", attendanceHandler.GetTodayProgress)
	attendanceGroup.Get("/my-history", attendanceHandler.GetMyAttendanceHistory)

	// Rute review kehadiran khusus admin/HR
	adminGroup.Post("/attendance/generate-qr", middleware.RequirePermission(middleware.OpAttendanceReview), attendanceHandler.GenerateQRCode)
	adminGroup.Get("/attendance/today", middleware.RequirePermission(middleware.OpAttendanceReview), attendanceHandler.GetTodayAttendance)
	adminGroup.Get("/attendance", middleware.RequirePermission(middleware.OpAttendanceReview), attendanceHandler.GetAllAttendances)
	adminGroup.Put("/attendance/:id/approval", middleware.RequirePermission(middleware.OpAttendanceReview), attendanceHandler.UpdateApprovalStatus)
	adminGroup.Delete("/attendance/:id", middleware.RequirePermission(middleware.OpAttendanceReview), attendanceHandler.DeleteAttendance)

	// Rute untuk Pengajuan Izin, Cuti, dan Sakit
	leaveGroup := api.Group("/leave-requests", middleware.AuthMiddleware())
	leaveGroup.Post("/", middleware.RequirePermission(middleware.OpLeaveApply), leaveHandler.CreateLeaveRequest)
	leaveGroup.Get("/my", middleware.RequirePermission(middleware.OpLeaveApply), leaveHandler.GetMyLeaveRequests)
	leaveGroup.Post("/:id/attachment", middleware.RequirePermission(middleware.OpLeaveApply), leaveHandler.UploadAttachment)
	leaveGroup.Put("/:id/cancel", middleware.RequirePermission(middleware.OpLeaveApply), leaveHandler.CancelLeaveRequest)
	adminGroup.Get("/leave-requests", middleware.RequirePermission(middleware.OpLeaveReview), leaveHandler.GetAllLeaveRequests)
	adminGroup.Put("/leave-requests/:id", middleware.RequirePermission(middleware.OpLeaveReview), leaveHandler.UpdateLeaveRequestStatus)

	// Marketplace: daftar worker & kalender ketersediaan
	marketplaceGroup := api.Group("/marketplace", middleware.AuthMiddleware(), middleware.RequirePermission(middleware.OpMarketplaceBrowse))
	marketplaceGroup.Get("/workers", userHandler.GetMarketplaceWorkers)
	marketplaceGroup.Get("/availability/:workerId/:month/:year", bookingHandler.GetWorkerAvailability)

	// Booking: pembuatan oleh customer, daftar per pihak, perubahan status.
	// Perubahan status dicek kepemilikannya di handler karena melibatkan dua role.
	bookingGroup := api.Group("/bookings", middleware.AuthMiddleware())
	bookingGroup.Post("/", middleware.RequirePermission(middleware.OpBookingsCreate), bookingHandler.CreateBooking)
	bookingGroup.Get("/my", middleware.RequirePermission(middleware.OpBookingsCustomer), bookingHandler.GetMyBookings)
	bookingGroup.Get("/worker", middleware.RequirePermission(middleware.OpBookingsWorker), bookingHandler.GetWorkerBookings)
	bookingGroup.Put("/:id/status", bookingHandler.UpdateBookingStatus)

	// Jadwal kerja & hari libur
	scheduleGroup := api.Group("/work-schedules", middleware.AuthMiddleware(), middleware.RequirePermission(middleware.OpSchedulesRead))
	scheduleGroup.Get("/", scheduleHandler.GetAllWorkSchedules)
	scheduleGroup.Get("/holidays", scheduleHandler.GetHolidays)
	scheduleGroup.Get("/:id", scheduleHandler.GetWorkScheduleById)
	adminGroup.Post("/work-schedules", middleware.RequirePermission(middleware.OpSchedulesManage), scheduleHandler.CreateWorkSchedule)
	adminGroup.Put("/work-schedules/:id", middleware.RequirePermission(middleware.OpSchedulesManage), scheduleHandler.UpdateWorkSchedule)
	adminGroup.Delete("/work-schedules/:id", middleware.RequirePermission(middleware.OpSchedulesManage), scheduleHandler.DeleteWorkSchedule)

	log.Println("Semua rute aplikasi berhasil didaftarkan.")
	log.Println("Swagger documentation tersedia di: /docs/index.html")
}
