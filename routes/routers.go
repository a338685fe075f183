package routes

import (
	"net/http"

	"hotel-booking/controllers"
	_ "hotel-booking/docs"
	"hotel-booking/middleware"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services are the application services the HTTP layer is built on.
type Services struct {
	Bookings     *services.BookingFacade
	Availability *services.AvailabilityService
	Payments     *services.PaymentService
	AddOns       *services.AddOnService
	Catalog      *services.CatalogService
	Ratings      *services.RatingService
	Rooms        *services.RoomService
	Users        *services.UserService
	Tokens       *services.TokenParser
	Policy       *services.Policy
}

func SetupRoutes(router *gin.Engine, svc Services) {
	bookingController := controllers.NewBookingController(svc.Bookings, svc.Availability)
	adminController := controllers.NewAdminController(svc.Bookings, svc.Users)
	paymentController := controllers.NewPaymentController(svc.Payments)
	bookingServiceController := controllers.NewBookingServiceController(svc.AddOns, svc.Catalog)
	ratingController := controllers.NewRatingController(svc.Ratings)
	roomController := controllers.NewRoomController(svc.Rooms)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Public
	v1.GET("/rooms", roomController.List)
	v1.GET("/rooms/availability", bookingController.Availability)
	v1.GET("/rooms/:id", roomController.Get)
	v1.GET("/rooms/:id/ratings", ratingController.ListByRoom)
	v1.GET("/room-types", roomController.ListRoomTypes)
	v1.GET("/services", bookingServiceController.ListServices)
	v1.GET("/service-types", bookingServiceController.ListServiceTypes)
	v1.GET("/cancellation-policy", bookingController.CancellationPolicy)
	v1.GET("/bookings/cancellation-policy", bookingController.CancellationPolicy)
	v1.GET("/payments/methods", paymentController.Methods)

	user := v1.Group("", middleware.AuthMiddleware(svc.Tokens))
	user.GET("/bookings", bookingController.List)
	user.POST("/bookings", bookingController.Create)
	user.GET("/bookings/:id", bookingController.Get)
	user.PUT("/bookings/:id", bookingController.Update)
	user.PUT("/bookings/:id/cancel", bookingController.Cancel)
	user.GET("/bookings/:id/history", bookingController.History)
	user.GET("/bookings/:id/services", bookingServiceController.ListByBooking)

	user.POST("/payments", paymentController.Process)

	user.GET("/booking-services", bookingServiceController.List)
	user.POST("/booking-services", bookingServiceController.Create)
	user.GET("/booking-services/:id", bookingServiceController.Get)
	user.PUT("/booking-services/:id", bookingServiceController.Update)
	user.DELETE("/booking-services/:id", bookingServiceController.Delete)

	user.POST("/ratings", ratingController.Create)
	user.PUT("/ratings/:id", ratingController.Update)
	user.DELETE("/ratings/:id", ratingController.Delete)

	admin := user.Group("", middleware.RequireAction(svc.Policy, services.ActionRoomManage))
	admin.POST("/rooms", roomController.Create)
	admin.PUT("/rooms/:id", roomController.Update)
	admin.DELETE("/rooms/:id", roomController.Delete)
	admin.POST("/rooms/:id/thumbnail", roomController.UploadThumbnail)

	admin.POST("/room-types", roomController.CreateRoomType)
	admin.PUT("/room-types/:id", roomController.UpdateRoomType)
	admin.DELETE("/room-types/:id", roomController.DeleteRoomType)

	admin.POST("/service-types", bookingServiceController.CreateServiceType)
	admin.POST("/services", bookingServiceController.CreateService)

	admin.GET("/admin/bookings", bookingController.List)
	admin.PUT("/admin/bookings/:id/status", adminController.UpdateBookingStatus)
	admin.GET("/admin/reports/occupancy", adminController.Occupancy)
	admin.GET("/admin/payments", paymentController.List)
	admin.PUT("/admin/payments/:id/status", paymentController.UpdateStatus)
	admin.GET("/admin/users", adminController.ListUsers)

	superAdmin := user.Group("", middleware.RequireAction(svc.Policy, services.ActionUserManage))
	superAdmin.POST("/admin/users", adminController.CreateUser)
	superAdmin.PUT("/admin/users/:id/role", adminController.UpdateUserRole)
	superAdmin.DELETE("/admin/users/:id", adminController.DeleteUser)
}
