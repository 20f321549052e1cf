package server

import (
	"context"
	"net/http"

	"padelhub/internal/auth"
	"padelhub/internal/config"
	"padelhub/internal/equipment"
	"padelhub/internal/facility"
	"padelhub/internal/reservation"
	"padelhub/internal/terrain"
	"padelhub/internal/token"
	"padelhub/internal/tokenpack"
	"padelhub/internal/transaction"
	"padelhub/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	http   *http.Server
}

func New(db *sqlx.DB, cfg *config.Config) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	userRepo := user.NewRepository(db)
	facilityRepo := facility.NewRepository(db)
	terrainRepo := terrain.NewRepository(db)
	reservationRepo := reservation.NewRepository(db)
	equipmentRepo := equipment.NewRepository(db)
	transactionRepo := transaction.NewRepository(db)
	tokenPackRepo := tokenpack.NewRepository(db)
	tokenRepo := token.NewRepository(db)

	userHandler := user.NewHandler(user.NewService(userRepo, cfg.JWTSecret))
	facilityHandler := facility.NewHandler(facility.NewService(facilityRepo))
	terrainHandler := terrain.NewHandler(terrain.NewService(terrainRepo, facilityRepo))
	reservationHandler := reservation.NewHandler(reservation.NewService(reservationRepo, terrainRepo))
	equipmentHandler := equipment.NewHandler(equipment.NewService(equipmentRepo, facilityRepo))
	transactionHandler := transaction.NewHandler(transaction.NewService(transactionRepo, equipmentRepo, facilityRepo))
	tokenPackHandler := tokenpack.NewHandler(tokenpack.NewService(tokenPackRepo))
	tokenHandler := token.NewHandler(token.NewService(tokenRepo, tokenPackRepo))

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	adminOnly := auth.RequireRole(auth.RoleAdmin, auth.RoleSuperAdmin)
	superAdminOnly := auth.RequireRole(auth.RoleSuperAdmin)

	api := router.Group("/api")
	api.Use(authMiddleware)

	users := api.Group("/users")
	{
		users.GET("/profile", userHandler.GetProfile)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.GET("", adminOnly, userHandler.ListUsers)
		users.GET("/role/:role", adminOnly, userHandler.ListUsersByRole)
		users.DELETE("/:id", superAdminOnly, userHandler.DeleteUser)
	}

	facilities := api.Group("/facilities")
	{
		facilities.GET("", facilityHandler.ListFacilities)
		facilities.GET("/:id", facilityHandler.GetFacility)
		facilities.GET("/city/:city", facilityHandler.ListFacilitiesByCity)
		facilities.GET("/my-facilities", adminOnly, facilityHandler.ListMyFacilities)
		facilities.POST("", adminOnly, facilityHandler.CreateFacility)
		facilities.PUT("/:id", adminOnly, facilityHandler.UpdateFacility)
		facilities.DELETE("/:id", superAdminOnly, facilityHandler.DeleteFacility)
	}

	terrains := api.Group("/terrains")
	{
		terrains.GET("", terrainHandler.ListTerrains)
		terrains.GET("/all", adminOnly, terrainHandler.ListAllTerrains)
		terrains.GET("/:id", terrainHandler.GetTerrain)
		terrains.GET("/facility/:facilityId", terrainHandler.ListTerrainsByFacility)
		terrains.GET("/facility/:facilityId/all", adminOnly, terrainHandler.ListAllTerrainsByFacility)
		terrains.POST("/facility/:facilityId", adminOnly, terrainHandler.CreateTerrain)
		terrains.PUT("/:id", adminOnly, terrainHandler.UpdateTerrain)
		terrains.PUT("/:id/status", adminOnly, terrainHandler.UpdateTerrainStatus)
		terrains.DELETE("/:id", adminOnly, terrainHandler.DeleteTerrain)
	}

	reservations := api.Group("/reservations")
	{
		reservations.GET("", adminOnly, reservationHandler.ListReservations)
		reservations.GET("/my-reservations", reservationHandler.ListMyReservations)
		reservations.GET("/my-facility-reservations", adminOnly, reservationHandler.ListMyFacilityReservations)
		reservations.GET("/check-availability", reservationHandler.CheckAvailability)
		reservations.GET("/:id", reservationHandler.GetReservation)
		reservations.GET("/terrain/:terrainId", reservationHandler.ListReservationsByTerrain)
		reservations.GET("/facility/:facilityId", adminOnly, reservationHandler.ListReservationsByFacility)
		reservations.POST("/terrain/:terrainId", reservationHandler.CreateReservation)
		reservations.PUT("/:id", adminOnly, reservationHandler.UpdateReservation)
		reservations.PUT("/:id/status", reservationHandler.UpdateReservationStatus)
		reservations.DELETE("/:id", adminOnly, reservationHandler.DeleteReservation)
	}

	equipmentGroup := api.Group("/equipment")
	{
		equipmentGroup.GET("", equipmentHandler.ListEquipment)
		equipmentGroup.GET("/:id", equipmentHandler.GetEquipment)
		equipmentGroup.GET("/facility/:facilityId", equipmentHandler.ListEquipmentByFacility)
		equipmentGroup.GET("/facility/:facilityId/purchase", equipmentHandler.ListPurchasableEquipment)
		equipmentGroup.GET("/facility/:facilityId/rental", equipmentHandler.ListRentableEquipment)
		equipmentGroup.GET("/facility/:facilityId/type/:type", equipmentHandler.ListEquipmentByType)
		equipmentGroup.POST("/facility/:facilityId", adminOnly, equipmentHandler.CreateEquipment)
		equipmentGroup.PUT("/:id", adminOnly, equipmentHandler.UpdateEquipment)
		equipmentGroup.PUT("/:id/stock", adminOnly, equipmentHandler.UpdateEquipmentStock)
		equipmentGroup.DELETE("/:id", adminOnly, equipmentHandler.DeleteEquipment)
	}

	transactions := api.Group("/equipment-transactions")
	{
		transactions.GET("", adminOnly, transactionHandler.ListTransactions)
		transactions.GET("/my-transactions", transactionHandler.ListMyTransactions)
		transactions.GET("/my-rentals", transactionHandler.ListMyActiveRentals)
		transactions.GET("/date-range", adminOnly, transactionHandler.ListTransactionsByDateRange)
		transactions.GET("/:id", transactionHandler.GetTransaction)
		transactions.GET("/equipment/:equipmentId", adminOnly, transactionHandler.ListTransactionsByEquipment)
		transactions.GET("/facility/:facilityId", adminOnly, transactionHandler.ListTransactionsByFacility)
		transactions.POST("/purchase/:equipmentId", transactionHandler.PurchaseEquipment)
		transactions.POST("/rent/:equipmentId", transactionHandler.RentEquipment)
		transactions.PUT("/:id/return", transactionHandler.ReturnEquipment)
		transactions.PUT("/:id/cancel", adminOnly, transactionHandler.CancelTransaction)
	}

	tokenPacks := api.Group("/token-packs")
	{
		tokenPacks.GET("", tokenPackHandler.ListTokenPacks)
		tokenPacks.GET("/all", superAdminOnly, tokenPackHandler.ListAllTokenPacks)
		tokenPacks.GET("/:id", tokenPackHandler.GetTokenPack)
		tokenPacks.POST("", superAdminOnly, tokenPackHandler.CreateTokenPack)
		tokenPacks.PUT("/:id", superAdminOnly, tokenPackHandler.UpdateTokenPack)
		tokenPacks.PUT("/:id/status", superAdminOnly, tokenPackHandler.UpdateTokenPackStatus)
		tokenPacks.DELETE("/:id", superAdminOnly, tokenPackHandler.DeleteTokenPack)
	}

	tokens := api.Group("/user-tokens")
	{
		tokens.GET("/my-tokens", tokenHandler.ListMyTokens)
		tokens.GET("/my-valid-tokens", tokenHandler.ListMyValidTokens)
		tokens.GET("/my-token-count", tokenHandler.GetMyTokenCount)
		tokens.GET("/user/:userId", adminOnly, tokenHandler.ListUserTokens)
		tokens.GET("/user/:userId/count", adminOnly, tokenHandler.GetUserTokenCount)
		tokens.POST("/purchase/:tokenPackId", tokenHandler.PurchaseTokenPack)
		tokens.POST("/use-tokens", tokenHandler.UseTokens)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
