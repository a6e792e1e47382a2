package router

import (
	"github.com/cafe120/cafe120-backend/config"
	"github.com/cafe120/cafe120-backend/internal/app/controller"
	"github.com/cafe120/cafe120-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController     *controller.AuthController
	userController     *controller.UserController
	planController     *controller.PlanController
	leadController     *controller.LeadController
	catalogController  *controller.CatalogController
	orderController    *controller.OrderController
	storeController    *controller.StoreController
	resourceController *controller.ResourceController
	configController   *controller.ConfigController
	aiController       *controller.AIController
	uploadController   *controller.UploadController
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	userController *controller.UserController,
	planController *controller.PlanController,
	leadController *controller.LeadController,
	catalogController *controller.CatalogController,
	orderController *controller.OrderController,
	storeController *controller.StoreController,
	resourceController *controller.ResourceController,
	configController *controller.ConfigController,
	aiController *controller.AIController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		userController:     userController,
		planController:     planController,
		leadController:     leadController,
		catalogController:  catalogController,
		orderController:    orderController,
		storeController:    storeController,
		resourceController: resourceController,
		configController:   configController,
		aiController:       aiController,
		uploadController:   uploadController,
		authMiddleware:     authMiddleware,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "CAFE120 API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/refresh", r.authController.RefreshToken)
			auth.POST("/logout", r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
		}

		// 회원 관리 (관리자 전용)
		users := v1.Group("/users")
		users.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole("admin"))
		{
			users.GET("", r.userController.ListUsers)
			users.PATCH("/:id", r.userController.UpdateUser)
			users.DELETE("/:id", r.userController.DeleteUser)
		}

		// 멤버십 플랜: 조회는 공개, 변경은 관리자
		plans := v1.Group("/plans")
		{
			plans.GET("", r.authMiddleware.OptionalAuthenticate(), r.planController.ListPlans)
			plans.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.planController.CreatePlan,
			)
			plans.PATCH("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.planController.UpdatePlan,
			)
			plans.DELETE("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.planController.DeletePlan,
			)
		}

		// 상담 문의: 접수는 공개, 목록/처리는 관리자
		leads := v1.Group("/leads")
		{
			leads.POST("", r.leadController.SubmitLead)
			leads.GET("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.leadController.ListLeads,
			)
			leads.PATCH("/:id/status",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.leadController.UpdateLeadStatus,
			)
		}

		// 식자재 카탈로그: 조회는 로그인 사용자, 변경은 관리자
		ingredients := v1.Group("/ingredients")
		ingredients.Use(r.authMiddleware.Authenticate())
		{
			ingredients.GET("", r.catalogController.ListIngredients)
			ingredients.GET("/:id", r.catalogController.GetIngredient)
			ingredients.POST("",
				r.authMiddleware.RequireRole("admin"),
				r.catalogController.CreateIngredient,
			)
			// reorder가 :id 파라미터와 겹치지 않게 PUT 고정 경로 사용
			ingredients.PUT("/reorder",
				r.authMiddleware.RequireRole("admin"),
				r.catalogController.ReorderIngredients,
			)
			ingredients.PATCH("/:id",
				r.authMiddleware.RequireRole("admin"),
				r.catalogController.UpdateIngredient,
			)
			ingredients.DELETE("/:id",
				r.authMiddleware.RequireRole("admin"),
				r.catalogController.DeleteIngredient,
			)
		}

		categories := v1.Group("/ingredient-categories")
		categories.Use(r.authMiddleware.Authenticate())
		{
			categories.GET("", r.catalogController.ListCategories)
			categories.POST("",
				r.authMiddleware.RequireRole("admin"),
				r.catalogController.CreateCategory,
			)
			categories.PATCH("/:id",
				r.authMiddleware.RequireRole("admin"),
				r.catalogController.UpdateCategory,
			)
			categories.DELETE("/:id",
				r.authMiddleware.RequireRole("admin"),
				r.catalogController.DeleteCategory,
			)
		}

		orders := v1.Group("/orders")
		orders.Use(r.authMiddleware.Authenticate())
		{
			orders.POST("", r.orderController.CreateOrder)
			orders.GET("", r.orderController.ListMyOrders)
			orders.GET("/:id", r.orderController.GetOrder)
		}

		// 발주 관리 (관리자 전용)
		adminOrders := v1.Group("/admin/orders")
		adminOrders.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole("admin"))
		{
			adminOrders.GET("", r.orderController.ListAllOrders)
			adminOrders.PATCH("/:id/status", r.orderController.UpdateOrderStatus)
		}

		// 가맹점 대장 (관리자 전용)
		stores := v1.Group("/stores")
		stores.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole("admin"))
		{
			stores.GET("", r.storeController.ListStores)
			stores.POST("", r.storeController.CreateStore)
			stores.POST("/import", r.storeController.ImportStores)
			stores.PATCH("/:id", r.storeController.UpdateStore)
			stores.DELETE("", r.storeController.DeleteStores)
		}

		// 자료실: 조회는 로그인 사용자, 변경은 관리자
		resources := v1.Group("/resources")
		resources.Use(r.authMiddleware.Authenticate())
		{
			resources.GET("", r.resourceController.ListResources)
			resources.POST("",
				r.authMiddleware.RequireRole("admin"),
				r.resourceController.CreateResource,
			)
			resources.PATCH("/:id",
				r.authMiddleware.RequireRole("admin"),
				r.resourceController.UpdateResource,
			)
			resources.DELETE("/:id",
				r.authMiddleware.RequireRole("admin"),
				r.resourceController.DeleteResource,
			)
		}

		// 설정 (관리자 전용)
		configs := v1.Group("/admin/configs")
		configs.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole("admin"))
		{
			configs.GET("", r.configController.ListConfigs)
			configs.GET("/:key", r.configController.GetConfig)
			configs.PUT("/:key", r.configController.SetConfig)
		}

		ai := v1.Group("/ai")
		ai.Use(r.authMiddleware.Authenticate())
		{
			ai.POST("/sns", r.aiController.GenerateSNS)
			ai.POST("/consult", r.aiController.Consult)
			ai.POST("/image", r.aiController.GenerateImage)
			ai.POST("/generate", r.aiController.Generate)
			ai.GET("/history", r.aiController.History)
		}

		upload := v1.Group("/upload")
		upload.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole("admin"))
		{
			upload.POST("/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

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
