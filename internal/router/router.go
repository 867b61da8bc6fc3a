package router

import (
	"github.com/martshop-next/internal/config"
	publichandlers "github.com/martshop-next/internal/http/handlers/public"
	"github.com/martshop-next/internal/logger"
	"github.com/martshop-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API 路由组
	api := r.Group("/api")
	{
		// 账号与登录
		api.POST("/users", publicHandler.Register)
		api.GET("/users", publicHandler.ListUsers)
		api.POST("/login", publicHandler.Login)

		// 商品目录
		api.GET("/products", publicHandler.ListProducts)
		api.GET("/products/:id", publicHandler.GetProduct)
		api.POST("/products", publicHandler.CreateProduct)
		api.PUT("/products/:id", publicHandler.UpdateProduct)
		api.DELETE("/products/:id", publicHandler.DeleteProduct)

		// 需要用户登录的接口
		user := api.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetMe)
			user.PUT("/me", publicHandler.UpdateMe)
			user.DELETE("/me", publicHandler.DeleteMe)

			user.GET("/cart-items", publicHandler.GetCart)
			user.POST("/cart-items", publicHandler.AddCartItem)
			user.PUT("/cart-items/:id", publicHandler.UpdateCartItem)
			user.DELETE("/cart-items/:id", publicHandler.DeleteCartItem)
		}
	}

	return r
}
