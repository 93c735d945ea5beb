package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "goblog/internal/app"
	"goblog/internal/bootstrap"
	"goblog/internal/repository"
	"goblog/internal/transport/http/handler"
	"goblog/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.LoadHTMLGlob(app.Config.Web.TemplateGlob)
	router.Static(app.Config.Upload.PublicPath, app.Config.Upload.Dir)

	router.Use(middleware.CurrentUser(app.Config.Auth.JWTSecret, app.Config.Auth.CookieName))

	userRepo := repository.NewUserRepository(app.DB)
	blogRepo := repository.NewBlogRepository(app.DB)
	commentRepo := repository.NewCommentRepository(app.DB)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	blogService := appsvc.NewBlogService(blogRepo, commentRepo)

	homeHandler := handler.NewHomeHandler(blogService)
	userHandler := handler.NewUserHandler(authService, app.Config.Auth.CookieName, app.Config.Auth.JWTExpireMinute*60)
	blogHandler := handler.NewBlogHandler(blogService, app.Uploads)
	healthHandler := handler.NewHealthHandler(app)

	router.GET("/", homeHandler.Index)
	router.GET("/healthz", healthHandler.Check)

	userGroup := router.Group("/user")
	userGroup.GET("/signup", userHandler.SignupForm)
	userGroup.POST("/signup", userHandler.Signup)
	userGroup.GET("/signin", userHandler.SigninForm)
	userGroup.POST("/signin", userHandler.Signin)
	userGroup.GET("/signout", userHandler.Signout)

	blogGroup := router.Group("/blog")
	blogGroup.GET("/add", middleware.RequireAuth(), blogHandler.AddForm)
	blogGroup.GET("/:id", blogHandler.Show)
	blogGroup.POST("/comment/:id", middleware.RequireAuth(), blogHandler.AddComment)
	router.POST("/blog", middleware.RequireAuth(), blogHandler.Create)

	return router
}
