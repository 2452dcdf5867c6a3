package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"skillsphere/cmd/fx/account_fx"
	"skillsphere/cmd/fx/config_fx"
	"skillsphere/cmd/fx/content_fx"
	"skillsphere/cmd/fx/controllers_fx"
	"skillsphere/cmd/fx/db_fx"
	"skillsphere/cmd/fx/identity_fx"
	"skillsphere/cmd/fx/memcache_fx"
	"skillsphere/cmd/fx/subscription_fx"
	"skillsphere/internal/api/controllers"
	"skillsphere/internal/config"
	"skillsphere/internal/services"
	"skillsphere/pkg/middleware"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		identity_fx.Module,
		account_fx.Module,
		content_fx.Module,
		subscription_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

type routerParams struct {
	fx.In

	Config   *config.Config
	Log      *zap.Logger
	Identity services.IdentityServiceInterface

	Account      *controllers.AccountController
	Post         *controllers.PostController
	Note         *controllers.NoteController
	LearningPlan *controllers.LearningPlanController
	Subscription *controllers.SubscriptionController
	Admin        *controllers.AdminController
	User         *controllers.UserController
	Quiz         *controllers.QuizController
}

func ProvideRouter(p routerParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.IdentityMiddleware(p.Identity))
	r.Use(middleware.RequestLogger(p.Log))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(r.Group("/api"), p, middleware.NewRateLimiter(p.Config.LoginRatePerMinute))

	return r
}

func RegisterRoutes(api *gin.RouterGroup, p routerParams, limiter *middleware.RateLimiter) {
	auth := middleware.RequireAuth()

	authGroup := api.Group("/auth")
	authGroup.POST("/register", limiter.Handler(), p.Account.Register)
	authGroup.POST("/login", limiter.Handler(), p.Account.Login)
	authGroup.GET("/me", auth, p.Account.Me)
	authGroup.POST("/logout", auth, p.Account.Logout)

	postsGroup := api.Group("/posts")
	postsGroup.GET("", p.Post.ListPosts)
	postsGroup.GET("/:id", p.Post.GetPost)
	postsGroup.POST("", auth, p.Post.CreatePost)
	postsGroup.PUT("/:id", auth, p.Post.UpdatePost)
	postsGroup.DELETE("/:id", auth, p.Post.DeletePost)
	postsGroup.POST("/:id/comments", auth, p.Post.AddComment)
	postsGroup.PUT("/:id/comments/:commentId", auth, p.Post.UpdateComment)
	postsGroup.POST("/:id/reactions", auth, p.Post.React)

	api.DELETE("/comments/:commentId", auth, p.Post.DeleteComment)

	notesGroup := api.Group("/notes", auth)
	notesGroup.POST("", p.Note.CreateNote)
	notesGroup.GET("", p.Note.ListNotes)
	notesGroup.PUT("/:id", p.Note.UpdateNote)
	notesGroup.DELETE("/:id", p.Note.DeleteNote)

	plansGroup := api.Group("/learning-plans", auth)
	plansGroup.POST("", p.LearningPlan.CreateLearningPlan)
	plansGroup.GET("", p.LearningPlan.ListMyLearningPlans)
	plansGroup.GET("/all", p.LearningPlan.ListAllLearningPlans)
	plansGroup.PUT("/:id", p.LearningPlan.UpdateLearningPlan)
	plansGroup.PUT("/:id/status", p.LearningPlan.UpdateLearningPlanStatus)
	plansGroup.DELETE("/:id", p.LearningPlan.DeleteLearningPlan)

	subsGroup := api.Group("/subscriptions")
	subsGroup.GET("/plans", p.Subscription.ListPlans)
	subsGroup.POST("", auth, p.Subscription.CreateSubscription)
	subsGroup.GET("/user", auth, p.Subscription.GetUserSubscriptions)
	subsGroup.GET("/user/active", auth, p.Subscription.GetActiveSubscription)
	subsGroup.PUT("/:id", auth, p.Subscription.UpdateSubscription)
	subsGroup.DELETE("/:id", auth, p.Subscription.DeleteSubscription)

	usersGroup := api.Group("/users", auth)
	usersGroup.POST("/:id/follow", p.User.Follow)
	usersGroup.POST("/:id/unfollow", p.User.Unfollow)

	api.GET("/profile/:userId", p.User.GetProfile)

	quizzesGroup := api.Group("/quizzes")
	quizzesGroup.GET("", p.Quiz.ListQuizzes)
	quizzesGroup.POST("", auth, p.Quiz.CreateQuiz)

	adminGroup := api.Group("/admin", middleware.RequireAdmin())
	adminGroup.GET("/subscriptions", p.Admin.ListSubscriptions)
	adminGroup.POST("/subscriptions", p.Admin.CreateSubscription)
	adminGroup.GET("/subscription-plans", p.Admin.ListPlans)
	adminGroup.POST("/subscription-plans", p.Admin.CreatePlan)
	adminGroup.PUT("/subscription-plans/:id", p.Admin.UpdatePlan)
	adminGroup.DELETE("/subscription-plans/:id", p.Admin.DeletePlan)
}
