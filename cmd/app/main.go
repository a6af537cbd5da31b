package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"familytravel/cmd/fx/config_fx"
	"familytravel/cmd/fx/geo_fx"
	"familytravel/cmd/fx/llm_fx"
	"familytravel/cmd/fx/planner_fx"
	"familytravel/internal/api/controllers"
	"familytravel/pkg/config"
	"familytravel/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(zap.NewProduction),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		config_fx.Module,
		llm_fx.Module,
		geo_fx.Module,
		planner_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", cfg.Port))
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(planController *controllers.PlanController, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogMiddleware(logger))

	r.LoadHTMLGlob("templates/*.html")

	RegisterRoutes(r, planController)

	return r
}

func RegisterRoutes(r *gin.Engine, planController *controllers.PlanController) {
	r.GET("/", planController.IndexHandler)
	r.GET("/health", planController.HealthHandler)

	api := r.Group("/api")
	api.POST("/plans", planController.CreatePlanHandler)
}
