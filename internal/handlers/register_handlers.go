package handlers

import (
	"regexp"

	"github.com/contactsapp/contacts-backend/cmd/docs"
	portssvc "github.com/contactsapp/contacts-backend/internal/core/ports/services"
	"github.com/contactsapp/contacts-backend/internal/middleware"
	"github.com/contactsapp/contacts-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// extensionPattern matches internal phone extensions: digits and dashes, up
// to ten characters. The lazy-link placeholder "---" is deliberately valid.
var extensionPattern = regexp.MustCompile(`^[0-9-]{1,10}$`)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidations()

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes (login is rate limited)
	registerAuthRoutes(r, cfg, services.Auth)

	// Everything else requires a valid access token
	authed := r.Group("", middleware.AuthMiddleware(cfg.AuthSecretKey))
	registerSessionRoutes(authed, services.Auth)
	registerContactRoutes(authed, services.Contact)
	registerGroupRoutes(authed, services.Group)
	registerAdminRoutes(authed, services.User)

	setupSwaggerRoutes(r, cfg)
}

func registerCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("extension", func(fl validator.FieldLevel) bool {
			return extensionPattern.MatchString(fl.Field().String())
		})
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
