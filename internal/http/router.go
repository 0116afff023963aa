// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kottage/internal/ai"
	"kottage/internal/http/handlers"
	"kottage/internal/http/middleware"
	"kottage/internal/infra"
	"kottage/internal/maps"
	"kottage/internal/modules/address"
	"kottage/internal/modules/form"
	"kottage/internal/modules/profile"
)

type RouterDeps struct {
	Verifier  infra.TokenVerifier
	Profiles  *profile.Service
	Form      *form.Service
	Addresses *address.Service
	Extractor ai.FieldExtractor
	Search    *maps.AddressService // optional
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(deps.Verifier))

	profileHandler := handlers.NewProfileHandler(deps.Profiles)
	api.POST("/profiles", profileHandler.Create)
	api.GET("/profiles/:id", profileHandler.Get)
	api.PUT("/profiles/:id", profileHandler.Update)
	api.DELETE("/profiles/:id", profileHandler.Delete)
	api.GET("/bookings", profileHandler.ListBookings)

	generateHandler := handlers.NewGenerateHandler(deps.Extractor)
	api.POST("/generate/form-fields", generateHandler.FormFields)

	formHandler := handlers.NewFormHandler(deps.Form)
	api.GET("/form", formHandler.Load)
	api.PUT("/form", formHandler.Replace)
	api.PATCH("/form", formHandler.Merge)
	api.POST("/form/extraction", formHandler.ApplyExtraction)
	api.GET("/form/progress", formHandler.Progress)

	addressHandler := handlers.NewAddressHandler(deps.Addresses, deps.Search)
	api.GET("/addresses/:kind", addressHandler.List)
	api.POST("/addresses/:kind", addressHandler.Add)
	api.PUT("/addresses/:kind/:id", addressHandler.Update)
	api.DELETE("/addresses/:kind/:id", addressHandler.Remove)
	api.POST("/addresses/:kind/:id/toggle", addressHandler.ToggleEnabled)
	api.POST("/addresses/:kind/:id/home", addressHandler.SetHome)
	api.GET("/geocode", addressHandler.Search)

	return r
}
