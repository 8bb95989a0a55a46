// Package web exposes the catalog and synthesis operations over REST.
package web

import (
	"github.com/gin-gonic/gin"
)

// Server is the specforge web server.
type Server struct {
	svc    CatalogService
	store  CustomizationStore
	router *gin.Engine
}

// NewServer creates a web server around a service facade. The
// customization store may be nil; its routes then report 503.
func NewServer(svc CatalogService, store CustomizationStore) *Server {
	router := gin.Default()

	s := &Server{
		svc:    svc,
		store:  store,
		router: router,
	}

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/domains", s.handleListDomains)
		api.GET("/domains/search", s.handleSearchDomains)
		api.GET("/domains/:name", s.handleGetDomain)
		api.POST("/domains", s.handleCreateDomains)

		api.POST("/apis", s.handleCreateAPIs)
		api.GET("/apis", s.handleAPIsForDomains)

		api.POST("/specs/generate", s.handleGenerateSpec)
		api.POST("/specs/usecase", s.handleGenerateUseCaseSpec)

		api.PUT("/customizations", s.handleSaveCustomization)
		api.GET("/customizations", s.handleGetCustomization)
	}

	return s
}

// Run starts the web server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
