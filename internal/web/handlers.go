package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fincatalog/specforge/internal/catalog"
	"github.com/fincatalog/specforge/internal/openapi"
	"github.com/fincatalog/specforge/internal/service"
	"github.com/fincatalog/specforge/internal/storage"
)

const maxContextSize = 10 << 10 // 10KB of use-case context text

// CatalogService defines the facade methods the handlers use, for mocking.
type CatalogService interface {
	Domains() []*catalog.ServiceDomain
	SearchDomains(term string) []*catalog.ServiceDomain
	DomainByName(name string) (*catalog.ServiceDomain, bool)
	CreateDomains(candidates []catalog.DomainCandidate) []*catalog.ServiceDomain
	CreateAPIs(candidates []catalog.APICandidate) []*catalog.APITemplate
	APIsForDomains(ctx context.Context, domainNames []string, useCaseContext string) service.APIListingResult
	GenerateSpec(api catalog.FlattenedAPI, useCaseID, userID string) (*openapi.Document, openapi.Report)
	GenerateUseCaseSpec(uc openapi.UseCase) (*openapi.Document, openapi.Report)
}

// CustomizationStore defines the persistence methods the handlers use.
type CustomizationStore interface {
	Save(rec *storage.CustomizationRecord) error
	Get(useCaseID, apiName, userID string) (*storage.CustomizationRecord, error)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleListDomains(c *gin.Context) {
	domains := s.svc.Domains()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"domains": domains,
		"count":   len(domains),
	})
}

func (s *Server) handleSearchDomains(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "query parameter required",
		})
		return
	}

	domains := s.svc.SearchDomains(term)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"query":   term,
		"domains": domains,
		"count":   len(domains),
	})
}

func (s *Server) handleGetDomain(c *gin.Context) {
	name := c.Param("name")

	domain, ok := s.svc.DomainByName(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "domain not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    domain,
	})
}

func (s *Server) handleCreateDomains(c *gin.Context) {
	var candidates []catalog.DomainCandidate
	if err := c.BindJSON(&candidates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	resolved := s.svc.CreateDomains(candidates)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"domains": resolved,
		"count":   len(resolved),
	})
}

func (s *Server) handleCreateAPIs(c *gin.Context) {
	var candidates []catalog.APICandidate
	if err := c.BindJSON(&candidates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	resolved := s.svc.CreateAPIs(candidates)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"apis":    resolved,
		"count":   len(resolved),
	})
}

func (s *Server) handleAPIsForDomains(c *gin.Context) {
	domains := c.QueryArray("domain")
	if len(domains) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "at least one domain parameter required",
		})
		return
	}

	useCaseContext := c.Query("context")
	if len(useCaseContext) > maxContextSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "context exceeds maximum size of 10KB",
		})
		return
	}

	result := s.svc.APIsForDomains(c.Request.Context(), domains, useCaseContext)
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"apis":           result.Entries,
		"count":          len(result.Entries),
		"refined":        result.Refined,
		"degradedReason": result.DegradedReason,
	})
}

// generateSpecRequest is the body of POST /api/specs/generate.
type generateSpecRequest struct {
	API       catalog.FlattenedAPI `json:"api"`
	UseCaseID string               `json:"useCaseId,omitempty"`
	UserID    string               `json:"userId,omitempty"`
}

func (s *Server) handleGenerateSpec(c *gin.Context) {
	var req generateSpecRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if req.API.Name == "" || req.API.Endpoint == "" || req.API.Method == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "api name, endpoint and method are required",
		})
		return
	}

	doc, report := s.svc.GenerateSpec(req.API, req.UseCaseID, req.UserID)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"spec":       doc,
		"validation": report,
	})
}

func (s *Server) handleGenerateUseCaseSpec(c *gin.Context) {
	var uc openapi.UseCase
	if err := c.BindJSON(&uc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if len(uc.APIs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "use case has no APIs",
		})
		return
	}

	doc, report := s.svc.GenerateUseCaseSpec(uc)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"spec":       doc,
		"validation": report,
	})
}

func (s *Server) handleSaveCustomization(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "customization storage not configured",
		})
		return
	}

	var rec storage.CustomizationRecord
	if err := c.BindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if rec.UseCaseID == "" || rec.APIName == "" || rec.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "useCaseId, apiName and userId are required",
		})
		return
	}

	if err := s.store.Save(&rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      rec.ID,
		"message": "Customization saved",
	})
}

func (s *Server) handleGetCustomization(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "customization storage not configured",
		})
		return
	}

	useCaseID := c.Query("useCaseId")
	apiName := c.Query("apiName")
	userID := c.Query("userId")
	if useCaseID == "" || apiName == "" || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "useCaseId, apiName and userId parameters required",
		})
		return
	}

	rec, err := s.store.Get(useCaseID, apiName, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "customization not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rec,
	})
}
