package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/jeevibe/engine/internal/store"
)

// runJob executes one scheduled job. Guarded by cronAuth, not identity.
func (s *Server) runJob(c *gin.Context) {
	res, err := s.jobs.Run(c.Request.Context(), c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, res)
}

// catalogImport validates and upserts a question batch. The body is the
// raw JSON array; validation errors name the offending record.
func (s *Server) catalogImport(c *gin.Context) {
	n, err := s.importer.Import(c.Request.Context(), c.Request.Body)
	if err != nil {
		fail(c, err)
		return
	}
	s.index.Invalidate()
	respond(c, gin.H{"imported": n})
}

func (s *Server) listTiers(c *gin.Context) {
	tiers, err := s.tiers.All(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, gin.H{"tiers": tiers})
}

func (s *Server) upsertTier(c *gin.Context) {
	var cfg store.TierConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		failValidation(c, "malformed tier config: "+err.Error())
		return
	}
	cfg.Name = c.Param("name")
	if err := s.tiers.Upsert(c.Request.Context(), &cfg); err != nil {
		fail(c, err)
		return
	}
	respond(c, gin.H{"tier": cfg.Name})
}
