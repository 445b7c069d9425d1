package handler

import (
	"github.com/gin-gonic/gin"

	"taxlens/internal/domain"
	"taxlens/internal/extraction"
)

// RegistryHandler exposes read-only views of the pattern registry and the
// form-section lookup.
type RegistryHandler struct {
	registry *extraction.Registry
}

// NewRegistryHandler creates a new RegistryHandler.
func NewRegistryHandler(registry *extraction.Registry) *RegistryHandler {
	return &RegistryHandler{registry: registry}
}

// FieldInfo describes one registered field for API consumers.
type FieldInfo struct {
	Name        domain.FieldName `json:"name"`
	RuleCount   int              `json:"rule_count"`
	StrictShape bool             `json:"strict_shape"`
}

// ListFields handles GET /fields.
func (h *RegistryHandler) ListFields(c *gin.Context) {
	fields := h.registry.Fields()
	infos := make([]FieldInfo, 0, len(fields))
	for _, f := range fields {
		_, strict := extraction.StrictShape(f)
		infos = append(infos, FieldInfo{
			Name:        f,
			RuleCount:   len(h.registry.Rules(f)),
			StrictShape: strict,
		})
	}
	RespondOK(c, gin.H{"fields": infos})
}

// ListSections handles GET /sections.
func (h *RegistryHandler) ListSections(c *gin.Context) {
	RespondOK(c, gin.H{"sections": extraction.Sections()})
}

// SectionFields handles GET /sections/:section/fields.
func (h *RegistryHandler) SectionFields(c *gin.Context) {
	section := domain.FormSection(c.Param("section"))
	fields, err := extraction.FieldsForSection(section)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"section": section, "fields": fields})
}
