package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jmorales/aguaruta-visits/internal/model"
	"github.com/jmorales/aguaruta-visits/internal/service"
)

// DayReportGenerator renders a day report into a downloadable document.
// The excel and pdf packages each provide one.
type DayReportGenerator interface {
	Generate(report model.DayReport) ([]byte, error)
}

type Handler struct {
	clients *service.ClientService
	visits  *service.VisitService
	excel   DayReportGenerator
	pdf     DayReportGenerator
	sqlite  bool
	log     zerolog.Logger
}

func NewHandler(clients *service.ClientService, visits *service.VisitService, excel, pdf DayReportGenerator, sqlite bool, log zerolog.Logger) *Handler {
	return &Handler{
		clients: clients,
		visits:  visits,
		excel:   excel,
		pdf:     pdf,
		sqlite:  sqlite,
		log:     log,
	}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/health", h.health)

	router.GET("/clients", h.listClients)
	router.POST("/clients", h.createClient)
	router.GET("/clients/:id", h.getClient)
	router.PUT("/clients/:id/prices", h.updateClientPrices)

	router.POST("/visits", h.createVisit)
	router.GET("/visits", h.listVisits)
	router.DELETE("/visits/:id", h.deleteVisit)
	router.GET("/visits/export", h.exportVisits)
	router.GET("/visits/export/pdf", h.exportVisitsPDF)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "sqlite": h.sqlite})
}

func (h *Handler) listClients(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

type createClientRequest struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	PriceFardo    float64 `json:"price_fardo"`
	PriceBotellon float64 `json:"price_botellon"`
}

func (h *Handler) createClient(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clients.Create(c.Request.Context(), service.CreateClientInput{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		PriceFardo:    req.PriceFardo,
		PriceBotellon: req.PriceBotellon,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) getClient(c *gin.Context) {
	client, err := h.clients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

type updatePricesRequest struct {
	PriceFardo    float64 `json:"price_fardo"`
	PriceBotellon float64 `json:"price_botellon"`
}

func (h *Handler) updateClientPrices(c *gin.Context) {
	var req updatePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.clients.UpdatePrices(c.Request.Context(), c.Param("id"), req.PriceFardo, req.PriceBotellon); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type createVisitRequest struct {
	ClientID        string `json:"client_id"`
	Date            string `json:"date"`
	QtyFardo        int    `json:"qty_fardo"`
	QtyBotellon     int    `json:"qty_botellon"`
	VaciosRecogidos int    `json:"vacios_recogidos"`
	Note            string `json:"note"`
}

func (h *Handler) createVisit(c *gin.Context) {
	var req createVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.visits.Create(c.Request.Context(), service.CreateVisitInput{
		ClientID:        req.ClientID,
		Date:            req.Date,
		QtyFardo:        req.QtyFardo,
		QtyBotellon:     req.QtyBotellon,
		VaciosRecogidos: req.VaciosRecogidos,
		Note:            req.Note,
	}); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

func (h *Handler) listVisits(c *gin.Context) {
	report, err := h.visits.DayReport(c.Request.Context(), c.Query("date"), c.Query("clientId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":   report.Date,
		"total":  report.Total,
		"visits": report.Visits,
	})
}

func (h *Handler) deleteVisit(c *gin.Context) {
	if err := h.visits.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) exportVisits(c *gin.Context) {
	h.export(c, h.excel, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx")
}

func (h *Handler) exportVisitsPDF(c *gin.Context) {
	h.export(c, h.pdf, "application/pdf", "pdf")
}

func (h *Handler) export(c *gin.Context, generator DayReportGenerator, contentType, extension string) {
	report, err := h.visits.DayReport(c.Request.Context(), c.Query("date"), c.Query("clientId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	content, err := generator.Generate(*report)
	if err != nil {
		h.handleError(c, err)
		return
	}

	fileName := fmt.Sprintf("visitas-%s.%s", report.Date, extension)
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, contentType, content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
