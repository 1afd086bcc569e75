package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"listing-mapper-service/internal/middleware"
	"listing-mapper-service/internal/repository"
	"listing-mapper-service/internal/services"
)

// PoolHandler handles product identifier pool HTTP requests
type PoolHandler struct {
	upcService *services.UPCService
	poolRepo   *repository.UPCPoolRepository
}

// NewPoolHandler creates a new pool handler
func NewPoolHandler(upcService *services.UPCService, poolRepo *repository.UPCPoolRepository) *PoolHandler {
	return &PoolHandler{
		upcService: upcService,
		poolRepo:   poolRepo,
	}
}

// ClaimRequest asks for an identifier assignment for one product
type ClaimRequest struct {
	SKU   string `json:"sku" binding:"required"`
	Scope string `json:"scope"`
}

// Claim assigns a pool code to a product, reusing any prior assignment
func (h *PoolHandler) Claim(c *gin.Context) {
	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scope := req.Scope
	if scope == "" {
		scope = middleware.GetShopID(c)
	}

	identifier, err := h.upcService.Claim(c.Request.Context(), req.SKU, scope)
	if err != nil {
		if err == services.ErrMissingSKU {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if identifier == nil {
		c.JSON(http.StatusOK, gin.H{
			"sku":        req.SKU,
			"identifier": nil,
			"message":    "identifier pool exhausted",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sku":        req.SKU,
		"identifier": identifier,
	})
}

// Release returns a product's code to the pool
func (h *PoolHandler) Release(c *gin.Context) {
	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scope := req.Scope
	if scope == "" {
		scope = middleware.GetShopID(c)
	}

	if err := h.poolRepo.Release(c.Request.Context(), req.SKU, scope); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sku": req.SKU, "released": true})
}

// Stats reports available and assigned code counts for a scope
func (h *PoolHandler) Stats(c *gin.Context) {
	scope := c.Query("scope")
	if scope == "" {
		scope = middleware.GetShopID(c)
	}

	stats, err := h.poolRepo.Stats(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Import loads pool codes from an uploaded CSV or Excel file
func (h *PoolHandler) Import(c *gin.Context) {
	scope := c.DefaultPostForm("scope", middleware.GetShopID(c))

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please upload a CSV or Excel file"})
		return
	}
	defer file.Close()

	var codes []string
	filename := strings.ToLower(header.Filename)
	switch {
	case strings.HasSuffix(filename, ".csv"):
		codes, err = parseCSVCodes(file)
	case strings.HasSuffix(filename, ".xlsx"), strings.HasSuffix(filename, ".xls"):
		codes, err = parseXLSXCodes(file)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file format, expected .csv or .xlsx"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(codes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no codes found in file"})
		return
	}

	imported, err := h.poolRepo.ImportCodes(c.Request.Context(), scope, codes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scope":    scope,
		"total":    len(codes),
		"imported": imported,
		"skipped":  len(codes) - imported,
	})
}

// parseCSVCodes reads codes from the first column, skipping a header row
// when the first cell is not numeric
func parseCSVCodes(file io.Reader) ([]string, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var codes []string
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV file: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		code := strings.TrimSpace(record[0])
		if first {
			first = false
			if !isDigits(code) {
				continue
			}
		}
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes, nil
}

// parseXLSXCodes reads codes from the first column of the first sheet
func parseXLSXCodes(file io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	var codes []string
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		code := strings.TrimSpace(row[0])
		if i == 0 && !isDigits(code) {
			continue
		}
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
