package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/models"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/service"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/util"
)

// PropertyHandler serves the rental property registry. It also talks to
// the document service so a property can be added together with an
// attached file in one request.
type PropertyHandler struct {
	Svc    *service.PropertyService
	Docs   *service.DocumentService
	Logger *logrus.Logger
}

func NewPropertyHandler(svc *service.PropertyService, docs *service.DocumentService, logger *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{Svc: svc, Docs: docs, Logger: logger}
}

// ---------- request/response shapes ----------

// updatePropertyReq carries the full mutable field set; values the caller
// omits fall back to zero/null on purpose (wholesale replace).
type updatePropertyReq struct {
	PropertyName         string          `json:"property_name"`
	Address              string          `json:"address"`
	City                 string          `json:"city"`
	State                string          `json:"state"`
	County               string          `json:"county"`
	BuiltYear            int             `json:"built_year"`
	PurchaseDate         string          `json:"purchase_date"`
	OwnershipAssociation string          `json:"ownership_association"`
	PurchasePrice        decimal.Decimal `json:"purchase_price"`
	DownPayment          decimal.Decimal `json:"down_payment"`
	InterestRate         decimal.Decimal `json:"interest_rate"`
	MortgageBrokerName   string          `json:"mortgage_broker_name"`
	MaturityDate         string          `json:"maturity_date"`
	LoanNumber           string          `json:"loan_number"`
}

type propertyResp struct {
	ID                   uint            `json:"id"`
	PropertyID           string          `json:"property_id"`
	PropertyName         string          `json:"property_name"`
	Address              string          `json:"address"`
	City                 string          `json:"city"`
	State                string          `json:"state"`
	County               *string         `json:"county"`
	BuiltYear            int             `json:"built_year"`
	PurchaseDate         string          `json:"purchase_date"`
	OwnershipAssociation string          `json:"ownership_association"`
	PurchasePrice        decimal.Decimal `json:"purchase_price"`
	DownPayment          decimal.Decimal `json:"down_payment"`
	InterestRate         decimal.Decimal `json:"interest_rate"`
	MortgageBrokerName   *string         `json:"mortgage_broker_name"`
	MaturityDate         string          `json:"maturity_date"`
	LoanNumber           *string         `json:"loan_number"`
}

func toPropertyResp(p *models.RentalProperty) propertyResp {
	return propertyResp{
		ID:                   p.ID,
		PropertyID:           p.PropertyID,
		PropertyName:         p.PropertyName,
		Address:              p.Address,
		City:                 p.City,
		State:                p.State,
		County:               p.County,
		BuiltYear:            p.BuiltYear,
		PurchaseDate:         util.FormatDate(p.PurchaseDate),
		OwnershipAssociation: p.OwnershipAssociation,
		PurchasePrice:        p.PurchasePrice,
		DownPayment:          p.DownPayment,
		InterestRate:         p.InterestRate,
		MortgageBrokerName:   p.MortgageBrokerName,
		MaturityDate:         util.FormatDate(p.MaturityDate),
		LoanNumber:           p.LoanNumber,
	}
}

// ---------- handlers ----------

// Data returns all properties ordered by property id.
func (h *PropertyHandler) Data(c *gin.Context) {
	properties, err := h.Svc.List()
	if err != nil {
		h.Logger.WithError(err).Error("failed to list rental properties")
		util.ServerError(c, "Failed to load rental properties")
		return
	}

	items := make([]propertyResp, 0, len(properties))
	for i := range properties {
		items = append(items, toPropertyResp(&properties[i]))
	}
	c.JSON(http.StatusOK, items)
}

// Add creates a property from a multipart form. An optional "file" part is
// stored through the document service and linked to the new property.
func (h *PropertyHandler) Add(c *gin.Context) {
	property, err := h.propertyFromForm(c)
	if err != nil {
		util.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Svc.Add(property); err != nil {
		writeServiceError(c, h.Logger, err,
			"failed to add rental property",
			"An unexpected error occurred while adding the property")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err == nil && fileHeader != nil {
		src, err := fileHeader.Open()
		if err != nil {
			h.Logger.WithError(err).Error("failed to open attached file")
			util.ServerError(c, "Property added but the attached file could not be read")
			return
		}
		defer src.Close()

		relatedID := property.ID
		_, err = h.Docs.Upload(src, fileHeader.Filename,
			fileHeader.Header.Get("Content-Type"),
			"rental_properties", &relatedID, c.PostForm("notes"))
		if err != nil {
			h.Logger.WithError(err).Error("failed to store attached file")
			util.ServerError(c, "Property added but the attached file could not be stored")
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Property added successfully!",
		"property": toPropertyResp(property),
	})
}

// Update replaces the mutable fields of a property wholesale.
func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.JSONError(c, http.StatusBadRequest, "Invalid property ID")
		return
	}

	var req updatePropertyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields, err := req.toRecord()
	if err != nil {
		util.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Svc.Update(uint(id), fields); err != nil {
		writeServiceError(c, h.Logger, err,
			"failed to update rental property",
			"An unexpected error occurred while updating the property")
		return
	}

	util.JSONMessage(c, http.StatusOK, fmt.Sprintf("Property %d updated successfully!", id))
}

// Delete removes a property by its database id. Files linked to it are
// left in place as orphans.
func (h *PropertyHandler) Delete(c *gin.Context) {
	var req struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		util.JSONError(c, http.StatusBadRequest, "Invalid property ID")
		return
	}

	deleted, err := h.Svc.Delete(req.ID)
	if err != nil {
		writeServiceError(c, h.Logger, err,
			"failed to delete rental property",
			"An unexpected error occurred while deleting the property")
		return
	}

	util.JSONMessage(c, http.StatusOK,
		fmt.Sprintf("Property %s deleted successfully!", deleted.PropertyID))
}

// ---------- coercion ----------

// propertyFromForm builds a typed record from the multipart form, applying
// the blank-to-zero / blank-to-null coercion rules field by field.
func (h *PropertyHandler) propertyFromForm(c *gin.Context) (*models.RentalProperty, error) {
	purchaseDate, err := util.ParseDate(c.PostForm("purchase_date"))
	if err != nil {
		return nil, fmt.Errorf("purchase_date: %w", err)
	}
	maturityDate, err := util.ParseDate(c.PostForm("maturity_date"))
	if err != nil {
		return nil, fmt.Errorf("maturity_date: %w", err)
	}
	builtYear, err := util.ParseIntField(c.PostForm("built_year"))
	if err != nil {
		return nil, fmt.Errorf("built_year: %w", err)
	}
	purchasePrice, err := util.ParseDecimalField(c.PostForm("purchase_price"))
	if err != nil {
		return nil, fmt.Errorf("purchase_price: %w", err)
	}
	downPayment, err := util.ParseDecimalField(c.PostForm("down_payment"))
	if err != nil {
		return nil, fmt.Errorf("down_payment: %w", err)
	}
	interestRate, err := util.ParseDecimalField(c.PostForm("interest_rate"))
	if err != nil {
		return nil, fmt.Errorf("interest_rate: %w", err)
	}

	return &models.RentalProperty{
		PropertyID:           c.PostForm("property_id"),
		PropertyName:         c.PostForm("property_name"),
		Address:              c.PostForm("address"),
		City:                 c.PostForm("city"),
		State:                c.PostForm("state"),
		County:               util.OptionalText(c.PostForm("county")),
		BuiltYear:            builtYear,
		PurchaseDate:         purchaseDate,
		OwnershipAssociation: c.PostForm("ownership_association"),
		PurchasePrice:        purchasePrice,
		DownPayment:          downPayment,
		InterestRate:         interestRate,
		MortgageBrokerName:   util.OptionalText(c.PostForm("mortgage_broker_name")),
		MaturityDate:         maturityDate,
		LoanNumber:           util.OptionalText(c.PostForm("loan_number")),
	}, nil
}

func (r *updatePropertyReq) toRecord() (*models.RentalProperty, error) {
	purchaseDate, err := util.ParseDate(r.PurchaseDate)
	if err != nil {
		return nil, fmt.Errorf("purchase_date: %w", err)
	}
	maturityDate, err := util.ParseDate(r.MaturityDate)
	if err != nil {
		return nil, fmt.Errorf("maturity_date: %w", err)
	}

	return &models.RentalProperty{
		PropertyName:         r.PropertyName,
		Address:              r.Address,
		City:                 r.City,
		State:                r.State,
		County:               util.OptionalText(r.County),
		BuiltYear:            r.BuiltYear,
		PurchaseDate:         purchaseDate,
		OwnershipAssociation: r.OwnershipAssociation,
		PurchasePrice:        r.PurchasePrice,
		DownPayment:          r.DownPayment,
		InterestRate:         r.InterestRate,
		MortgageBrokerName:   util.OptionalText(r.MortgageBrokerName),
		MaturityDate:         maturityDate,
		LoanNumber:           util.OptionalText(r.LoanNumber),
	}, nil
}
