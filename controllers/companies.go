package controllers

import (
	"strconv"
	"time"

	"bourse/ledger"

	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const companiesCacheKey = "companies"

type CompaniesController struct {
	Ledger *ledger.Ledger
	Logger *zap.SugaredLogger
	// Short-TTL cache over the company list; read traffic dwarfs the
	// rate at which founding and issuance change it.
	Cache *cache.Cache
}

func NewCompaniesController(l *ledger.Ledger, logger *zap.SugaredLogger) *CompaniesController {
	return &CompaniesController{
		Ledger: l,
		Logger: logger,
		Cache:  cache.New(10*time.Second, time.Minute),
	}
}

func (cc CompaniesController) GetCompanies(c *gin.Context) {
	if cached, found := cc.Cache.Get(companiesCacheKey); found {
		RespondOK(c, cached)
		return
	}

	listings, err := cc.Ledger.Companies()
	if err != nil {
		RespondLedgerErr(c, cc.Logger, err)
		return
	}

	cc.Cache.SetDefault(companiesCacheKey, listings)
	RespondOK(c, listings)
}

func (cc CompaniesController) GetCompany(c *gin.Context) {
	companyID, ok := pathID(c)
	if !ok {
		return
	}

	listing, err := cc.Ledger.CompanyByID(companyID)
	if err != nil {
		RespondLedgerErr(c, cc.Logger, err)
		return
	}

	RespondOK(c, listing)
}

func (cc CompaniesController) GetStakeholders(c *gin.Context) {
	companyID, ok := pathID(c)
	if !ok {
		return
	}

	stakeholders, err := cc.Ledger.Stakeholders(companyID)
	if err != nil {
		RespondLedgerErr(c, cc.Logger, err)
		return
	}

	RespondOK(c, stakeholders)
}

func (cc CompaniesController) GetPriceHistory(c *gin.Context) {
	companyID, ok := pathID(c)
	if !ok {
		return
	}

	points, err := cc.Ledger.PriceHistory(companyID, 200)
	if err != nil {
		RespondLedgerErr(c, cc.Logger, err)
		return
	}

	RespondOK(c, points)
}

func (cc CompaniesController) CreateCompany(c *gin.Context) {
	type createCompanyParams struct {
		Name           string `json:"name" binding:"required"`
		Ticker         string `json:"ticker" binding:"required"`
		Description    string `json:"description"`
		LogoColor      string `json:"logo_color"`
		Capital        int64  `json:"capital" binding:"required"`
		RetainedShares int64  `json:"retained_shares"`
	}

	var payload createCompanyParams
	if err := c.BindJSON(&payload); err != nil {
		RespondBadRequestErr(c, []error{ErrInvalidRequest})
		return
	}

	result, err := cc.Ledger.CreateCompany(
		CurrentUserID(c),
		payload.Name, payload.Ticker, payload.Description, payload.LogoColor,
		payload.Capital, payload.RetainedShares,
	)
	if err != nil {
		RespondLedgerErr(c, cc.Logger, err)
		return
	}

	cc.Cache.Delete(companiesCacheKey)
	RespondOK(c, result)
}

// pathID parses the :id path parameter, responding with a 400 itself
// when the parameter is malformed.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		RespondBadRequestErr(c, []error{ErrInvalidRequest})
		return 0, false
	}

	return uint(id), true
}
