package controllers

import (
	"github.com/gin-gonic/gin"
)

type Router struct {
	Secret []byte

	HealthController    *HealthController
	AuthController      *AuthController
	UsersController     *UsersController
	CompaniesController *CompaniesController
	TradingController   *TradingController
	IssuanceController  *IssuanceController
}

func (r Router) RegisterRoutes(router gin.IRouter) {
	//
	// Anonymous requests
	//
	router.GET("/health", r.HealthController.Status)
	router.POST("/auth/register", r.AuthController.Register)
	router.POST("/auth/login", r.AuthController.Login)

	router.GET("/companies", r.CompaniesController.GetCompanies)
	router.GET("/companies/:id", r.CompaniesController.GetCompany)
	router.GET("/companies/:id/stakeholders", r.CompaniesController.GetStakeholders)
	router.GET("/companies/:id/prices", r.CompaniesController.GetPriceHistory)

	//
	// Authorized Requests
	//
	authorized := router.Group("/", RequireAuth(r.Secret))
	authorized.GET("/users/me", r.UsersController.GetCurrentUser)
	authorized.GET("/users/me/holdings", r.UsersController.GetHoldings)
	authorized.GET("/users/me/transactions", r.UsersController.GetTransactions)

	authorized.POST("/companies", r.CompaniesController.CreateCompany)
	authorized.POST("/companies/:id/buy", r.TradingController.Buy)
	authorized.POST("/companies/:id/sell", r.TradingController.Sell)
	authorized.POST("/companies/:id/invest", r.IssuanceController.Invest)
}
