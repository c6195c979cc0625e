package api

import (
	"errors"
	"fmt"
	"net/http"

	types "finflow/api-types"
	finflow_errors "finflow/internal"
	"finflow/internal/resolver"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func StartApi(port int, r resolver.Resolver) error {
	router := gin.Default()

	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to finflow"})
	})

	router.POST("/accounts", func(c *gin.Context) {
		var req types.CreateAccountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}

		resp, err := r.CreateAccount(req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusCreated, resp)
	})

	router.GET("/users/:userId/portfolio", func(c *gin.Context) {
		userID, ok := pathUuid(c, "userId")
		if !ok {
			return
		}

		resp, err := r.GetPortfolio(userID)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.POST("/accounts/:accountId/deposit", func(c *gin.Context) {
		accountID, ok := pathUuid(c, "accountId")
		if !ok {
			return
		}
		var req types.CashRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}

		resp, err := r.Deposit(accountID, req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.POST("/accounts/:accountId/withdraw", func(c *gin.Context) {
		accountID, ok := pathUuid(c, "accountId")
		if !ok {
			return
		}
		var req types.CashRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}

		resp, err := r.Withdraw(accountID, req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.POST("/accounts/:accountId/buy", func(c *gin.Context) {
		accountID, ok := pathUuid(c, "accountId")
		if !ok {
			return
		}
		var req types.TradeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}

		resp, err := r.Buy(accountID, req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.POST("/accounts/:accountId/sell", func(c *gin.Context) {
		accountID, ok := pathUuid(c, "accountId")
		if !ok {
			return
		}
		var req types.TradeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}

		resp, err := r.Sell(accountID, req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.POST("/accounts/:accountId/recalculate", func(c *gin.Context) {
		accountID, ok := pathUuid(c, "accountId")
		if !ok {
			return
		}

		resp, err := r.Recalculate(accountID)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.DELETE("/accounts/:accountId", func(c *gin.Context) {
		accountID, ok := pathUuid(c, "accountId")
		if !ok {
			return
		}

		if err := r.DeleteAccount(accountID); err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, map[string]string{"message": "account deleted"})
	})

	router.POST("/orders", func(c *gin.Context) {
		var req types.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}

		resp, err := r.CreateOrder(req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusCreated, resp)
	})

	router.POST("/orders/:orderId/fill", func(c *gin.Context) {
		orderID, ok := pathUuid(c, "orderId")
		if !ok {
			return
		}
		var req types.FillOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}

		resp, err := r.FillOrder(orderID, req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.POST("/orders/:orderId/cancel", func(c *gin.Context) {
		orderID, ok := pathUuid(c, "orderId")
		if !ok {
			return
		}

		resp, err := r.CancelOrder(orderID)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.POST("/orders/:orderId/reject", func(c *gin.Context) {
		orderID, ok := pathUuid(c, "orderId")
		if !ok {
			return
		}

		resp, err := r.RejectOrder(orderID)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.GET("/users/:userId/orders", func(c *gin.Context) {
		userID, ok := pathUuid(c, "userId")
		if !ok {
			return
		}

		resp, err := r.ListActiveOrders(userID)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.POST("/externalAccounts", func(c *gin.Context) {
		var req types.ConnectExternalAccountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}

		resp, err := r.ConnectExternalAccount(req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusCreated, resp)
	})

	router.GET("/users/:userId/externalAccounts", func(c *gin.Context) {
		userID, ok := pathUuid(c, "userId")
		if !ok {
			return
		}

		resp, err := r.ListExternalAccounts(userID)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.POST("/externalAccounts/:externalAccountId/refreshToken", func(c *gin.Context) {
		externalAccountID, ok := pathUuid(c, "externalAccountId")
		if !ok {
			return
		}
		var req types.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}

		resp, err := r.RefreshExternalAccountToken(externalAccountID, req)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.POST("/externalAccounts/:externalAccountId/disconnect", func(c *gin.Context) {
		externalAccountID, ok := pathUuid(c, "externalAccountId")
		if !ok {
			return
		}

		resp, err := r.DisconnectExternalAccount(externalAccountID)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	return router.Run(fmt.Sprintf(":%d", port))
}

func pathUuid(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid %s: %w", param, err), c, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusFromError(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// statusFromError maps the typed domain errors onto HTTP status codes.
// Anything unrecognized is a 500.
func statusFromError(err error) int {
	var notFound finflow_errors.ErrNotFound
	var conflict finflow_errors.ErrConflict
	var invalidArgument finflow_errors.ErrInvalidArgument
	var insufficientFunds finflow_errors.ErrInsufficientFunds
	var insufficientPosition finflow_errors.ErrInsufficientPosition
	var invalidTransition finflow_errors.ErrInvalidStateTransition

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &invalidArgument):
		return http.StatusBadRequest
	case errors.As(err, &insufficientFunds),
		errors.As(err, &insufficientPosition),
		errors.As(err, &invalidTransition):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
