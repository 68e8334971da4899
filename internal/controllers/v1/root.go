package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kasbuku/backend/internal/httputil"
	"github.com/kasbuku/backend/internal/ledger"
	"github.com/kasbuku/backend/internal/models"
)

// resolver is the category resolver used by the handlers in this
// package. It is set once via RegisterRoutes.
var resolver *ledger.Resolver

// RegisterRoutes registers all API v1 routes with the RouterGroup that
// is passed.
func RegisterRoutes(r *gin.RouterGroup, res *ledger.Resolver) {
	resolver = res

	r.OPTIONS("", OptionsRoot)
	r.GET("", GetRoot)

	r.OPTIONS("/reconcile", OptionsReconcile)
	r.POST("/reconcile", Reconcile)

	r.OPTIONS("/categories/unresolved", OptionsUnresolvedCategories)
	r.GET("/categories/unresolved", GetUnresolvedCategories)

	RegisterAccountRoutes(r.Group("/accounts"))
	RegisterFinanceAccountRoutes(r.Group("/finance-accounts"))
	RegisterJournalEntryRoutes(r.Group("/journal-entries"))
	RegisterCategoryMappingRoutes(r.Group("/category-mappings"))
	RegisterTransactionRoutes(r.Group("/transactions"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Accounts             string `json:"accounts" example:"https://example.com/api/v1/accounts"`                          // URL of the account collection
	FinanceAccounts      string `json:"financeAccounts" example:"https://example.com/api/v1/finance-accounts"`           // URL of the finance account collection
	JournalEntries       string `json:"journalEntries" example:"https://example.com/api/v1/journal-entries"`             // URL of the journal entry collection
	CategoryMappings     string `json:"categoryMappings" example:"https://example.com/api/v1/category-mappings"`         // URL of the category mapping collection
	Transactions         string `json:"transactions" example:"https://example.com/api/v1/transactions"`                  // URL of the transaction collection
	UnresolvedCategories string `json:"unresolvedCategories" example:"https://example.com/api/v1/categories/unresolved"` // URL of the unresolved category view
	Reconcile            string `json:"reconcile" example:"https://example.com/api/v1/reconcile"`                        // URL of the balance reconciliation endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Accounts:             "/v1/accounts",
			FinanceAccounts:      "/v1/finance-accounts",
			JournalEntries:       "/v1/journal-entries",
			CategoryMappings:     "/v1/category-mappings",
			Transactions:         "/v1/transactions",
			UnresolvedCategories: "/v1/categories/unresolved",
			Reconcile:            "/v1/reconcile",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1/reconcile [options]
func OptionsReconcile(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/categories/unresolved [options]
func OptionsUnresolvedCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Reconcile balances
// @Description	Re-derives the balance of every account from the journal. Use this when balances may have gone stale because a recalculation failed.
// @Tags			General
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/reconcile [post]
func Reconcile(c *gin.Context) {
	err := ledger.RecalculateAll(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
