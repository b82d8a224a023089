package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wilayah/internal/models/request_models"
	"wilayah/internal/services"
	"wilayah/pkg/middleware"
	"wilayah/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new operator account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if !bind(c, &req) {
		return
	}

	account, err := a.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, account, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate and return a bearer token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if !bind(c, &req) {
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, token, "Login successful")
}

// Me godoc
// @Summary Current account
// @Description Profile of the account the bearer token belongs to
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (a *AccountController) Me(c *gin.Context) {
	accountID := c.GetUint(middleware.ContextAccountID)
	if accountID == 0 {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	account, err := a.accountService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account fetched successfully")
}

// Logout godoc
// @Summary Logout
// @Description Revoke the bearer token used for this request
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	value, _ := c.Get(middleware.ContextClaims)
	claims, ok := value.(*utils.Claims)
	if !ok || claims.ExpiresAt == nil {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := a.accountService.Logout(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Logged out")
}
