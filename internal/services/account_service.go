package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"wilayah/internal/models/db_models"
	"wilayah/internal/models/request_models"
	"wilayah/internal/models/response_models"
	"wilayah/internal/repositories"
	mem "wilayah/pkg/memcache"
	"wilayah/pkg/utils"
)

const defaultRole = "user"

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.AccountLoginResponse, error)
	// GetAccount returns ErrUnauthorized when the account behind a token no longer exists.
	GetAccount(ctx context.Context, accountID uint) (response_models.AccountResponse, error)
	// Logout revokes the token with the given id until it would have expired.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenManager
	revoked     mem.RevokedTokenStore
	log         *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenManager,
	revoked mem.RevokedTokenStore,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		revoked:     revoked,
		log:         log.Named("account"),
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (response_models.AccountResponse, error) {
	request.DisplayName = strings.TrimSpace(request.DisplayName)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	if err := utils.ValidateStruct(request); err != nil {
		return response_models.AccountResponse{}, err
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return response_models.AccountResponse{}, storageError(a.log, "find account", err)
	}
	if existingAccount != nil {
		return response_models.AccountResponse{}, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		a.log.Error("hash password", zap.Error(err))
		return response_models.AccountResponse{}, err
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         defaultRole,
	}
	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return response_models.AccountResponse{}, storageError(a.log, "insert account", err)
	}

	a.log.Info("account created", zap.Uint("id", newAccount.ID))
	return toAccountResponse(newAccount), nil
}

func (a *AccountService) GetAccount(ctx context.Context, accountID uint) (response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return response_models.AccountResponse{}, storageError(a.log, "find account", err)
	}
	if account == nil {
		return response_models.AccountResponse{}, utils.ErrUnauthorized
	}
	return toAccountResponse(account), nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.AccountLoginResponse, error) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	if err := utils.ValidateStruct(request); err != nil {
		return response_models.AccountLoginResponse{}, err
	}

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return response_models.AccountLoginResponse{}, storageError(a.log, "find account", err)
	}
	if account == nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokens.CreateToken(account.ID, account.Role)
	if err != nil {
		a.log.Error("create token", zap.Error(err))
		return response_models.AccountLoginResponse{}, err
	}

	return response_models.AccountLoginResponse{
		Token:     token,
		ExpiresAt: utils.FormatRFC3339WIB(expiresAt),
	}, nil
}

func (a *AccountService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return utils.ErrUnauthorized
	}
	if err := a.revoked.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		a.log.Error("revoke token", zap.Error(err))
		return err
	}
	return nil
}
