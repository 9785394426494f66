// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "infostore/internal/delivery/context"
	"infostore/internal/domain/entity"
	domainerrors "infostore/internal/domain/errors"
	"infostore/internal/domain/repository"
	"infostore/internal/domain/service"
	"infostore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	credentials service.CredentialService
	logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	txManager repository.TransactionManager,
	accountRepo repository.AccountRepository,
	credentials service.CredentialService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager:   txManager,
		accountRepo: accountRepo,
		credentials: credentials,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a single account inside one transaction, so the
// existence pre-checks and the insert see the same snapshot. The unique
// indexes on username and email remain the authoritative guard under
// concurrent registrations.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterAccountInput) (*usecase.AccountSummary, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	var created *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account, err := srv.registerOne(ctx, repoFactory.AccountRepo(), input)
		if err != nil {
			return err
		}
		created = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", created.ID))

	return toAccountSummary(created), nil
}

// RegisterBatch processes entries sequentially inside a single transaction.
// An entry whose username or email is taken at the time it is processed is
// skipped, which also covers duplicates introduced earlier in the same batch.
// Only a storage failure aborts the batch; then none of the accepted entries survive.
func (srv *accountService) RegisterBatch(ctx context.Context, inputs []*usecase.RegisterAccountInput) (*usecase.RegisterBatchOutput, error) {
	srv.log(ctx).Info("Starting batch registration", slog.Int("entries", len(inputs)))

	output := &usecase.RegisterBatchOutput{Accounts: make([]*usecase.AccountSummary, 0, len(inputs))}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		for _, input := range inputs {
			account, err := srv.registerOne(ctx, accountRepo, input)
			if err != nil {
				if errors.Is(err, domainerrors.ErrUsernameExists) || errors.Is(err, domainerrors.ErrEmailExists) {
					srv.log(ctx).Warn("Skipping batch entry over conflict",
						slog.String("username", input.Username),
						slog.String("email", input.Email),
						slog.Any("error", err))
					output.Skipped++

					continue
				}

				return err
			}

			output.Registered++
			output.Accounts = append(output.Accounts, toAccountSummary(account))
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Batch registration aborted", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute batch registration transaction")
	}

	srv.log(ctx).Debug("Batch registration completed",
		slog.Int("registered", output.Registered),
		slog.Int("skipped", output.Skipped))

	return output, nil
}

// registerOne runs the username/email pre-checks, derives the credentials and
// persists the account through the given (possibly transaction-bound) repository.
func (srv *accountService) registerOne(ctx context.Context, accountRepo repository.AccountRepository, input *usecase.RegisterAccountInput) (*entity.Account, error) {
	taken, err := accountRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check username existence")
	}
	if taken {
		return nil, domainerrors.ErrUsernameExists.WrapMessage("username already registered")
	}

	taken, err = accountRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email existence")
	}
	if taken {
		return nil, domainerrors.ErrEmailExists.WrapMessage("email already registered")
	}

	salt, err := srv.credentials.GenerateSalt()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate salt during registration")
	}

	account := &entity.Account{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: srv.credentials.Hash(input.Password, salt),
		PasswordSalt: salt,
	}

	if err := accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account during registration")
	}

	return account, nil
}

// Update overwrites username and email in place. There is no service-level
// uniqueness re-check against other accounts; a conflicting value surfaces as
// a conflict error through the storage layer's unique indexes.
func (srv *accountService) Update(ctx context.Context, input *usecase.UpdateAccountInput) (*usecase.AccountSummary, error) {
	accountID, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("account id is not a valid UUID")
	}

	var updated *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("no account with the given id")
			}

			return errors.Wrap(err, "failed to find account for update")
		}

		account.Username = input.Username
		account.Email = input.Email

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}
		updated = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Account update failed", slog.String("accountID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account update transaction")
	}

	srv.log(ctx).Debug("Account updated", slog.Any("accountID", updated.ID))

	return toAccountSummary(updated), nil
}

// Delete removes every account matching a key by ID or by username.
// Deleting an account cascades to its posts at the storage layer.
func (srv *accountService) Delete(ctx context.Context, keys []string) (*usecase.DeleteAccountsOutput, error) {
	if len(keys) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("ids cannot be empty")
	}

	var deletedIDs []uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ids, err := repoFactory.AccountRepo().DeleteByIDOrUsername(ctx, keys)
		if err != nil {
			return errors.Wrap(err, "failed to delete accounts")
		}
		if len(ids) == 0 {
			return domainerrors.ErrAccountNotFound.WrapMessage("no accounts found with the provided ids")
		}
		deletedIDs = ids

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Account deletion failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account deletion transaction")
	}

	output := &usecase.DeleteAccountsOutput{
		DeletedCount: len(deletedIDs),
		DeletedIDs:   make([]string, 0, len(deletedIDs)),
	}
	for _, id := range deletedIDs {
		output.DeletedIDs = append(output.DeletedIDs, id.String())
	}

	srv.log(ctx).Info("Accounts deleted", slog.Int("count", output.DeletedCount))

	return output, nil
}

// Login is a pure credential check: no token is issued and no session state
// is created. Both failure modes are unauthorized responses.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrAuthAccountNotFound))

			return nil, domainerrors.ErrAuthAccountNotFound.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.credentials.Check(input.Password, account.PasswordSalt, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{Account: toAccountSummary(account)}, nil
}

// List returns all accounts as credential-free summaries.
func (srv *accountService) List(ctx context.Context) ([]*usecase.AccountSummary, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	summaries := make([]*usecase.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, toAccountSummary(account))
	}

	return summaries, nil
}

func toAccountSummary(account *entity.Account) *usecase.AccountSummary {
	return &usecase.AccountSummary{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
	}
}
