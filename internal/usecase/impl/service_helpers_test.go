package impl

import (
	"context"
	"io"
	"log/slog"
	"maps"

	"infostore/internal/domain/entity"
	"infostore/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// In-memory repository fakes backing the service tests. They honor the same
// contracts as the GORM implementations: sentinel errors, conflict detection
// through the stored state and rollback on transaction failure.

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
	order    []uuid.UUID

	createErr error
	updateErr error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	clone := *account

	return &clone, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	for _, account := range r.accounts {
		if account.Email == email {
			clone := *account

			return &clone, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.accounts[id]

	return ok, nil
}

func (r *fakeAccountRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, account := range r.accounts {
		if account.Username == username {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeAccountRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, account := range r.accounts {
		if account.Email == email {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	if r.createErr != nil {
		return r.createErr
	}

	clone := *account
	r.accounts[account.ID] = &clone
	r.order = append(r.order, account.ID)

	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *entity.Account) error {
	if r.updateErr != nil {
		return r.updateErr
	}

	existing, ok := r.accounts[account.ID]
	if !ok {
		return repository.ErrAccountNotFound
	}

	existing.Username = account.Username
	existing.Email = account.Email

	return nil
}

func (r *fakeAccountRepo) DeleteByIDOrUsername(_ context.Context, keys []string) ([]uuid.UUID, error) {
	var deleted []uuid.UUID
	for id, account := range r.accounts {
		for _, key := range keys {
			if key == id.String() || key == account.Username {
				deleted = append(deleted, id)

				break
			}
		}
	}

	for _, id := range deleted {
		delete(r.accounts, id)
	}

	return deleted, nil
}

func (r *fakeAccountRepo) List(_ context.Context) ([]*entity.Account, error) {
	accounts := make([]*entity.Account, 0, len(r.accounts))
	for _, id := range r.order {
		if account, ok := r.accounts[id]; ok {
			clone := *account
			accounts = append(accounts, &clone)
		}
	}

	return accounts, nil
}

type fakePostRepo struct {
	posts map[uuid.UUID]*entity.Post
	order []uuid.UUID

	createErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uuid.UUID]*entity.Post)}
}

func (r *fakePostRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}

	clone := *post

	return &clone, nil
}

func (r *fakePostRepo) Create(_ context.Context, post *entity.Post) error {
	if r.createErr != nil {
		return r.createErr
	}

	clone := *post
	r.posts[post.ID] = &clone
	r.order = append(r.order, post.ID)

	return nil
}

func (r *fakePostRepo) Update(_ context.Context, post *entity.Post) error {
	existing, ok := r.posts[post.ID]
	if !ok {
		return repository.ErrPostNotFound
	}

	existing.Title = post.Title
	existing.Description = post.Description

	return nil
}

func (r *fakePostRepo) DeleteByIDs(_ context.Context, ids []uuid.UUID) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if _, ok := r.posts[id]; ok {
			delete(r.posts, id)
			deleted++
		}
	}

	return deleted, nil
}

func (r *fakePostRepo) List(_ context.Context) ([]*entity.Post, error) {
	posts := make([]*entity.Post, 0, len(r.posts))
	for _, id := range r.order {
		if post, ok := r.posts[id]; ok {
			clone := *post
			posts = append(posts, &clone)
		}
	}

	return posts, nil
}

// fakeTxManager executes the callback against the shared fakes. On failure it
// restores the snapshot taken before the callback, mimicking a rollback.
type fakeTxManager struct {
	accountRepo *fakeAccountRepo
	postRepo    *fakePostRepo

	beginErr error
}

type fakeFactory struct {
	accountRepo *fakeAccountRepo
	postRepo    *fakePostRepo
}

func (f *fakeFactory) AccountRepo() repository.AccountRepository { return f.accountRepo }
func (f *fakeFactory) PostRepo() repository.PostRepository       { return f.postRepo }

func newFakeTxManager(accountRepo *fakeAccountRepo, postRepo *fakePostRepo) *fakeTxManager {
	return &fakeTxManager{accountRepo: accountRepo, postRepo: postRepo}
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if tm.beginErr != nil {
		return errors.Wrap(tm.beginErr, "failed to begin transaction")
	}

	accountSnapshot := snapshotAccounts(tm.accountRepo)
	postSnapshot := snapshotPosts(tm.postRepo)
	accountOrder := append([]uuid.UUID(nil), tm.accountRepo.order...)
	postOrder := append([]uuid.UUID(nil), tm.postRepo.order...)

	if err := fn(&fakeFactory{accountRepo: tm.accountRepo, postRepo: tm.postRepo}); err != nil {
		tm.accountRepo.accounts = accountSnapshot
		tm.accountRepo.order = accountOrder
		tm.postRepo.posts = postSnapshot
		tm.postRepo.order = postOrder

		return err
	}

	return nil
}

func snapshotAccounts(repo *fakeAccountRepo) map[uuid.UUID]*entity.Account {
	snapshot := make(map[uuid.UUID]*entity.Account, len(repo.accounts))
	maps.Copy(snapshot, repo.accounts)

	return snapshot
}

func snapshotPosts(repo *fakePostRepo) map[uuid.UUID]*entity.Post {
	snapshot := make(map[uuid.UUID]*entity.Post, len(repo.posts))
	maps.Copy(snapshot, repo.posts)

	return snapshot
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
