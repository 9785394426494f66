package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "infostore/internal/delivery/context"
	"infostore/internal/domain/entity"
	domainerrors "infostore/internal/domain/errors"
	"infostore/internal/domain/repository"
	"infostore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(
	txManager repository.TransactionManager,
	postRepo repository.PostRepository,
	logger *slog.Logger,
) usecase.PostUsecase {
	return &postService{
		txManager: txManager,
		postRepo:  postRepo,
		logger:    logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new post. The author-existence check and the insert share
// one transaction so the referenced account cannot vanish in between; the
// foreign key on author_id is the authoritative guard.
func (srv *postService) Create(ctx context.Context, input *usecase.CreatePostInput) (*usecase.PostView, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title is required")
	}

	var created *entity.Post
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		exists, err := repoFactory.AccountRepo().ExistsByID(ctx, input.AuthorID)
		if err != nil {
			return errors.Wrap(err, "failed to check post author existence")
		}
		if !exists {
			return domainerrors.ErrAccountNotFound.WrapMessage("post author does not exist")
		}

		post := &entity.Post{
			ID:          uuid.New(),
			Title:       input.Title,
			Description: input.Description,
			Tags:        input.Tags,
			Image:       input.Image,
			AuthorID:    input.AuthorID,
			CreatedDate: time.Now(),
		}

		if err := repoFactory.PostRepo().Create(ctx, post); err != nil {
			return errors.Wrap(err, "failed to create post")
		}
		created = post

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Post creation failed", slog.Any("authorID", input.AuthorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute post creation transaction")
	}

	srv.log(ctx).Debug("Post created", slog.Any("postID", created.ID))

	return toPostView(created), nil
}

// Update overwrites title and description; all other fields are immutable
// after creation.
func (srv *postService) Update(ctx context.Context, input *usecase.UpdatePostInput) (*usecase.PostView, error) {
	var updated *entity.Post
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		post, err := postRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound.WrapMessage("no post with the given id")
			}

			return errors.Wrap(err, "failed to find post for update")
		}

		post.Title = input.Title
		post.Description = input.Description

		if err := postRepo.Update(ctx, post); err != nil {
			return errors.Wrap(err, "failed to update post")
		}
		updated = post

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Post update failed", slog.Any("postID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute post update transaction")
	}

	srv.log(ctx).Debug("Post updated", slog.Any("postID", updated.ID))

	return toPostView(updated), nil
}

// Delete removes every post whose ID is in the set. Re-invoking with the same
// ids finds no matches and reports not found.
func (srv *postService) Delete(ctx context.Context, ids []uuid.UUID) (*usecase.DeletePostsOutput, error) {
	if len(ids) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("post ids cannot be empty")
	}

	var deleted int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.PostRepo().DeleteByIDs(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to delete posts")
		}
		if count == 0 {
			return domainerrors.ErrPostNotFound.WrapMessage("no posts found with the provided ids")
		}
		deleted = count

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Post deletion failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute post deletion transaction")
	}

	srv.log(ctx).Info("Posts deleted", slog.Int64("count", deleted))

	return &usecase.DeletePostsOutput{DeletedCount: deleted}, nil
}

// List returns all posts.
func (srv *postService) List(ctx context.Context) ([]*usecase.PostView, error) {
	posts, err := srv.postRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	views := make([]*usecase.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, toPostView(post))
	}

	return views, nil
}

func toPostView(post *entity.Post) *usecase.PostView {
	return &usecase.PostView{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		Tags:        post.Tags,
		Image:       post.Image,
		AuthorID:    post.AuthorID,
		CreatedDate: post.CreatedDate,
	}
}
