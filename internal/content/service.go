package content

import (
	"context"
	"net/http"
	"sync"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/gateway"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
	"github.com/autogirlng/muvment-customer-sub002/pkg/sanitizer"
)

// ContentGateway is the slice of the remote API behind the blog.
// *gateway.ContentClient satisfies it.
type ContentGateway interface {
	ListPosts(ctx context.Context, category string, page, size int) (*gateway.Result, error)
	GetPost(ctx context.Context, slug string) (*gateway.Result, error)
	GetRelatedPosts(ctx context.Context, slug string) (*gateway.Result, error)
	ListCategories(ctx context.Context) (*gateway.Result, error)
	ListComments(ctx context.Context, postID string) (*gateway.Result, error)
	AddComment(ctx context.Context, postID string, comment *model.BlogComment, token string) (*gateway.Result, error)
	DecodePost(res *gateway.Result) (*model.BlogPost, error)
	DecodePosts(res *gateway.Result) ([]*model.BlogPost, *gateway.PageMeta, error)
	DecodeCategories(res *gateway.Result) ([]*model.BlogCategory, error)
	DecodeComments(res *gateway.Result) ([]*model.BlogComment, error)
}

// PostDetail is a post with the related posts rendered beneath it.
type PostDetail struct {
	Post    *model.BlogPost   `json:"post"`
	Related []*model.BlogPost `json:"related"`
}

type Service struct {
	gateway ContentGateway
	log     *logger.Logger
}

func NewService(gw ContentGateway, log *logger.Logger) *Service {
	return &Service{gateway: gw, log: log}
}

func (s *Service) ListPosts(ctx context.Context, category string, page, size int) ([]*model.BlogPost, *gateway.PageMeta, error) {
	res, err := s.gateway.ListPosts(ctx, category, page, size)
	if err != nil {
		return nil, nil, err
	}
	if res.Err {
		return nil, nil, apperrors.Upstream(res.Message, nil)
	}
	return s.gateway.DecodePosts(res)
}

// GetPost fans out to the post and its related list; a failed related
// fetch renders the post with an empty rail.
func (s *Service) GetPost(ctx context.Context, slug string) (*PostDetail, error) {
	var (
		wg      sync.WaitGroup
		post    *model.BlogPost
		postErr error
		related []*model.BlogPost
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		res, err := s.gateway.GetPost(ctx, slug)
		if err != nil {
			postErr = err
			return
		}
		if res.Err {
			if res.Status == http.StatusNotFound {
				postErr = apperrors.NotFound("blog post")
			} else {
				postErr = apperrors.Upstream(res.Message, nil)
			}
			return
		}
		post, postErr = s.gateway.DecodePost(res)
	}()
	go func() {
		defer wg.Done()
		res, err := s.gateway.GetRelatedPosts(ctx, slug)
		if err != nil || res.Err {
			s.log.Warn("Related posts fetch failed", "slug", slug, "error", err)
			return
		}
		decoded, _, decodeErr := s.gateway.DecodePosts(res)
		if decodeErr != nil {
			s.log.Warn("Related posts decode failed", "slug", slug, "error", decodeErr)
			return
		}
		related = decoded
	}()
	wg.Wait()

	if postErr != nil {
		return nil, postErr
	}
	if related == nil {
		related = []*model.BlogPost{}
	}
	return &PostDetail{Post: post, Related: related}, nil
}

func (s *Service) Categories(ctx context.Context) ([]*model.BlogCategory, error) {
	res, err := s.gateway.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if res.Err {
		return nil, apperrors.Upstream(res.Message, nil)
	}
	return s.gateway.DecodeCategories(res)
}

func (s *Service) Comments(ctx context.Context, postID string) ([]*model.BlogComment, error) {
	res, err := s.gateway.ListComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	if res.Err {
		return nil, apperrors.Upstream(res.Message, nil)
	}
	return s.gateway.DecodeComments(res)
}

func (s *Service) AddComment(ctx context.Context, postID string, comment *model.BlogComment, token string) error {
	comment.Author = sanitizer.NormalizeName(comment.Author)
	comment.Body = sanitizer.TrimAndNormalize(comment.Body)
	if comment.Author == "" || comment.Body == "" {
		return apperrors.InvalidInput("A name and a comment are required")
	}

	res, err := s.gateway.AddComment(ctx, postID, comment, token)
	if err != nil {
		return err
	}
	if res.Err {
		return apperrors.Upstream(res.Message, nil)
	}
	return nil
}
