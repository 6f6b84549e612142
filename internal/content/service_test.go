package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/gateway"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

type mockContentGateway struct {
	listPostsFunc  func(ctx context.Context, category string, page, size int) (*gateway.Result, error)
	getPostFunc    func(ctx context.Context, slug string) (*gateway.Result, error)
	getRelatedFunc func(ctx context.Context, slug string) (*gateway.Result, error)
	categoriesFunc func(ctx context.Context) (*gateway.Result, error)
	commentsFunc   func(ctx context.Context, postID string) (*gateway.Result, error)
	addCommentFunc func(ctx context.Context, postID string, comment *model.BlogComment, token string) (*gateway.Result, error)
}

func (m *mockContentGateway) ListPosts(ctx context.Context, category string, page, size int) (*gateway.Result, error) {
	return m.listPostsFunc(ctx, category, page, size)
}

func (m *mockContentGateway) GetPost(ctx context.Context, slug string) (*gateway.Result, error) {
	return m.getPostFunc(ctx, slug)
}

func (m *mockContentGateway) GetRelatedPosts(ctx context.Context, slug string) (*gateway.Result, error) {
	return m.getRelatedFunc(ctx, slug)
}

func (m *mockContentGateway) ListCategories(ctx context.Context) (*gateway.Result, error) {
	return m.categoriesFunc(ctx)
}

func (m *mockContentGateway) ListComments(ctx context.Context, postID string) (*gateway.Result, error) {
	return m.commentsFunc(ctx, postID)
}

func (m *mockContentGateway) AddComment(ctx context.Context, postID string, comment *model.BlogComment, token string) (*gateway.Result, error) {
	return m.addCommentFunc(ctx, postID, comment, token)
}

func (m *mockContentGateway) DecodePost(res *gateway.Result) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := res.Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (m *mockContentGateway) DecodePosts(res *gateway.Result) ([]*model.BlogPost, *gateway.PageMeta, error) {
	var posts []*model.BlogPost
	meta, err := res.DecodePage(&posts)
	if err != nil {
		return nil, nil, err
	}
	return posts, meta, nil
}

func (m *mockContentGateway) DecodeCategories(res *gateway.Result) ([]*model.BlogCategory, error) {
	var categories []*model.BlogCategory
	if err := res.Decode(&categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (m *mockContentGateway) DecodeComments(res *gateway.Result) ([]*model.BlogComment, error) {
	var comments []*model.BlogComment
	if err := res.Decode(&comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func jsonResult(t *testing.T, payload any) *gateway.Result {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	return &gateway.Result{Data: data, Status: http.StatusOK}
}

func newContentService(gw ContentGateway) *Service {
	return NewService(gw, logger.New(logger.Config{Level: "error", Format: "text"}))
}

func TestGetPostFansOutToRelated(t *testing.T) {
	gw := &mockContentGateway{
		getPostFunc: func(ctx context.Context, slug string) (*gateway.Result, error) {
			return jsonResult(t, model.BlogPost{ID: "post-1", Slug: slug, Title: "Exploring Lagos by car"}), nil
		},
		getRelatedFunc: func(ctx context.Context, slug string) (*gateway.Result, error) {
			return jsonResult(t, []*model.BlogPost{{ID: "post-2"}, {ID: "post-3"}}), nil
		},
	}
	svc := newContentService(gw)

	detail, err := svc.GetPost(context.Background(), "exploring-lagos")
	if err != nil {
		t.Fatalf("GetPost() error = %v", err)
	}
	if detail.Post.ID != "post-1" {
		t.Errorf("post id = %q, want post-1", detail.Post.ID)
	}
	if len(detail.Related) != 2 {
		t.Errorf("related = %d, want 2", len(detail.Related))
	}
}

func TestGetPostSurvivesRelatedFailure(t *testing.T) {
	gw := &mockContentGateway{
		getPostFunc: func(ctx context.Context, slug string) (*gateway.Result, error) {
			return jsonResult(t, model.BlogPost{ID: "post-1"}), nil
		},
		getRelatedFunc: func(ctx context.Context, slug string) (*gateway.Result, error) {
			return nil, errors.New("related backend down")
		},
	}
	svc := newContentService(gw)

	detail, err := svc.GetPost(context.Background(), "exploring-lagos")
	if err != nil {
		t.Fatalf("GetPost() error = %v", err)
	}
	if detail.Related == nil || len(detail.Related) != 0 {
		t.Errorf("related = %v, want an empty list", detail.Related)
	}
}

func TestGetPostNotFound(t *testing.T) {
	gw := &mockContentGateway{
		getPostFunc: func(ctx context.Context, slug string) (*gateway.Result, error) {
			return &gateway.Result{Err: true, Message: gateway.MsgUnexpected, Status: http.StatusNotFound}, nil
		},
		getRelatedFunc: func(ctx context.Context, slug string) (*gateway.Result, error) {
			return jsonResult(t, []*model.BlogPost{}), nil
		},
	}
	svc := newContentService(gw)

	_, err := svc.GetPost(context.Background(), "missing")
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("GetPost() error = %v, want %s", err, apperrors.CodeNotFound)
	}
}

func TestAddCommentValidates(t *testing.T) {
	svc := newContentService(&mockContentGateway{})

	err := svc.AddComment(context.Background(), "post-1", &model.BlogComment{Author: "  ", Body: "Nice"}, "token")
	if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("AddComment() error = %v, want %s", err, apperrors.CodeInvalidInput)
	}
}

func TestAddCommentNormalizes(t *testing.T) {
	gw := &mockContentGateway{
		addCommentFunc: func(ctx context.Context, postID string, comment *model.BlogComment, token string) (*gateway.Result, error) {
			if comment.Body != "Great tips, thanks!" {
				t.Errorf("comment body = %q, want trimmed form", comment.Body)
			}
			return jsonResult(t, comment), nil
		},
	}
	svc := newContentService(gw)

	err := svc.AddComment(context.Background(), "post-1", &model.BlogComment{
		Author: " Adaeze ",
		Body:   "  Great tips,   thanks! ",
	}, "token")
	if err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}
}
