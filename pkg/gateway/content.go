package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

type ContentClient struct {
	gw *Client
}

func NewContentClient(gw *Client) *ContentClient {
	return &ContentClient{gw: gw}
}

func (c *ContentClient) ListPosts(ctx context.Context, category string, page, size int) (*Result, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("size", fmt.Sprintf("%d", size))
	return c.gw.Get(ctx, "/api/v1/blog/posts?"+q.Encode(), "")
}

func (c *ContentClient) GetPost(ctx context.Context, slug string) (*Result, error) {
	return c.gw.Get(ctx, "/api/v1/blog/posts/"+url.PathEscape(slug), "")
}

func (c *ContentClient) GetRelatedPosts(ctx context.Context, slug string) (*Result, error) {
	return c.gw.Get(ctx, "/api/v1/blog/posts/"+url.PathEscape(slug)+"/related", "")
}

func (c *ContentClient) ListCategories(ctx context.Context) (*Result, error) {
	return c.gw.Get(ctx, "/api/v1/blog/categories", "")
}

func (c *ContentClient) ListComments(ctx context.Context, postID string) (*Result, error) {
	return c.gw.Get(ctx, "/api/v1/blog/posts/"+url.PathEscape(postID)+"/comments", "")
}

func (c *ContentClient) AddComment(ctx context.Context, postID string, comment *model.BlogComment, token string) (*Result, error) {
	return c.gw.Post(ctx, "/api/v1/blog/posts/"+url.PathEscape(postID)+"/comments", comment, token)
}

func (c *ContentClient) DecodePost(res *Result) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := res.Decode(&post); err != nil {
		return nil, fmt.Errorf("could not decode blog post: %w", err)
	}
	return &post, nil
}

func (c *ContentClient) DecodePosts(res *Result) ([]*model.BlogPost, *PageMeta, error) {
	var posts []*model.BlogPost
	meta, err := res.DecodePage(&posts)
	if err != nil {
		return nil, nil, fmt.Errorf("could not decode blog post list: %w", err)
	}
	return posts, meta, nil
}

func (c *ContentClient) DecodeCategories(res *Result) ([]*model.BlogCategory, error) {
	var categories []*model.BlogCategory
	if err := res.Decode(&categories); err != nil {
		return nil, fmt.Errorf("could not decode blog categories: %w", err)
	}
	return categories, nil
}

func (c *ContentClient) DecodeComments(res *Result) ([]*model.BlogComment, error) {
	var comments []*model.BlogComment
	if err := res.Decode(&comments); err != nil {
		return nil, fmt.Errorf("could not decode blog comments: %w", err)
	}
	return comments, nil
}
