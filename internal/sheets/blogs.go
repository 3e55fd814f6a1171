package sheets

import (
	"context"
	"encoding/json"

	"github.com/opencourt/tourney-admin/internal/seed"
	"github.com/opencourt/tourney-admin/internal/types"
)

// GetBlogs fetches every post, falling back to the bundled seed.
func (c *Client) GetBlogs(ctx context.Context) []types.BlogPost {
	var resp blogsResp
	if err := json.Unmarshal(c.send(ctx, "getBlogs", nil), &resp); err != nil || !resp.Success || resp.Blogs == nil {
		return seed.Blogs()
	}
	out := make([]types.BlogPost, 0, len(resp.Blogs))
	for _, b := range resp.Blogs {
		if headerEcho(b.PostID, "postId") {
			continue
		}
		out = append(out, toBlog(b))
	}
	return out
}

func (c *Client) CreateBlog(ctx context.Context, b types.BlogPost) Status {
	return status(c.send(ctx, "createBlog", payload{
		"title":         b.Title,
		"content":       b.Content,
		"coverImageUrl": b.Image,
	}))
}

func (c *Client) UpdateBlog(ctx context.Context, b types.BlogPost) Status {
	return status(c.send(ctx, "updateBlog", payload{
		"postId":        b.ID,
		"title":         b.Title,
		"content":       b.Content,
		"coverImageUrl": b.Image,
	}))
}

func (c *Client) DeleteBlog(ctx context.Context, postID string) Status {
	return status(c.send(ctx, "deleteBlog", payload{"postId": postID}))
}

// GetComments lists one post's comments; fallback is empty. Comments are
// append-only.
func (c *Client) GetComments(ctx context.Context, blogID string) []types.Comment {
	var resp commentsResp
	raw := c.send(ctx, "getComments", payload{"blogId": blogID})
	if err := json.Unmarshal(raw, &resp); err != nil || !resp.Success || resp.Comments == nil {
		return nil
	}
	out := make([]types.Comment, 0, len(resp.Comments))
	for _, cm := range resp.Comments {
		if headerEcho(cm.CommentID, "commentId") {
			continue
		}
		out = append(out, toComment(cm))
	}
	return out
}

func (c *Client) AddComment(ctx context.Context, blogID, name, comment string) Status {
	return status(c.send(ctx, "addComment", payload{
		"blogId":  blogID,
		"name":    name,
		"comment": comment,
	}))
}
