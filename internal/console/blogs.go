package console

import (
	"context"
	"time"

	"github.com/opencourt/tourney-admin/internal/types"
)

// SaveBlog creates or updates a post. A blank date is stamped with today.
func (c *Console) SaveBlog(ctx context.Context, b types.BlogPost) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	if b.Date == "" {
		b.Date = time.Now().UTC().Format("2006-01-02")
	}

	if types.BlogProvenance(b.ID) == types.ProvenanceNew {
		if s := c.api.CreateBlog(ctx, b); !s.Success {
			return reject(s, "Failed: ")
		}
	} else {
		if s := c.api.UpdateBlog(ctx, b); !s.Success {
			return reject(s, "Failed: ")
		}
	}

	c.Reload(ctx)
	return Result{OK: true, Status: "Post saved"}
}

func (c *Console) DeleteBlog(ctx context.Context, id string) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	if s := c.api.DeleteBlog(ctx, id); !s.Success {
		return reject(s, "Failed to delete: ")
	}
	c.Reload(ctx)
	return Result{OK: true, Status: "Post deleted"}
}

// Comments are read and written straight through; they are not part of the
// snapshot and no reload follows a new comment.
func (c *Console) Comments(ctx context.Context, blogID string) []types.Comment {
	return c.api.GetComments(ctx, blogID)
}

func (c *Console) AddComment(ctx context.Context, blogID, name, text string) Result {
	if s := c.api.AddComment(ctx, blogID, name, text); !s.Success {
		return reject(s, "Failed: ")
	}
	return Result{OK: true, Status: "Comment added"}
}

// SaveRules replaces all three rule lists in one write.
func (c *Console) SaveRules(ctx context.Context, r types.Rules) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	if s := c.api.SaveRules(ctx, r); !s.Success {
		return reject(s, "Failed: ")
	}
	c.Reload(ctx)
	return Result{OK: true, Status: "Rules saved"}
}
