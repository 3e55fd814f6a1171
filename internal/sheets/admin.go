package sheets

import (
	"context"
	"encoding/json"

	"github.com/opencourt/tourney-admin/internal/types"
)

// AuthResult is the login handshake response. The backend authenticates the
// single request; there is no token.
type AuthResult struct {
	Success            bool
	Name               string
	MustChangePassword bool
	Message            string
}

func (c *Client) Login(ctx context.Context, email, password string) AuthResult {
	var resp authResp
	raw := c.send(ctx, "login", payload{"email": email, "password": password})
	if err := json.Unmarshal(raw, &resp); err != nil {
		return AuthResult{Message: "Backend returned an unreadable response"}
	}
	return AuthResult{
		Success:            resp.Success,
		Name:               resp.Name,
		MustChangePassword: resp.MustChangePassword,
		Message:            resp.Message,
	}
}

// Logout is a best-effort notification; callers clear their session either
// way.
func (c *Client) Logout(ctx context.Context) Status {
	return status(c.send(ctx, "logout", nil))
}

// GetAdmins lists admin accounts; fallback is empty.
func (c *Client) GetAdmins(ctx context.Context) []types.Admin {
	var resp adminsResp
	if err := json.Unmarshal(c.send(ctx, "getAdmins", nil), &resp); err != nil || !resp.Success || resp.Admins == nil {
		return nil
	}
	out := make([]types.Admin, 0, len(resp.Admins))
	for _, a := range resp.Admins {
		if headerEcho(a.Email, "email") {
			continue
		}
		out = append(out, toAdmin(a))
	}
	return out
}

func (c *Client) CreateAdmin(ctx context.Context, name, email, password string) Status {
	return status(c.send(ctx, "createAdmin", payload{
		"name":     name,
		"email":    email,
		"password": password,
	}))
}

// DeleteAdmin removes an account; email is the natural key.
func (c *Client) DeleteAdmin(ctx context.Context, email string) Status {
	return status(c.send(ctx, "deleteAdmin", payload{"email": email}))
}

func (c *Client) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) Status {
	return status(c.send(ctx, "changePassword", payload{
		"email":       email,
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	}))
}
