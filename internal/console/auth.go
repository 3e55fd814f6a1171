package console

import (
	"context"
	"time"
)

// Session is what a successful login yields. Token issuance and storage
// live in the auth package; the console only performs the handshake.
type Session struct {
	Name               string
	Email              string
	MustChangePassword bool
	CreatedAt          time.Time
}

// Login authenticates against the backend. All failures, including
// transport exhaustion, collapse into the one message the UI shows.
func (c *Console) Login(ctx context.Context, email, password string) (Session, Result) {
	res := c.api.Login(ctx, email, password)
	if !res.Success {
		return Session{}, Result{Status: "Invalid Credentials or Server Error"}
	}
	return Session{
		Name:               res.Name,
		Email:              email,
		MustChangePassword: res.MustChangePassword,
		CreatedAt:          time.Now().UTC(),
	}, Result{OK: true, Status: "Welcome " + res.Name}
}

// Logout tells the backend, but the caller's session is cleared whether or
// not the notification lands.
func (c *Console) Logout(ctx context.Context) {
	c.api.Logout(ctx)
}

func (c *Console) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) Result {
	if s := c.api.ChangePassword(ctx, email, oldPassword, newPassword); !s.Success {
		return reject(s, "Failed: ")
	}
	return Result{OK: true, Status: "Password updated"}
}

func (c *Console) CreateAdmin(ctx context.Context, name, email, password string) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	if s := c.api.CreateAdmin(ctx, name, email, password); !s.Success {
		return reject(s, "Failed: ")
	}
	c.Reload(ctx)
	return Result{OK: true, Status: "Admin created"}
}

func (c *Console) DeleteAdmin(ctx context.Context, email string) Result {
	if err := c.begin(); err != nil {
		return busy()
	}
	defer c.end()

	if s := c.api.DeleteAdmin(ctx, email); !s.Success {
		return reject(s, "Failed to delete: ")
	}
	c.Reload(ctx)
	return Result{OK: true, Status: "Admin deleted"}
}
