// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package telegram is the thin wrapper around the MTProto client, that
// provides the session handling, login flow and the channel history.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/trace"
	"strings"

	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"
	"golang.org/x/time/rate"

	"github.com/kaa-nlp/tgcorpus/internal/network"
)

var (
	// ErrNotAuthorized is returned when there's no valid session.
	ErrNotAuthorized = errors.New("not authorized, run login first")
	// ErrNoChannel is returned when the username does not resolve to a
	// channel.
	ErrNoChannel = errors.New("channel not found")
)

//go:generate mockgen -source=client.go -destination=mock_telegram_test.go -package=telegram

// api is the subset of the MTProto API methods used by the client.
type api interface {
	ContactsResolveUsername(ctx context.Context, request *tg.ContactsResolveUsernameRequest) (*tg.ContactsResolvedPeer, error)
	MessagesGetHistory(ctx context.Context, request *tg.MessagesGetHistoryRequest) (tg.MessagesMessagesClass, error)
}

// Client is the Telegram client.
type Client struct {
	cl     *telegram.Client
	api    api
	limits network.Limits
	lim    *rate.Limiter
	peers  map[string]tg.InputPeerClass
	lg     *slog.Logger
}

// Option is the client option.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(c *Client) {
		if lg != nil {
			c.lg = lg
		}
	}
}

// WithLimits sets the request limits.
func WithLimits(l network.Limits) Option {
	return func(c *Client) {
		c.limits = l
	}
}

// New creates a new client with the application credentials and the
// session storage.  The connection is established by Run or Login.
func New(appID int, appHash string, storage session.Storage, opts ...Option) *Client {
	cl := telegram.NewClient(appID, appHash, telegram.Options{
		SessionStorage: storage,
	})
	c := newClient(cl.API(), opts...)
	c.cl = cl
	return c
}

func newClient(a api, opts ...Option) *Client {
	c := &Client{
		api:    a,
		limits: network.DefLimits,
		peers:  make(map[string]tg.InputPeerClass),
		lg:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.lim = c.limits.Limiter()
	return c
}

// Run connects to the platform, ensures that the stored session is
// authorized and calls fn.  The connection is closed when fn returns.  If
// there is no authorized session, it returns ErrNotAuthorized.
func (c *Client) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	return c.cl.Run(ctx, func(ctx context.Context) error {
		st, err := c.cl.Auth().Status(ctx)
		if err != nil {
			return fmt.Errorf("auth status: %w", err)
		}
		if !st.Authorized {
			return ErrNotAuthorized
		}
		c.lg.DebugContext(ctx, "session authorized")
		return fn(ctx)
	})
}

// Prompter asks the user for the login code and, if the account has two
// factor authentication enabled, the password.
type Prompter interface {
	Code(ctx context.Context) (string, error)
	Password(ctx context.Context) (string, error)
}

// Login establishes the session for the phone number, if it's not
// established yet.  The password is used for the two factor authentication,
// if empty, and it's required, the prompter is asked for it.
func (c *Client) Login(ctx context.Context, phone, password string, p Prompter) error {
	ctx, task := trace.NewTask(ctx, "Login")
	defer task.End()

	ua := userAuth{
		UserAuthenticator: auth.Constant(phone, password, auth.CodeAuthenticatorFunc(
			func(ctx context.Context, _ *tg.AuthSentCode) (string, error) {
				return p.Code(ctx)
			},
		)),
		password: password,
		p:        p,
	}
	return c.cl.Run(ctx, func(ctx context.Context) error {
		flow := auth.NewFlow(ua, auth.SendCodeOptions{})
		if err := c.cl.Auth().IfNecessary(ctx, flow); err != nil {
			return fmt.Errorf("login: %w", err)
		}
		c.lg.InfoContext(ctx, "logged in", "phone", maskPhone(phone))
		return nil
	})
}

// userAuth asks for the password only when it's not provided.
type userAuth struct {
	auth.UserAuthenticator
	password string
	p        Prompter
}

func (u userAuth) Password(ctx context.Context) (string, error) {
	if u.password != "" {
		return u.password, nil
	}
	return u.p.Password(ctx)
}

func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}

// Username returns the channel username from the channel reference, that
// may be "name", "@name" or the "t.me" link.
func Username(channel string) string {
	s := strings.TrimSpace(channel)
	for _, prefix := range []string{"https://", "http://"} {
		s = strings.TrimPrefix(s, prefix)
	}
	for _, prefix := range []string{"t.me/", "telegram.me/", "@"} {
		s = strings.TrimPrefix(s, prefix)
	}
	s, _, _ = strings.Cut(s, "/")
	return s
}

// resolve returns the input peer for the channel.  Resolved peers are
// cached for the lifetime of the client.
func (c *Client) resolve(ctx context.Context, channel string) (tg.InputPeerClass, error) {
	username := Username(channel)
	if username == "" {
		return nil, fmt.Errorf("%w: empty username", ErrNoChannel)
	}
	if peer, ok := c.peers[username]; ok {
		return peer, nil
	}
	var res *tg.ContactsResolvedPeer
	err := network.Throttled(ctx, c.lim, c.limits.Request.Timeout, func(ctx context.Context) error {
		var err error
		res, err = c.api.ContactsResolveUsername(ctx, &tg.ContactsResolveUsernameRequest{Username: username})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", username, err)
	}
	for _, chat := range res.Chats {
		ch, ok := chat.(*tg.Channel)
		if !ok {
			continue
		}
		peer := &tg.InputPeerChannel{ChannelID: ch.ID, AccessHash: ch.AccessHash}
		c.peers[username] = peer
		c.lg.DebugContext(ctx, "resolved channel", "username", username, "id", ch.ID)
		return peer, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoChannel, username)
}
