package engine

import (
	"context"

	"github.com/jonwraymond/authops/observe"
	"github.com/jonwraymond/authops/policy"
	"github.com/jonwraymond/authops/post"
)

// ListPosts returns every post in insertion order. Any authenticated
// subject with a known role may list; posts are readable
// service-wide.
func (e *Engine) ListPosts(ctx context.Context, tokenString string) (_ []*post.Post, err error) {
	ctx, finish := e.begin(ctx, observe.FlowMeta{Name: "list_posts"})
	defer func() { finish(err) }()

	sub, err := e.subjectFor(tokenString)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(sub) {
		return nil, &policy.ForbiddenError{
			Username: sub.Username,
			Action:   policy.ActionView,
			Reason:   "unknown role",
		}
	}

	return e.posts.List(ctx)
}

// CreatePost stores a new post owned by the token's subject. Requires
// the author role.
func (e *Engine) CreatePost(ctx context.Context, tokenString, title, content string) (_ *post.Post, err error) {
	ctx, finish := e.begin(ctx, observe.FlowMeta{Name: "create_post"})
	defer func() { finish(err) }()

	sub, err := e.subjectFor(tokenString)
	if err != nil {
		return nil, err
	}
	if err = policy.RequireAuthor(sub, policy.ActionCreate); err != nil {
		return nil, err
	}

	p, err := e.posts.Create(ctx, sub.Username, title, content)
	if err != nil {
		return nil, err
	}

	e.logger.Info(ctx, "post created",
		observe.Field{Key: "subject", Value: sub.Username},
		observe.Field{Key: "post_id", Value: p.ID},
	)
	return p, nil
}

// UpdatePost applies the non-nil fields to an existing post. Nil
// fields are left unchanged.
//
// The author-role gate runs before the post is looked up, so readers
// are denied without learning whether the id exists. The ownership
// gate runs after the lookup.
func (e *Engine) UpdatePost(ctx context.Context, tokenString, id string, title, content *string) (_ *post.Post, err error) {
	ctx, finish := e.begin(ctx, observe.FlowMeta{Name: "update_post"})
	defer func() { finish(err) }()

	sub, err := e.subjectFor(tokenString)
	if err != nil {
		return nil, err
	}
	if err = policy.RequireAuthor(sub, policy.ActionEdit); err != nil {
		return nil, err
	}

	existing, err := e.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = policy.RequireOwner(sub, policy.ActionEdit, existing.Owner); err != nil {
		return nil, err
	}

	p, err := e.posts.Update(ctx, id, title, content)
	if err != nil {
		return nil, err
	}

	e.logger.Info(ctx, "post updated",
		observe.Field{Key: "subject", Value: sub.Username},
		observe.Field{Key: "post_id", Value: p.ID},
	)
	return p, nil
}

// DeletePost removes an existing post. Same gate ordering as
// UpdatePost: role first, then existence, then ownership.
func (e *Engine) DeletePost(ctx context.Context, tokenString, id string) (err error) {
	ctx, finish := e.begin(ctx, observe.FlowMeta{Name: "delete_post"})
	defer func() { finish(err) }()

	sub, err := e.subjectFor(tokenString)
	if err != nil {
		return err
	}
	if err = policy.RequireAuthor(sub, policy.ActionDelete); err != nil {
		return err
	}

	existing, err := e.posts.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = policy.RequireOwner(sub, policy.ActionDelete, existing.Owner); err != nil {
		return err
	}

	if err = e.posts.Delete(ctx, id); err != nil {
		return err
	}

	e.logger.Info(ctx, "post deleted",
		observe.Field{Key: "subject", Value: sub.Username},
		observe.Field{Key: "post_id", Value: id},
	)
	return nil
}
