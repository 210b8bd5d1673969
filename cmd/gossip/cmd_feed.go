package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gossipboard/gossip-client/internal/gateway"
	"github.com/gossipboard/gossip-client/internal/model"
	"github.com/gossipboard/gossip-client/internal/view"
)

func newFeedCmd(a *app) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "List posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			feed := view.NewFeedView(a.gw, a.viewOpts()...)
			a.nav.Open(feed)
			if err := feed.Search(ctx, search); err != nil {
				return a.fetchFailed(ctx, err)
			}
			renderFeed(a.out, feed.Snapshot(), a.canMutate(ctx))
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "only show posts matching this text")
	return cmd
}

func newPostCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Show, write, edit or delete posts",
	}
	cmd.AddCommand(newPostShowCmd(a), newPostCreateCmd(a), newPostEditCmd(a), newPostDeleteCmd(a))
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// openPost loads a post view and makes it current.
func (a *app) openPost(cmd *cobra.Command, arg string) (*view.PostView, error) {
	id, err := parseID(arg)
	if err != nil {
		return nil, err
	}
	pv := view.NewPostView(a.gw, id, a.viewOpts()...)
	a.nav.Open(pv)
	if err := pv.Load(cmd.Context()); err != nil {
		return nil, a.fetchFailed(cmd.Context(), err)
	}
	return pv, nil
}

// ownPost loads a post and refuses, without calling the backend, when the
// signed-in user is not its author.
func (a *app) ownPost(cmd *cobra.Command, arg string) (*view.PostView, error) {
	pv, err := a.openPost(cmd, arg)
	if err != nil {
		return nil, err
	}
	if !a.sess.CanMutate(cmd.Context(), pv.Snapshot().Post) {
		return nil, fmt.Errorf("post #%d is not yours to change", pv.PostID())
	}
	return pv, nil
}

func newPostShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a post with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pv, err := a.openPost(cmd, args[0])
			if err != nil {
				return err
			}
			renderPost(a.out, pv.Snapshot(), a.canMutate(cmd.Context()))
			return nil
		},
	}
}

func newPostCreateCmd(a *app) *cobra.Command {
	var in gateway.PostInput
	var topic string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Write a new post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			id, err := a.resolveTopic(cmd, topic)
			if err != nil {
				return err
			}
			in.TopicID = id
			feed := view.NewFeedView(a.gw, a.viewOpts()...)
			a.nav.Open(feed)
			p, err := feed.CreatePost(ctx, in)
			if err != nil {
				return a.failed(ctx, err)
			}
			a.done(fmt.Sprintf("Posted #%d.", p.ID))
			renderFeed(a.out, feed.Snapshot(), a.canMutate(ctx))
			return nil
		},
	}
	cmd.Flags().StringVarP(&in.Title, "title", "t", "", "post title")
	cmd.Flags().StringVarP(&in.Body, "body", "b", "", "post text")
	cmd.Flags().StringVar(&topic, "topic", model.DefaultTopicTitle, "topic id, slug or title")
	return cmd
}

// resolveTopic turns a topic id, slug or title into an id.
func (a *app) resolveTopic(cmd *cobra.Command, ref string) (int64, error) {
	if id, err := parseID(ref); err == nil {
		return id, nil
	}
	tv := view.NewTopicsView(a.gw, a.viewOpts()...)
	if err := tv.Load(cmd.Context()); err != nil {
		return 0, a.fetchFailed(cmd.Context(), err)
	}
	slug := gateway.Slugify(ref)
	for _, t := range tv.Snapshot().Topics {
		if t.Slug == ref || t.Slug == slug || t.Title == ref {
			return t.ID, nil
		}
	}
	return 0, fmt.Errorf("unknown topic %q; see `gossip topic list`", ref)
}

func newPostEditCmd(a *app) *cobra.Command {
	var title, body string
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change the title or text of your post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pv, err := a.ownPost(cmd, args[0])
			if err != nil {
				return err
			}
			cur := pv.Snapshot().Post
			in := gateway.PostUpdate{Title: cur.Title, Body: cur.Body}
			if cmd.Flags().Changed("title") {
				in.Title = title
			}
			if cmd.Flags().Changed("body") {
				in.Body = body
			}
			if err := pv.EditPost(cmd.Context(), in); err != nil {
				return a.failed(cmd.Context(), err)
			}
			a.done("Post updated.")
			renderPost(a.out, pv.Snapshot(), a.canMutate(cmd.Context()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&body, "body", "b", "", "new text")
	return cmd
}

func newPostDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete your post and its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pv, err := a.ownPost(cmd, args[0])
			if err != nil {
				return err
			}
			if err := pv.DeletePost(cmd.Context()); err != nil {
				return a.failed(cmd.Context(), err)
			}
			a.done(fmt.Sprintf("Post #%d deleted.", pv.PostID()))
			return nil
		},
	}
	addYesFlag(cmd, a)
	return cmd
}
