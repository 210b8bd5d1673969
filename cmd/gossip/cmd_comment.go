package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gossipboard/gossip-client/internal/view"
)

func newCommentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Add, edit or delete comments on a post",
	}
	cmd.AddCommand(newCommentAddCmd(a), newCommentEditCmd(a), newCommentDeleteCmd(a))
	return cmd
}

// ownComment loads the post view and checks the comment is the user's.
func (a *app) ownComment(cmd *cobra.Command, postArg, commentArg string) (*view.PostView, int64, error) {
	cid, err := parseID(commentArg)
	if err != nil {
		return nil, 0, err
	}
	pv, err := a.openPost(cmd, postArg)
	if err != nil {
		return nil, 0, err
	}
	for _, c := range pv.Snapshot().Comments {
		if c.ID != cid {
			continue
		}
		if !a.sess.CanMutate(cmd.Context(), c) {
			return nil, 0, fmt.Errorf("comment #%d is not yours to change", cid)
		}
		return pv, cid, nil
	}
	return nil, 0, fmt.Errorf("post #%d has no comment #%d", pv.PostID(), cid)
}

func newCommentAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add POST_ID TEXT",
		Short: "Comment on a post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pv, err := a.openPost(cmd, args[0])
			if err != nil {
				return err
			}
			if err := pv.AddComment(cmd.Context(), args[1]); err != nil {
				return a.failed(cmd.Context(), err)
			}
			renderPost(a.out, pv.Snapshot(), a.canMutate(cmd.Context()))
			return nil
		},
	}
}

func newCommentEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit POST_ID COMMENT_ID TEXT",
		Short: "Change the text of your comment",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pv, cid, err := a.ownComment(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			if err := pv.EditComment(cmd.Context(), cid, args[2]); err != nil {
				return a.failed(cmd.Context(), err)
			}
			renderPost(a.out, pv.Snapshot(), a.canMutate(cmd.Context()))
			return nil
		},
	}
}

func newCommentDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete POST_ID COMMENT_ID",
		Short: "Delete your comment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pv, cid, err := a.ownComment(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			if err := pv.DeleteComment(cmd.Context(), cid); err != nil {
				return a.failed(cmd.Context(), err)
			}
			renderPost(a.out, pv.Snapshot(), a.canMutate(cmd.Context()))
			return nil
		},
	}
	addYesFlag(cmd, a)
	return cmd
}
