package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gossipboard/gossip-client/internal/view"
)

func newTopicCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topic",
		Short: "List and manage topics",
	}
	cmd.AddCommand(newTopicListCmd(a), newTopicCreateCmd(a), newTopicEditCmd(a), newTopicDeleteCmd(a))
	return cmd
}

// openTopics loads the topic list and makes it current.
func (a *app) openTopics(cmd *cobra.Command) (*view.TopicsView, error) {
	tv := view.NewTopicsView(a.gw, a.viewOpts()...)
	a.nav.Open(tv)
	if err := tv.Load(cmd.Context()); err != nil {
		return nil, a.fetchFailed(cmd.Context(), err)
	}
	return tv, nil
}

func newTopicListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tv, err := a.openTopics(cmd)
			if err != nil {
				return err
			}
			renderTopics(a.out, tv.Snapshot())
			return nil
		},
	}
}

func newTopicCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create TITLE",
		Short: "Add a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tv, err := a.openTopics(cmd)
			if err != nil {
				return err
			}
			t, err := tv.Create(cmd.Context(), args[0])
			if err != nil {
				return a.failed(cmd.Context(), err)
			}
			a.done(fmt.Sprintf("Topic #%d created.", t.ID))
			renderTopics(a.out, tv.Snapshot())
			return nil
		},
	}
}

func newTopicEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit ID TITLE",
		Short: "Rename a topic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			tv, err := a.openTopics(cmd)
			if err != nil {
				return err
			}
			if err := tv.Rename(cmd.Context(), id, args[1]); err != nil {
				return a.failed(cmd.Context(), err)
			}
			renderTopics(a.out, tv.Snapshot())
			return nil
		},
	}
}

func newTopicDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a topic that has no posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			tv, err := a.openTopics(cmd)
			if err != nil {
				return err
			}
			if err := tv.Delete(cmd.Context(), id); err != nil {
				return a.failed(cmd.Context(), err)
			}
			renderTopics(a.out, tv.Snapshot())
			return nil
		},
	}
	addYesFlag(cmd, a)
	return cmd
}
