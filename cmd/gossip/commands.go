package main

import (
	"github.com/spf13/cobra"
)

// execute runs the command tree once and closes whatever the run opened,
// whether or not the command failed.
func execute(args []string, setup func(*cobra.Command)) (*app, error) {
	root, a := newRootCmd()
	defer a.close()
	root.SetArgs(args)
	if setup != nil {
		setup(root)
	}
	return a, root.Execute()
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:           "gossip",
		Short:         "Read and write on the gossip board from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.apiURL, "api", "", "backend base URL (overrides GOSSIP_API_URL)")
	root.PersistentFlags().StringVar(&a.storeKind, "store", "", "token store: file, redis or memory (overrides GOSSIP_TOKEN_STORE)")
	root.PersistentFlags().BoolVar(&a.ephemeral, "ephemeral", false, "keep the session in memory for this run only")

	root.AddCommand(
		newLoginCmd(a),
		newSignupCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newFeedCmd(a),
		newPostCmd(a),
		newCommentCmd(a),
		newTopicCmd(a),
	)
	return root, a
}

// addYesFlag registers --yes on a command that deletes something.
func addYesFlag(cmd *cobra.Command, a *app) {
	cmd.Flags().BoolVarP(&a.yes, "yes", "y", false, "do not ask for confirmation")
}
