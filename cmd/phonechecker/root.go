package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   serviceName,
		Short: "Find CRM contacts by full or partial phone number",
		Long: "phonechecker imports a ';'-delimited CRM contact export and resolves " +
			"phone numbers, written in any common format, to the contacts that own them.",
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newLookupCmd())
	return root
}
