// Command directory resolves provider access codes and lists patient sets against
// the configured directory, without starting the HTTP service.
package main

import (
	"aesthetics-service/internal/app/config"
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/app/services/airtable"
	"aesthetics-service/internal/app/services/core/providers"
	"aesthetics-service/internal/app/services/shared/memstore"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cliOptions struct {
	demo    bool
	verbose bool
	timeout time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:           "directory",
		Short:         "Query the provider directory the way the service does",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVar(&opts.demo, "demo", false, "use the bundled demo directory instead of Airtable")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log directory calls")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall timeout")

	rootCmd.AddCommand(resolveCmd(opts))
	rootCmd.AddCommand(patientsCmd(opts))
	return rootCmd
}

func resolveCmd(opts *cliOptions) *cobra.Command {
	var code string
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve an access code to its provider record",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			provider, err := newProviderUsecase(opts).ResolveProvider(ctx, code)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), provider)
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "provider access code")
	cmd.MarkFlagRequired("code")
	return cmd
}

func patientsCmd(opts *cliOptions) *cobra.Command {
	var code string
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "List the patient set of the provider owning an access code",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			usecase := newProviderUsecase(opts)
			provider, err := usecase.ResolveProvider(ctx, code)
			if err != nil {
				return err
			}
			patients, err := usecase.ListPatients(ctx, provider.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s): %d patients\n", provider.Name, provider.ID, len(patients))
			for _, patient := range patients {
				fmt.Fprintf(out, "  %-12s %-24s score=%d findings=%d\n", patient.ID, patient.Name, patient.Score, len(patient.Findings))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "provider access code")
	cmd.MarkFlagRequired("code")
	return cmd
}

func newProviderUsecase(opts *cliOptions) contracts.ProviderUsecase {
	internalConfig := config.NewInternalConfig()

	log := zap.NewNop()
	if opts.verbose {
		if development, err := zap.NewDevelopment(); err == nil {
			log = development
		}
	}

	var directoryClient contracts.DirectoryClient
	if opts.demo || internalConfig.App.DemoMode {
		directoryClient = airtable.NewDemoDirectory(internalConfig.Airtable.ProviderTable, internalConfig.Airtable.PatientTable, log)
	} else {
		directoryClient = airtable.NewAirtableClient(internalConfig.Airtable, log)
	}

	return providers.NewProviderUsecase(directoryClient, memstore.NewMemorySessionStore(0), internalConfig, log)
}

func printJSON(w io.Writer, v interface{}) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}
