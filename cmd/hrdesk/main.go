package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/avetra/hrdesk/modules/hrm"
	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
	"github.com/avetra/hrdesk/modules/hrm/infrastructure/excel"
	"github.com/avetra/hrdesk/modules/hrm/infrastructure/remote"
	"github.com/avetra/hrdesk/modules/hrm/services"
	"github.com/avetra/hrdesk/pkg/composables"
	"github.com/avetra/hrdesk/pkg/configuration"
	"github.com/avetra/hrdesk/pkg/eventbus"
)

type exporter interface {
	Export(ctx context.Context, scope exports.Scope) ([]byte, string, error)
}

type importer interface {
	Import(ctx context.Context, filename string, r io.Reader) (int, error)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hrdesk",
		Short:        "HR back-office command line client",
		SilenceUsage: true,
	}
	root.AddCommand(newExportCmd(), newImportCmd())
	return root
}

func newModule() *hrm.Module {
	cfg := configuration.Use()
	client := remote.NewClient(cfg.API, cfg.Logger())
	return hrm.NewModule(client, eventbus.NewEventPublisher(cfg.Logger()))
}

// cliContext carries the CLI's identity; command-line usage is an
// administrative channel.
func cliContext() context.Context {
	ctx := composables.WithActor(context.Background(), "cli")
	return composables.WithRoles(ctx, services.RoleAdmin)
}

func newExportCmd() *cobra.Command {
	var (
		dataset   string
		scopeKind string
		day       string
		from      string
		to        string
		month     string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download a dataset as a workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := parseScope(scopeKind, day, from, to, month)
			if err != nil {
				return err
			}
			mod := newModule()
			svc, err := exporterFor(mod, dataset)
			if err != nil {
				return err
			}

			blob, name, err := svc.Export(cliContext(), scope)
			if err != nil {
				return err
			}

			cfg := configuration.Use()
			if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
				return err
			}
			dest := filepath.Join(cfg.ExportDir, name)
			if err := os.WriteFile(dest, blob, 0o644); err != nil {
				return err
			}
			cmd.Printf("wrote %s (%d bytes)\n", dest, len(blob))
			return nil
		},
	}
	cmd.Flags().StringVar(&dataset, "dataset", "", "departments|companies|document-types|charges|attendance")
	cmd.Flags().StringVar(&scopeKind, "scope", "all", "all|day|range|month")
	cmd.Flags().StringVar(&day, "date", "", "day for --scope day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&from, "from", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "range end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&month, "month", "", "month for --scope month (YYYY-MM)")
	_ = cmd.MarkFlagRequired("dataset")
	return cmd
}

func newImportCmd() *cobra.Command {
	var (
		dataset string
		file    string
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Upload a workbook into a dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			// Pre-flight: refuse to upload something the server will
			// reject as unreadable.
			rows, err := excel.ParseWorkbook(bytes.NewReader(blob))
			if err != nil {
				return err
			}

			mod := newModule()
			svc, err := importerFor(mod, dataset)
			if err != nil {
				return err
			}
			n, err := svc.Import(cliContext(), filepath.Base(file), bytes.NewReader(blob))
			if err != nil {
				return err
			}
			cmd.Printf("imported %d of %d rows\n", n, len(rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&dataset, "dataset", "", "departments|companies|document-types|charges|attendance")
	cmd.Flags().StringVar(&file, "file", "", "workbook to upload")
	_ = cmd.MarkFlagRequired("dataset")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func exporterFor(mod *hrm.Module, dataset string) (exporter, error) {
	switch dataset {
	case "departments":
		return mod.Departments, nil
	case "companies":
		return mod.Companies, nil
	case "document-types":
		return mod.DocTypes, nil
	case "charges":
		return mod.Charges, nil
	case "attendance":
		return mod.Attendance, nil
	}
	return nil, fmt.Errorf("unknown dataset %q", dataset)
}

func importerFor(mod *hrm.Module, dataset string) (importer, error) {
	switch dataset {
	case "departments":
		return mod.Departments, nil
	case "companies":
		return mod.Companies, nil
	case "document-types":
		return mod.DocTypes, nil
	case "charges":
		return mod.Charges, nil
	case "attendance":
		return mod.Attendance, nil
	}
	return nil, fmt.Errorf("unknown dataset %q", dataset)
}

func parseScope(kind, day, from, to, month string) (exports.Scope, error) {
	switch kind {
	case "all", "":
		return exports.All(), nil
	case "day":
		d, err := time.Parse("2006-01-02", day)
		if err != nil {
			return exports.Scope{}, fmt.Errorf("invalid --date: %w", err)
		}
		return exports.SingleDay(d), nil
	case "range":
		start, err := time.Parse("2006-01-02", from)
		if err != nil {
			return exports.Scope{}, fmt.Errorf("invalid --from: %w", err)
		}
		end, err := time.Parse("2006-01-02", to)
		if err != nil {
			return exports.Scope{}, fmt.Errorf("invalid --to: %w", err)
		}
		if end.Before(start) {
			return exports.Scope{}, fmt.Errorf("--to is before --from")
		}
		return exports.DateRange(start, end), nil
	case "month":
		m, err := time.Parse("2006-01", month)
		if err != nil {
			return exports.Scope{}, fmt.Errorf("invalid --month: %w", err)
		}
		return exports.ForMonth(m), nil
	}
	return exports.Scope{}, fmt.Errorf("unknown scope %q", kind)
}
