package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkivimagi/auctionview/internal/auction"
	"github.com/mkivimagi/auctionview/internal/cli/pagination"
	"github.com/mkivimagi/auctionview/internal/tui"
)

// Output formats for the list command.
const (
	outputTable  = "table"
	outputJSON   = "json"
	outputNDJSON = "ndjson"
)

// newListCmd creates the non-interactive page fetch command.
func newListCmd() *cobra.Command {
	var (
		params  = pagination.NewParams()
		sortStr string
		output  string
		plain   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch one page of auction results and print it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := params.Validate(); err != nil {
				return err
			}

			sortField, sortOrder, err := pagination.ParseSort(sortStr)
			if err != nil {
				return err
			}

			cfg := getActiveConfig()
			client := auction.NewClient(
				cfg.Endpoint,
				auction.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
			)

			records, err := client.FetchPage(cmd.Context(), params.WirePage(), params.PageSize)
			if err != nil {
				return err
			}

			columns := auctionColumns()
			if sortField != "" {
				records, err = sortRecords(records, columns, sortField, sortOrder)
				if err != nil {
					return err
				}
			}

			mode := tui.DetectOutputMode(plain, true)
			return renderList(cmd.OutOrStdout(), output, mode, columns, records, params.Page, cfg.TotalPages)
		},
	}

	cmd.Flags().IntVar(&params.Page, "page", pagination.DefaultPage, "1-indexed page to fetch")
	cmd.Flags().IntVar(&params.PageSize, "page-size", pagination.DefaultPageSize, "records per page")
	cmd.Flags().StringVar(&sortStr, "sort", "", "sort the fetched page: 'field' or 'field:order' (page-local)")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json, or ndjson")
	cmd.Flags().BoolVar(&plain, "plain", false, "force unstyled table output")

	return cmd
}

// sortRecords applies a page-local sort by column id.
func sortRecords(
	records []auction.Record,
	columns []tui.Column[auction.Record],
	field, order string,
) ([]auction.Record, error) {
	known := false
	for _, col := range columns {
		if col.ID == field && col.Less != nil {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("unknown sort field %q", field)
	}

	var state tui.SortState
	state.Toggle(field)
	if order == pagination.SortOrderDesc {
		state.Toggle(field)
	}
	return tui.ApplySort(records, columns, state), nil
}

// renderList writes records in the requested output format. The mode only
// affects table output: styled tables reuse the interactive header styling.
func renderList(
	w io.Writer,
	output string,
	mode tui.OutputMode,
	columns []tui.Column[auction.Record],
	records []auction.Record,
	page, pageCount int,
) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)

	case outputNDJSON:
		enc := json.NewEncoder(w)
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil

	case outputTable:
		render := tui.RenderPlainTable[auction.Record]
		if mode == tui.OutputModeStyled {
			render = tui.RenderStyledTable[auction.Record]
		}
		if err := render(w, columns, records); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "\nPage %d of %d\n", page, pageCount)
		return err

	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}
