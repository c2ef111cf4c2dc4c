package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/platefit/platefit/internal/contract"
	"github.com/platefit/platefit/internal/store"
	"github.com/platefit/platefit/schema"
)

// writeStoreStatus outputs the record store summary, dispatching based on
// the output format configured.
func writeStoreStatus(status store.Status, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"backend", "users", "menus", "last_write"}, func(cw *csv.Writer) error {
				return cw.Write([]string{
					status.Backend,
					strconv.Itoa(status.UserCount),
					strconv.Itoa(status.MenuCount),
					lastWriteString(status),
				})
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "Store: %s, %d user(s), %d menu(s), last write %s\n",
				status.Backend, status.UserCount, status.MenuCount, lastWriteString(status))
			return err
		}, "Wrote table")
	}
}

// lastWriteString renders the last write time, "never" for an empty store.
func lastWriteString(status store.Status) string {
	if status.LastWrite.IsZero() {
		return "never"
	}
	return status.LastWrite.Format(contract.TimeFormat)
}
