package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/url"
	"strings"

	perrors "github.com/flashingpumpkin/perkakas/internal/errors"
	"github.com/flashingpumpkin/perkakas/internal/form"
	"github.com/spf13/cobra"
)

var formCmd = newFormCmd()

// contentTypeHeader prefixes the first line written by form encode.
const contentTypeHeader = "Content-Type:"

// newFormCmd creates the form command and its subcommands.
func newFormCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Convert between JSON objects and form bodies",
		Long: `Convert between JSON objects and form bodies. Every subcommand reads
standard input and writes standard output.

  encode  JSON object -> multipart/form-data (Content-Type line, blank line, body)
  decode  multipart/form-data -> JSON object
  query   JSON object -> URL encoded form
  json    URL encoded form -> JSON object`,
	}
	cmd.AddCommand(newFormEncodeCmd(), newFormDecodeCmd(), newFormQueryCmd(), newFormJSONCmd())
	return cmd
}

func newFormEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode",
		Short: "Encode a JSON object as multipart/form-data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := readJSONObject(cmd.InOrStdin())
			if err != nil {
				return err
			}

			var body strings.Builder
			contentType, err := form.EncodeMultipart(&body, obj)
			if err != nil {
				return fmt.Errorf("failed to encode form: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s %s\r\n\r\n", contentTypeHeader, contentType)
			_, _ = io.WriteString(out, body.String())
			return nil
		},
	}
}

func newFormDecodeCmd() *cobra.Command {
	var boundary string
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a multipart/form-data body into a JSON object",
		Long: `Decode a multipart/form-data body into a JSON object. The boundary is
taken from --boundary or from a leading Content-Type line as written by
'perkakas form encode'. Repeated fields keep their last value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(cmd.InOrStdin())
			if boundary == "" {
				b, err := readBoundary(r)
				if err != nil {
					return err
				}
				boundary = b
			}

			obj, err := form.DecodeMultipart(r, boundary)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), obj)
		},
	}
	cmd.Flags().StringVar(&boundary, "boundary", "", "Multipart boundary (default: read from a Content-Type line)")
	return cmd
}

func newFormQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query",
		Short: "Encode a JSON object as a URL encoded form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := readJSONObject(cmd.InOrStdin())
			if err != nil {
				return err
			}
			values, err := form.FromJSONObject(obj)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), values.Encode())
			return nil
		},
	}
}

func newFormJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json",
		Short: "Decode a URL encoded form into a JSON object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			values, err := url.ParseQuery(strings.TrimSpace(string(data)))
			if err != nil {
				return fmt.Errorf("%w: %v", perrors.ErrInvalidInput, err)
			}
			return writeJSON(cmd.OutOrStdout(), form.ToJSONObject(values))
		},
	}
}

// readJSONObject decodes a single JSON object from r.
func readJSONObject(r io.Reader) (map[string]any, error) {
	obj, err := form.DecodeObject(r)
	if err != nil {
		return nil, fmt.Errorf("%w: expected a JSON object: %v", perrors.ErrInvalidInput, err)
	}
	return obj, nil
}

// readBoundary consumes a "Content-Type: multipart/form-data; boundary=..."
// line and the blank line after it.
func readBoundary(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("%w: empty input", perrors.ErrInvalidInput)
	}
	value, ok := strings.CutPrefix(strings.TrimSpace(line), contentTypeHeader)
	if !ok {
		return "", fmt.Errorf("%w: no --boundary given and input has no Content-Type line", perrors.ErrInvalidInput)
	}
	_, params, err := mime.ParseMediaType(strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("%w: %v", perrors.ErrInvalidInput, err)
	}
	boundary := params["boundary"]
	if boundary == "" {
		return "", fmt.Errorf("%w: Content-Type has no boundary", perrors.ErrInvalidInput)
	}

	// Skip the blank separator line
	if next, err := r.Peek(2); err == nil && string(next) == "\r\n" {
		_, _ = r.Discard(2)
	} else if err == nil && next[0] == '\n' {
		_, _ = r.Discard(1)
	}
	return boundary, nil
}

func writeJSON(w io.Writer, obj map[string]any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(obj)
}
