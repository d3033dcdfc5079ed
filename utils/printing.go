package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/openddl/openddl-go/parsers"
)

// PrettyPrint writes an indented JSON rendering of a parsed OpenDDL tree to
// stdout. DDLNode's Parent back-edge is tagged json:"-" (see ast.go), so
// marshaling a tree never recurses into its own ancestors.
func PrettyPrint(root *parsers.DDLNode) error {
	return FprintTree(os.Stdout, root)
}

// FprintTree is the Writer-based form of PrettyPrint, used by callers that
// need the rendering somewhere other than stdout (a log sink, a test
// buffer). A nil root prints the JSON literal "null", matching Parse's
// documented empty-document result.
func FprintTree(w io.Writer, root *parsers.DDLNode) error {
	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("pretty-print OpenDDL tree: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
