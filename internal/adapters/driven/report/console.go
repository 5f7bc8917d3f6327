package report

import (
	"fmt"
	"io"

	"github.com/careercopilot/ccimport/internal/core/domain"
	"github.com/careercopilot/ccimport/internal/core/ports/driven"
)

// Console prints import progress to a writer, one line per event.
type Console struct {
	out io.Writer
}

// Ensure Console implements the ImportReporter interface.
var _ driven.ImportReporter = (*Console)(nil)

// NewConsole creates a reporter writing to out, usually os.Stdout.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// RunStarted announces the resolved file count. A single file is
// announced by name, several by count.
func (c *Console) RunStarted(files []domain.ImportFile) {
	if len(files) == 1 {
		fmt.Fprintf(c.out, "Importing file %s\n", files[0].Name)
		return
	}
	fmt.Fprintf(c.out, "Importing %d files\n", len(files))
}

// FileUploaded confirms one successful upload.
func (c *Console) FileUploaded(file domain.ImportFile) {
	fmt.Fprintf(c.out, "Uploaded %s\n", file.Name)
}

// FileRejected surfaces a server rejection verbatim: status code,
// reason phrase, and the response body the backend sent.
func (c *Console) FileRejected(file domain.ImportFile, rejection *domain.UploadRejectedError) {
	fmt.Fprintf(c.out, "Upload of %s rejected: %d %s\n", file.Name, rejection.StatusCode, rejection.Reason)
	if rejection.Body != "" {
		fmt.Fprintln(c.out, rejection.Body)
	}
}

// FileFailed reports a transport level failure for one file. The run
// continues, so the line names the file it applies to.
func (c *Console) FileFailed(file domain.ImportFile, err error) {
	fmt.Fprintf(c.out, "Failed to upload %s: %v\n", file.Name, err)
}
