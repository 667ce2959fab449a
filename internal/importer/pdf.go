package importer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// maxPDFSizeBytes caps uploaded PDFs at 10 MB
const maxPDFSizeBytes = 10 << 20

// ExtractPDFText pulls the plain text out of an uploaded PDF. Scanned PDFs
// without a text layer come back empty; the caller routes those through the
// image path instead.
func ExtractPDFText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty PDF upload")
	}
	if len(data) > maxPDFSizeBytes {
		return "", fmt.Errorf("PDF exceeds the %d MB upload limit", maxPDFSizeBytes>>20)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	return buf.String(), nil
}
