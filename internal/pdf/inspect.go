package pdf

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// Info summarizes a PDF document
type Info struct {
	Pages int    `json:"pages"`
	Text  string `json:"text,omitempty"`
	Size  int    `json:"size"`
}

// CountPages counts the pages of an in-memory PDF document
func CountPages(data []byte) (int, error) {
	r, err := open(data)
	if err != nil {
		return 0, err
	}
	return r.NumPage(), nil
}

// ExtractText reads the plain text layer of an in-memory PDF document
func ExtractText(data []byte) (string, error) {
	r, err := open(data)
	if err != nil {
		return "", err
	}
	return plainText(r)
}

// Inspect reads a PDF file and reports its page count and text
func Inspect(path string, withText bool) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InspectError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}

	r, err := open(data)
	if err != nil {
		return nil, err
	}

	info := &Info{Pages: r.NumPage(), Size: len(data)}
	if withText {
		text, err := plainText(r)
		if err != nil {
			return nil, err
		}
		info.Text = text
	}
	return info, nil
}

// open parses data, turning parser panics on malformed input into errors
func open(data []byte) (r *pdf.Reader, err error) {
	if len(data) == 0 {
		return nil, &InspectError{Message: "empty document"}
	}
	defer func() {
		if rec := recover(); rec != nil {
			r = nil
			err = &InspectError{Message: fmt.Sprintf("malformed document: %v", rec)}
		}
	}()

	r, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &InspectError{Message: "failed to parse document", Cause: err}
	}
	return r, nil
}

func plainText(r *pdf.Reader) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = &InspectError{Message: fmt.Sprintf("failed to extract text: %v", rec)}
		}
	}()

	textReader, err := r.GetPlainText()
	if err != nil {
		return "", &InspectError{Message: "failed to extract text", Cause: err}
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(textReader); err != nil {
		return "", &InspectError{Message: "failed to read text", Cause: err}
	}
	return buf.String(), nil
}
