package scope

import (
	"encoding/base64"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
)

// Reader performs authorized file reads. Both read modes share the same
// preamble: normalize, containment check, regular-file check, extension check.
type Reader struct {
	guard      *Guard
	classifier *Classifier
}

// NewReader creates a reader over the configured scope.
func NewReader(guard *Guard, classifier *Classifier) *Reader {
	return &Reader{guard: guard, classifier: classifier}
}

// TextContent is the result of a text-mode read.
type TextContent struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Size    int    `json:"size"`
	// Charset is a best-effort detection hint, set only when the raw bytes
	// were not clean UTF-8.
	Charset string `json:"charset,omitempty"`
}

// BinaryContent is the result of a binary-mode read, re-encoded for the
// text-oriented transport.
type BinaryContent struct {
	Path     string `json:"path"`
	Content  string `json:"content_base64"`
	Encoding string `json:"encoding"`
	Size     int    `json:"size"`
}

// authorize runs the shared read preamble and returns the normalized path.
func (r *Reader) authorize(raw string) (string, error) {
	p := Normalize(raw)
	if !r.guard.Allowed(p) {
		return "", Errorf(CodeAccessDenied, "access to %s is not allowed", p)
	}
	info, err := os.Stat(p)
	if err != nil {
		return "", Classify(err)
	}
	if !info.Mode().IsRegular() {
		return "", Errorf(CodeNotAFile, "%s is not a regular file", p)
	}
	if !r.classifier.AllowedExt(p) {
		return "", Errorf(CodeDisallowedExtension, "file type %q is not allowed for reading", Ext(p))
	}
	return p, nil
}

// Text reads a file and decodes it as UTF-8. Invalid byte sequences are
// substituted with the replacement character instead of failing the call.
func (r *Reader) Text(raw string) (*TextContent, error) {
	p, err := r.authorize(raw)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, Classify(err)
	}

	out := &TextContent{Path: p, Content: string(b), Size: len(b)}
	if !utf8.Valid(b) {
		out.Content = strings.ToValidUTF8(out.Content, "�")
		if res, derr := chardet.NewTextDetector().DetectBest(b); derr == nil {
			out.Charset = res.Charset
		}
	}
	return out, nil
}

// Binary reads a file and returns its raw bytes as base64 text, tagged with
// the encoding name. The whole file is returned in one response.
func (r *Reader) Binary(raw string) (*BinaryContent, error) {
	p, err := r.authorize(raw)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, Classify(err)
	}
	return &BinaryContent{
		Path:     p,
		Content:  base64.StdEncoding.EncodeToString(b),
		Encoding: "base64",
		Size:     len(b),
	}, nil
}
