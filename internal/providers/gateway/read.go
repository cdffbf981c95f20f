package gateway

import (
	"github.com/fsgateway/fsgateway/internal/types"
)

// read returns file contents decoded as UTF-8.
func (p *Provider) read(params map[string]interface{}) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return failMsg("path parameter required")
	}

	content, err := p.ops.Reader.Text(path)
	if err != nil {
		return Failure(err)
	}

	data := map[string]interface{}{
		"path":    content.Path,
		"content": content.Content,
		"size":    content.Size,
	}
	if content.Charset != "" {
		data["charset"] = content.Charset
	}
	return Success(data)
}

// readBinary returns raw file bytes as base64 text, tagged with the encoding.
func (p *Provider) readBinary(params map[string]interface{}) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return failMsg("path parameter required")
	}

	content, err := p.ops.Reader.Binary(path)
	if err != nil {
		return Failure(err)
	}

	return Success(map[string]interface{}{
		"path":           content.Path,
		"content_base64": content.Content,
		"encoding":       content.Encoding,
		"size":           content.Size,
	})
}
