// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package hub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/trace"
)

// sampleSize is the size of the file sample sent on preupload.
const sampleSize = 512

type preuploadFile struct {
	Path   string `json:"path"`
	Size   int    `json:"size"`
	Sample string `json:"sample"`
}

type preuploadRequest struct {
	Files []preuploadFile `json:"files"`
}

type preuploadResponse struct {
	Files []struct {
		Path         string `json:"path"`
		UploadMode   string `json:"uploadMode"`
		ShouldIgnore bool   `json:"shouldIgnore"`
	} `json:"files"`
}

// commit operation lines, the payload is NDJSON.
type (
	commitLine struct {
		Key   string `json:"key"`
		Value any    `json:"value"`
	}
	commitHeader struct {
		Summary     string `json:"summary"`
		Description string `json:"description,omitempty"`
	}
	commitFile struct {
		Content  string `json:"content"`
		Path     string `json:"path"`
		Encoding string `json:"encoding"`
	}
)

// CommitInfo is the result of the commit.
type CommitInfo struct {
	CommitURL string `json:"commitUrl"`
	CommitOID string `json:"commitOid"`
}

// Upload commits data to the file at path in the repository, replacing
// the file if it exists.  The message is used as the commit summary.
func (c *Client) Upload(ctx context.Context, path string, data []byte, message string) (CommitInfo, error) {
	ctx, task := trace.NewTask(ctx, "Upload")
	defer task.End()

	if err := c.preupload(ctx, path, data); err != nil {
		return CommitInfo{}, fmt.Errorf("preupload %s: %w", path, err)
	}
	ci, err := c.commit(ctx, path, data, message)
	if err != nil {
		return CommitInfo{}, fmt.Errorf("commit %s: %w", path, err)
	}
	c.lg.DebugContext(ctx, "committed", "path", path, "bytes", len(data), "commit", ci.CommitOID)
	return ci, nil
}

// preupload asks the Hub how the file should be uploaded.  Only the regular
// upload is supported.
func (c *Client) preupload(ctx context.Context, path string, data []byte) error {
	sample := data[:min(len(data), sampleSize)]
	req := preuploadRequest{
		Files: []preuploadFile{{
			Path:   path,
			Size:   len(data),
			Sample: base64.StdEncoding.EncodeToString(sample),
		}},
	}
	resp, err := c.postJSON(ctx, c.apiURL("preupload"), req)
	if err != nil {
		return err
	}
	var pr preuploadResponse
	if err := parseResponse(&pr, resp); err != nil {
		return err
	}
	for _, f := range pr.Files {
		if f.Path == path && f.UploadMode == "lfs" {
			return ErrLFSRequired
		}
	}
	return nil
}

func (c *Client) commit(ctx context.Context, path string, data []byte, message string) (CommitInfo, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf) // Encode terminates each value with a newline.
	lines := []commitLine{
		{Key: "header", Value: commitHeader{Summary: message}},
		{Key: "file", Value: commitFile{
			Content:  base64.StdEncoding.EncodeToString(data),
			Path:     path,
			Encoding: "base64",
		}},
	}
	for _, l := range lines {
		if err := enc.Encode(l); err != nil {
			return CommitInfo{}, err
		}
	}
	resp, err := c.do(ctx, http.MethodPost, c.apiURL("commit"), "application/x-ndjson", &buf)
	if err != nil {
		return CommitInfo{}, err
	}
	var ci CommitInfo
	if err := parseResponse(&ci, resp); err != nil {
		return CommitInfo{}, err
	}
	return ci, nil
}
