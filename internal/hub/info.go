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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/trace"
)

// DatasetInfo is the dataset statistics.
type DatasetInfo struct {
	// NumExamples is the declared number of examples.
	NumExamples int64
	// SizeBytes is the total size of all files in the repository.
	SizeBytes int64
}

type split struct {
	Name        string `json:"name"`
	NumExamples int64  `json:"num_examples"`
}

type configInfo struct {
	Splits []split `json:"splits"`
}

type datasetResponse struct {
	ID       string `json:"id"`
	CardData struct {
		NumExamples *int64          `json:"num_examples"`
		DatasetInfo json.RawMessage `json:"dataset_info"`
	} `json:"cardData"`
	Siblings []struct {
		RFilename string `json:"rfilename"`
		Size      int64  `json:"size"`
	} `json:"siblings"`
}

// DatasetInfo returns the dataset statistics.  The number of examples is
// taken from the dataset card, "num_examples", or, if not set, the sum of
// the examples in all splits of all configs.  If the card declares neither,
// it is 0.
func (c *Client) DatasetInfo(ctx context.Context) (DatasetInfo, error) {
	ctx, task := trace.NewTask(ctx, "DatasetInfo")
	defer task.End()

	resp, err := c.do(ctx, http.MethodGet, c.apiURL("")+"?blobs=true", "", nil)
	if err != nil {
		return DatasetInfo{}, fmt.Errorf("dataset info: %w", err)
	}
	var dr datasetResponse
	if err := parseResponse(&dr, resp); err != nil {
		return DatasetInfo{}, fmt.Errorf("dataset info: %w", err)
	}
	var di DatasetInfo
	if dr.CardData.NumExamples != nil {
		di.NumExamples = *dr.CardData.NumExamples
	} else {
		di.NumExamples = sumExamples(dr.CardData.DatasetInfo)
	}
	for _, s := range dr.Siblings {
		di.SizeBytes += s.Size
	}
	return di, nil
}

// sumExamples sums the split examples.  dataset_info is either a single
// config object or a list of them.
func sumExamples(raw json.RawMessage) int64 {
	if len(raw) == 0 {
		return 0
	}
	var configs []configInfo
	if err := json.Unmarshal(raw, &configs); err != nil {
		var one configInfo
		if err := json.Unmarshal(raw, &one); err != nil {
			return 0
		}
		configs = []configInfo{one}
	}
	var n int64
	for _, cfg := range configs {
		for _, s := range cfg.Splits {
			n += s.NumExamples
		}
	}
	return n
}
