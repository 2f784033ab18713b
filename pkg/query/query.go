// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package query

import (
	"strings"
)

// StringSlice collects a list filter from query values.
// Both repeated keys (?season=a&season=b) and a comma-separated value
// (?season=a,b) are accepted. Entries are trimmed and lowercased; blanks are dropped.
func StringSlice(vals []string) []string {
	var res []string
	for _, val := range vals {
		for _, v := range strings.Split(val, ",") {
			clean := strings.ToLower(strings.TrimSpace(v))
			if clean != "" {
				res = append(res, clean)
			}
		}
	}
	return res
}
