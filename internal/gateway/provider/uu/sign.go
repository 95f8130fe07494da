package uu

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// sign joins the non-empty params as sorted k=v pairs, appends the app key,
// upper-cases the string and returns its upper-case md5 hex digest.
func sign(appKey string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if k == "sign" || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	pairs = append(pairs, "key="+appKey)

	sum := md5.Sum([]byte(strings.ToUpper(strings.Join(pairs, "&"))))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
