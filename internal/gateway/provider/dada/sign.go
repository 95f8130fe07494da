package dada

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// sign concatenates sorted key+value pairs wrapped in the app secret and
// returns the upper-case md5 hex digest.
func sign(secret string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(secret)
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(params[k])
	}
	b.WriteString(secret)

	sum := md5.Sum([]byte(b.String()))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// CallbackSignature is md5 over the sorted values of client_id, order_id
// and update_time.
func CallbackSignature(clientID, orderID string, updateTime int64) string {
	values := []string{clientID, orderID, strconv.FormatInt(updateTime, 10)}
	sort.Strings(values)

	sum := md5.Sum([]byte(strings.Join(values, "")))
	return hex.EncodeToString(sum[:])
}
