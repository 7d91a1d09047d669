package extension

import (
	"crypto/md5"
	"encoding/binary"
	"math"
	"strconv"
	"strings"
)

// DeriveSourceID computes the id a client assigns to a source that does not declare one:
// the first 8 bytes of md5("<lowercase name>/<lang>/<versionId>") as a big-endian
// integer with the sign bit cleared.
func DeriveSourceID(name, lang string, versionID int) string {
	key := strings.ToLower(name) + "/" + lang + "/" + strconv.Itoa(versionID)
	sum := md5.Sum([]byte(key))

	id := binary.BigEndian.Uint64(sum[:8]) & math.MaxInt64

	return strconv.FormatUint(id, 10)
}
