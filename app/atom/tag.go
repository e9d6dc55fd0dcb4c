package atom

import "fmt"

// TagURI derives a permanent identifier of the form
// tag:{domain},{YYYY-MM-DD}:{relativePath} (RFC 4151).
func TagURI(domain string, referenceDate Timestamp, relativePath string) (string, error) {
	stamp, err := ToDateStamp(referenceDate)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("tag:%s,%s:%s", domain, stamp, relativePath), nil
}
