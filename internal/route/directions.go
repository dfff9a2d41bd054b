package route

import (
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const directionsBase = "https://www.google.com/maps/dir/"

// DirectionsURL lists every stop as lat,lng path segments in route order.
func DirectionsURL(stops []Stop) string {
	if len(stops) == 0 {
		return ""
	}
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = strconv.FormatFloat(s.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(s.Lng, 'f', -1, 64)
	}
	return directionsBase + strings.Join(parts, "/")
}

// QRCode renders url as a compact terminal QR code.
func QRCode(url string) (string, error) {
	q, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return "", err
	}
	return q.ToSmallString(false), nil
}

// QRCodePNG encodes url as a PNG image of the given pixel size.
func QRCodePNG(url string, size int) ([]byte, error) {
	return qrcode.Encode(url, qrcode.Medium, size)
}
