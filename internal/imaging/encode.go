package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// ErrUnsupportedFormat is returned when an output path has an extension no
// encoder is registered for.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 95

// encoderFor picks the encoder for an output file extension.
func encoderFor(path string, quality int) (imgio.Encoder, string, error) {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return imgio.PNGEncoder(), "image/png", nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(quality), "image/jpeg", nil
	case ".bmp":
		return imgio.BMPEncoder(), "image/bmp", nil
	}
	return nil, "", fmt.Errorf("%w: %q (use .png, .jpg, .jpeg or .bmp)", ErrUnsupportedFormat, filepath.Ext(path))
}

// CheckOutputPath reports whether path has an extension Save can encode.
func CheckOutputPath(path string) error {
	_, _, err := encoderFor(path, DefaultQuality)
	return err
}

// Save writes img to path, choosing the encoder from the file extension.
// Missing parent directories are created. quality only affects JPEG output.
func Save(path string, img image.Image, quality int) error {
	enc, _, err := encoderFor(path, quality)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// Encode writes img to w in the format implied by name's extension and
// returns the MIME type used.
func Encode(w io.Writer, name string, img image.Image, quality int) (string, error) {
	enc, mime, err := encoderFor(name, quality)
	if err != nil {
		return "", err
	}
	if err := enc(w, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return mime, nil
}

// EncodeBase64 encodes img like Encode and returns it base64 encoded.
func EncodeBase64(name string, img image.Image, quality int) (data, mime string, err error) {
	var buf bytes.Buffer
	mime, err = Encode(&buf, name, img, quality)
	if err != nil {
		return "", "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), mime, nil
}
