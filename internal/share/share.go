// Package share encodes a full preferences snapshot into a URL-safe token so
// timelines can be shared without storing anything server-side. The token is
// versioned JSON, DEFLATE-compressed and base64url-encoded.
package share

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vowsmith/planner/internal/models"
)

const (
	// tokenPrefix versions the snapshot format; a future format bump changes
	// the prefix instead of silently misreading old tokens.
	tokenPrefix = "t1."

	// maxDecodedBytes caps the inflated snapshot size. A legitimate
	// preferences snapshot is a few KB; anything larger is garbage or abuse.
	maxDecodedBytes = 64 << 10
)

// Encode serializes preferences into a shareable token.
func Encode(prefs models.TimelinePreferences) (string, error) {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("init compressor: %w", err)
	}
	if _, err := fw.Write(raw); err != nil {
		return "", fmt.Errorf("compress snapshot: %w", err)
	}
	if err := fw.Close(); err != nil {
		return "", fmt.Errorf("flush compressor: %w", err)
	}

	return tokenPrefix + base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode parses a share token back into preferences. The snapshot is merged
// over the defaults, same as any other partial input at the entry boundary,
// so tokens produced by older questionnaires with fewer fields stay valid.
func Decode(token string) (models.TimelinePreferences, error) {
	prefs := models.DefaultPreferences()

	if !strings.HasPrefix(token, tokenPrefix) {
		return prefs, fmt.Errorf("unrecognized share token format")
	}
	compressed, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(token, tokenPrefix))
	if err != nil {
		return prefs, fmt.Errorf("decode share token: %w", err)
	}

	fr := flate.NewReader(bytes.NewReader(compressed))
	defer fr.Close()
	raw, err := io.ReadAll(io.LimitReader(fr, maxDecodedBytes+1))
	if err != nil {
		return prefs, fmt.Errorf("decompress share token: %w", err)
	}
	if len(raw) > maxDecodedBytes {
		return prefs, fmt.Errorf("share token exceeds %d byte snapshot limit", maxDecodedBytes)
	}

	if err := json.Unmarshal(raw, &prefs); err != nil {
		return prefs, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	prefs.EnsureEventIDs()
	return prefs, nil
}
