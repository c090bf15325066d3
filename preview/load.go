package preview

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"os"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.jacobcolvin.com/ponder/annotation"
	"go.jacobcolvin.com/ponder/workspace"
)

var (
	// ErrUnsupportedReference indicates a reference that is neither a
	// local file nor an http(s) URL.
	ErrUnsupportedReference = errors.New("unsupported reference")
	// ErrDecode indicates the asset is not a supported image.
	ErrDecode = errors.New("decode image")
	// ErrFetch indicates a remote asset could not be downloaded.
	ErrFetch = errors.New("fetch image")
)

// maxRemoteBytes bounds the size of a downloaded preview.
const maxRemoteBytes = 32 << 20

// Loader loads preview images.
//
// The zero value uses [http.DefaultClient].
type Loader struct {
	Client *http.Client
}

// Load decodes the image at ref.
func (l Loader) Load(ctx context.Context, ref annotation.Reference) (image.Image, error) {
	if ref.IsRemote() {
		return l.fetch(ctx, ref.String())
	}

	if ref.IsAbsolute() && !ref.IsLocalFile() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedReference, ref)
	}

	path, err := workspace.PathFromURI(ref.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedReference, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open preview: %w", err)
	}

	defer func() {
		closeErr := f.Close()
		if closeErr != nil {
			slog.Warn("close preview", slog.String("path", path), slog.Any("error", closeErr))
		}
	}()

	return decode(f, path)
}

func (l Loader) fetch(ctx context.Context, rawURL string) (image.Image, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	slog.Debug("fetching preview", slog.String("url", rawURL))

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			slog.Warn("close response body", slog.String("url", rawURL), slog.Any("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, rawURL, resp.Status)
	}

	return decode(io.LimitReader(resp.Body, maxRemoteBytes), rawURL)
}

func decode(r io.Reader, name string) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, name, err)
	}

	slog.Debug("decoded preview",
		slog.String("name", name),
		slog.String("format", format),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()),
	)

	return img, nil
}
