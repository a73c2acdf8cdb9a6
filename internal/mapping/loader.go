package mapping

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

const (
	downloadTimeout = 2 * time.Minute
	inputFilePerm   = 0o644
)

// Load returns the raw mapping text from path. When the file does not exist
// and url is non-empty, the mapping is downloaded from url, saved to path so
// later runs reuse it, and then returned. Acquisition failure is the one
// fatal error of the parse stage: nothing can be generated without input.
func Load(ctx context.Context, path, url string, logger *zap.Logger) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading mapping file %s: %w", path, err)
	}

	if url == "" {
		return nil, fmt.Errorf("mapping file %s does not exist and no download URL is configured", path)
	}

	logger.Info("mapping file not found, downloading",
		zap.String("path", path),
		zap.String("url", url),
	)

	if err := download(ctx, url, path); err != nil {
		return nil, fmt.Errorf("downloading mapping from %s: %w", url, err)
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading downloaded mapping file %s: %w", path, err)
	}

	return data, nil
}

// download fetches url and writes the body to path.
func download(ctx context.Context, url, path string) error {
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if err := os.WriteFile(path, body, inputFilePerm); err != nil {
		return fmt.Errorf("saving mapping file %s: %w", path, err)
	}

	return nil
}
