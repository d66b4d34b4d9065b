package gdrive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xpanvictor/jassist/internal/config"
	"github.com/xpanvictor/jassist/pkg/Logger"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Client downloads voice recordings from a Google Drive folder into the
// local raw audio directory.
type Client struct {
	service     *drive.Service
	folderName  string
	deleteAfter bool
	logger      *Logger.Logger
}

func NewClient(ctx context.Context, cfg config.GoogleConfig, logger *Logger.Logger) (*Client, error) {
	service, err := drive.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to init google drive client: %w", err)
	}
	return &Client{
		service:     service,
		folderName:  cfg.DriveFolder,
		deleteAfter: cfg.DeleteAfterDownload,
		logger:      logger,
	}, nil
}

func (c *Client) findFolderID(ctx context.Context) (string, error) {
	query := fmt.Sprintf(
		"name = '%s' and mimeType = 'application/vnd.google-apps.folder' and trashed = false",
		c.folderName,
	)
	list, err := c.service.Files.List().Q(query).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("drive folder lookup failed: %w", err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("drive folder %q not found", c.folderName)
	}
	return list.Files[0].Id, nil
}

// DownloadAll fetches every file in the configured folder into destDir,
// prefixing each name with a timestamp so repeated uploads of the same
// recording never collide. It returns the local paths written.
func (c *Client) DownloadAll(ctx context.Context, destDir string) ([]string, error) {
	folderID, err := c.findFolderID(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("'%s' in parents and trashed = false", folderID)
	list, err := c.service.Files.List().Q(query).
		Fields("files(id, name, mimeType)").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("drive file listing failed: %w", err)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create download dir: %w", err)
	}

	var downloaded []string
	for _, f := range list.Files {
		localName := fmt.Sprintf("%s_%s", time.Now().Format("20060102_150405"), f.Name)
		localPath := filepath.Join(destDir, localName)

		if err := c.downloadFile(ctx, f.Id, localPath); err != nil {
			c.logger.Errorf("download of %s failed: %v", f.Name, err)
			continue
		}
		c.logger.Infof("downloaded %s to %s", f.Name, localPath)
		downloaded = append(downloaded, localPath)

		if c.deleteAfter {
			if err := c.service.Files.Delete(f.Id).Context(ctx).Do(); err != nil {
				c.logger.Warnf("could not delete %s from drive: %v", f.Name, err)
			}
		}
	}
	return downloaded, nil
}

func (c *Client) downloadFile(ctx context.Context, fileID, destPath string) error {
	resp, err := c.service.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return fmt.Errorf("drive download failed: %w", err)
	}
	defer resp.Body.Close()

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("could not create local file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(destPath)
		return fmt.Errorf("could not write local file: %w", err)
	}
	return nil
}
